package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/burgers/internal/constants"
	"github.com/fivetwenty-io/burgers/internal/http"
	"github.com/fivetwenty-io/burgers/pkg/burgers"
)

// BurgerClient implements burgers.BurgerClient.
type BurgerClient struct {
	configuration *burgers.Configuration
	httpClient    *http.Client
}

// NewBurgerClient creates a new burger client.
func NewBurgerClient(configuration *burgers.Configuration, httpClient *http.Client) *BurgerClient {
	return &BurgerClient{
		configuration: configuration,
		httpClient:    httpClient,
	}
}

// Configuration returns the configuration shared with the other resource clients.
func (c *BurgerClient) Configuration() *burgers.Configuration {
	return c.configuration
}

func burgerPath(burgerID int) string {
	return constants.APIPathBurgers + strconv.Itoa(burgerID)
}

// List implements burgers.BurgerClient.List.
func (c *BurgerClient) List(ctx context.Context) ([]burgers.Burger, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathBurgers, nil)
	if err != nil {
		return nil, fmt.Errorf("listing burgers: %w", err)
	}

	var list []burgers.Burger

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing burgers list: %w", err)
	}

	return list, nil
}

// Get implements burgers.BurgerClient.Get.
func (c *BurgerClient) Get(ctx context.Context, burgerID int) (*burgers.Burger, error) {
	resp, err := c.httpClient.Get(ctx, burgerPath(burgerID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting burger: %w", err)
	}

	var burger burgers.Burger

	err = json.Unmarshal(resp.Body, &burger)
	if err != nil {
		return nil, fmt.Errorf("parsing burger: %w", err)
	}

	return &burger, nil
}

// Create implements burgers.BurgerClient.Create.
func (c *BurgerClient) Create(ctx context.Context, request *burgers.BurgerCreate) (*burgers.Burger, error) {
	if request == nil {
		return nil, fmt.Errorf("creating burger: %w: request is required", burgers.ErrInvalidRequest)
	}

	err := validateRequest(request)
	if err != nil {
		return nil, fmt.Errorf("creating burger: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathBurgers, request)
	if err != nil {
		return nil, fmt.Errorf("creating burger: %w", err)
	}

	var burger burgers.Burger

	err = json.Unmarshal(resp.Body, &burger)
	if err != nil {
		return nil, fmt.Errorf("parsing burger response: %w", err)
	}

	return &burger, nil
}

// Update implements burgers.BurgerClient.Update.
func (c *BurgerClient) Update(ctx context.Context, burgerID int, request *burgers.BurgerUpdate) (*burgers.Burger, error) {
	if request == nil {
		return nil, fmt.Errorf("updating burger: %w: request is required", burgers.ErrInvalidRequest)
	}

	err := validateRequest(request)
	if err != nil {
		return nil, fmt.Errorf("updating burger: %w", err)
	}

	resp, err := c.httpClient.Patch(ctx, burgerPath(burgerID), request)
	if err != nil {
		return nil, fmt.Errorf("updating burger: %w", err)
	}

	var burger burgers.Burger

	err = json.Unmarshal(resp.Body, &burger)
	if err != nil {
		return nil, fmt.Errorf("parsing burger response: %w", err)
	}

	return &burger, nil
}

// Delete implements burgers.BurgerClient.Delete.
func (c *BurgerClient) Delete(ctx context.Context, burgerID int) error {
	_, err := c.httpClient.Delete(ctx, burgerPath(burgerID))
	if err != nil {
		return fmt.Errorf("deleting burger: %w", err)
	}

	return nil
}
