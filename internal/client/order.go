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

// OrderClient implements burgers.OrderClient.
type OrderClient struct {
	configuration *burgers.Configuration
	httpClient    *http.Client
}

// NewOrderClient creates a new order client.
func NewOrderClient(configuration *burgers.Configuration, httpClient *http.Client) *OrderClient {
	return &OrderClient{
		configuration: configuration,
		httpClient:    httpClient,
	}
}

// Configuration returns the configuration shared with the other resource clients.
func (c *OrderClient) Configuration() *burgers.Configuration {
	return c.configuration
}

func orderPath(orderID int) string {
	return constants.APIPathOrders + strconv.Itoa(orderID)
}

// List implements burgers.OrderClient.List.
func (c *OrderClient) List(ctx context.Context) ([]burgers.Order, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathOrders, nil)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}

	var list []burgers.Order

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing orders list: %w", err)
	}

	return list, nil
}

// Get implements burgers.OrderClient.Get.
func (c *OrderClient) Get(ctx context.Context, orderID int) (*burgers.Order, error) {
	resp, err := c.httpClient.Get(ctx, orderPath(orderID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}

	var order burgers.Order

	err = json.Unmarshal(resp.Body, &order)
	if err != nil {
		return nil, fmt.Errorf("parsing order: %w", err)
	}

	return &order, nil
}

// Create implements burgers.OrderClient.Create.
func (c *OrderClient) Create(ctx context.Context, request *burgers.OrderCreate) (*burgers.Order, error) {
	if request == nil {
		return nil, fmt.Errorf("creating order: %w: request is required", burgers.ErrInvalidRequest)
	}

	err := validateRequest(request)
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathOrders, request)
	if err != nil {
		return nil, fmt.Errorf("creating order: %w", err)
	}

	var order burgers.Order

	err = json.Unmarshal(resp.Body, &order)
	if err != nil {
		return nil, fmt.Errorf("parsing order response: %w", err)
	}

	return &order, nil
}

// Update implements burgers.OrderClient.Update.
func (c *OrderClient) Update(ctx context.Context, orderID int, request *burgers.OrderUpdate) (*burgers.Order, error) {
	if request == nil {
		return nil, fmt.Errorf("updating order: %w: request is required", burgers.ErrInvalidRequest)
	}

	err := validateRequest(request)
	if err != nil {
		return nil, fmt.Errorf("updating order: %w", err)
	}

	resp, err := c.httpClient.Patch(ctx, orderPath(orderID), request)
	if err != nil {
		return nil, fmt.Errorf("updating order: %w", err)
	}

	var order burgers.Order

	err = json.Unmarshal(resp.Body, &order)
	if err != nil {
		return nil, fmt.Errorf("parsing order response: %w", err)
	}

	return &order, nil
}
