package client

import (
	"fmt"

	"github.com/fivetwenty-io/burgers/internal/http"
	"github.com/fivetwenty-io/burgers/pkg/burgers"
)

// Client implements the burgers.Client interface.
type Client struct {
	configuration *burgers.Configuration
	httpClient    *http.Client
	logger        burgers.Logger

	// Resource clients
	burger burgers.BurgerClient
	order  burgers.OrderClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *burgers.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	return httpOpts
}

// New resolves config and wires the resource clients. It performs no
// network I/O; configuration problems are reported here rather than on the
// first request.
func New(config *burgers.Config) (*Client, error) {
	if config == nil {
		config = &burgers.Config{}
	}

	configuration, err := burgers.NewConfiguration(config)
	if err != nil {
		return nil, fmt.Errorf("resolving configuration: %w", err)
	}

	httpOpts := createHTTPClientOptions(config)

	// The API declares no security scheme; every operation goes through the
	// security client, which is the same handle as the plain one.
	httpClient := http.NewClient(configuration.ServerURL(), configuration.SecurityClient(), httpOpts...)

	client := &Client{
		configuration: configuration,
		httpClient:    httpClient,
		logger:        config.Logger,
	}

	client.initializeResourceClients()

	if client.logger != nil {
		client.logger.Debug("client initialized", map[string]interface{}{
			"server_url":   configuration.ServerURL(),
			"server_index": configuration.ServerIndex(),
		})
	}

	return client, nil
}

// Configuration implements burgers.Client.Configuration.
func (c *Client) Configuration() *burgers.Configuration {
	return c.configuration
}

// Resource client accessors

// Burger implements burgers.Client.Burger.
func (c *Client) Burger() burgers.BurgerClient {
	return c.burger
}

// Order implements burgers.Client.Order.
func (c *Client) Order() burgers.OrderClient {
	return c.order
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.burger = NewBurgerClient(c.configuration, c.httpClient)
	c.order = NewOrderClient(c.configuration, c.httpClient)
}
