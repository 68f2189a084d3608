package burgers

import (
	"fmt"

	"github.com/hashicorp/go-cleanhttp"

	"github.com/fivetwenty-io/burgers/internal/constants"
)

// Configuration is the resolved configuration shared by every resource
// client. It is created once by NewConfiguration and never modified.
type Configuration struct {
	client         HTTPClient
	securityClient HTTPClient
	serverURL      string
	serverIndex    int
}

// NewConfiguration resolves config into a Configuration. A nil config is
// treated as the zero Config.
func NewConfiguration(config *Config) (*Configuration, error) {
	if config == nil {
		config = &Config{}
	}

	client := config.HTTPClient
	if client == nil {
		client = NewDefaultHTTPClient()
	}

	serverURL, err := resolveServerURL(config)
	if err != nil {
		return nil, err
	}

	return &Configuration{
		client: client,
		// The API declares no security scheme, so secured and unsecured
		// operations share one handle.
		securityClient: client,
		serverURL:      serverURL,
		serverIndex:    config.ServerIndex,
	}, nil
}

// NewDefaultHTTPClient returns the pooled client used when none is supplied.
func NewDefaultHTTPClient() HTTPClient {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = constants.DefaultHTTPTimeout

	return client
}

func resolveServerURL(config *Config) (string, error) {
	if config.ServerURL != "" {
		if config.URLParams == nil {
			return config.ServerURL, nil
		}

		return TemplateURL(config.ServerURL, config.URLParams)
	}

	if config.ServerIndex < 0 || config.ServerIndex >= len(ServerList) {
		return "", fmt.Errorf("%w: %w: %d (have %d servers)",
			ErrInvalidConfiguration, ErrServerIndexOutOfRange, config.ServerIndex, len(ServerList))
	}

	return ServerList[config.ServerIndex], nil
}

// HTTPClient returns the client used for unauthenticated operations.
func (c *Configuration) HTTPClient() HTTPClient {
	return c.client
}

// SecurityClient returns the client used for authenticated operations.
func (c *Configuration) SecurityClient() HTTPClient {
	return c.securityClient
}

// ServerURL returns the resolved base URL.
func (c *Configuration) ServerURL() string {
	return c.serverURL
}

// ServerIndex returns the configured server index. It only determined the
// base URL when no explicit server URL was given.
func (c *Configuration) ServerIndex() int {
	return c.serverIndex
}
