package burgersclient

import (
	"fmt"

	"github.com/fivetwenty-io/burgers/internal/client"
	"github.com/fivetwenty-io/burgers/pkg/burgers"
)

// New creates a new Apitizing Burger API client. A nil config selects the
// defaults. No request is sent until a resource method is called.
func New(config *burgers.Config) (burgers.Client, error) {
	c, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithServerURL creates a client for serverURL. params may be nil, in
// which case serverURL is used verbatim.
func NewWithServerURL(serverURL string, params map[string]string) (burgers.Client, error) {
	return New(&burgers.Config{
		ServerURL: serverURL,
		URLParams: params,
	})
}

// NewWithServerIndex creates a client for burgers.ServerList[index].
func NewWithServerIndex(index int) (burgers.Client, error) {
	return New(&burgers.Config{
		ServerIndex: index,
	})
}

// NewWithHTTPClient creates a client for the default server that sends every
// request through httpClient.
func NewWithHTTPClient(httpClient burgers.HTTPClient) (burgers.Client, error) {
	return New(&burgers.Config{
		HTTPClient: httpClient,
	})
}
