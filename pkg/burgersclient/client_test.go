package burgersclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/burgers/pkg/burgers"
	"github.com/fivetwenty-io/burgers/pkg/burgersclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config uses defaults", func(t *testing.T) {
		t.Parallel()

		client, err := burgersclient.New(nil)
		require.NoError(t, err)
		require.NotNil(t, client)
		assert.Equal(t, burgers.ServerList[0], client.Configuration().ServerURL())
		assert.NotNil(t, client.Configuration().HTTPClient())
		assert.NotNil(t, client.Burger())
		assert.NotNil(t, client.Order())
	})

	t.Run("invalid configuration", func(t *testing.T) {
		t.Parallel()

		client, err := burgersclient.New(&burgers.Config{ServerIndex: 42})
		require.ErrorIs(t, err, burgers.ErrInvalidConfiguration)
		assert.Nil(t, client)
	})
}

func TestNewWithServerURL(t *testing.T) {
	t.Parallel()

	client, err := burgersclient.NewWithServerURL("https://api.example.com/{region}", map[string]string{"region": "eu"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/eu", client.Configuration().ServerURL())

	client, err = burgersclient.NewWithServerURL("https://api.example.com/{region}", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/{region}", client.Configuration().ServerURL())

	_, err = burgersclient.NewWithServerURL("https://api.example.com/{region}", map[string]string{})

	templateErr := &burgers.TemplateError{}
	require.ErrorAs(t, err, &templateErr)
	assert.Equal(t, []string{"region"}, templateErr.Missing)
}

func TestNewWithServerIndex(t *testing.T) {
	t.Parallel()

	client, err := burgersclient.NewWithServerIndex(burgers.ServerLocal)
	require.NoError(t, err)
	assert.Equal(t, burgers.ServerList[burgers.ServerLocal], client.Configuration().ServerURL())

	_, err = burgersclient.NewWithServerIndex(-1)
	require.ErrorIs(t, err, burgers.ErrServerIndexOutOfRange)
}

func TestNewWithHTTPClient(t *testing.T) {
	t.Parallel()

	httpClient := &http.Client{}

	client, err := burgersclient.NewWithHTTPClient(httpClient)
	require.NoError(t, err)
	assert.Same(t, httpClient, client.Configuration().HTTPClient())
	assert.Same(t, httpClient, client.Configuration().SecurityClient())
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/burger/":
			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode([]burgers.Burger{
				{ID: 1, Name: "Classic", Description: burgers.Ptr("Beef, cheddar, pickles")},
			})
		case "/order/7":
			writer.Header().Set("Content-Type", "application/json")
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"detail":"Order not found"}`))
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := burgersclient.New(&burgers.Config{
		ServerURL:  server.URL,
		HTTPClient: server.Client(),
	})
	require.NoError(t, err)

	menu, err := client.Burger().List(context.Background())
	require.NoError(t, err)
	require.Len(t, menu, 1)
	assert.Equal(t, "Classic", menu[0].Name)

	order, err := client.Order().Get(context.Background(), 7)
	require.Error(t, err)
	assert.Nil(t, order)
	assert.True(t, burgers.IsNotFound(err))
}
