package client_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/fivetwenty-io/burgers/internal/client"
	"github.com/fivetwenty-io/burgers/pkg/burgers"
	"github.com/stretchr/testify/require"
)

// newTestClient starts handler on an httptest server and returns a client
// pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&burgers.Config{ServerURL: server.URL})
	require.NoError(t, err)

	return client
}

func writeJSON(t *testing.T, writer http.ResponseWriter, status int, body string) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	_, err := writer.Write([]byte(body))
	if err != nil {
		t.Errorf("writing response: %v", err)
	}
}
