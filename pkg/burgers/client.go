package burgers

import (
	"net/http"
)

// HTTPClient is the transport handle shared by every resource client.
// *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ResourceClients provides access to the resource group clients.
type ResourceClients interface {
	// Burger returns the client for operations related to burgers.
	Burger() BurgerClient
	// Order returns the client for operations related to orders.
	Order() OrderClient
}

// Client is the API facade returned by burgersclient.New.
type Client interface {
	ResourceClients

	// Configuration returns the resolved configuration shared by the resource clients.
	Configuration() *Configuration
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a burgers.Client.
//
// # Server selection
//
// The base URL is resolved once, when the client is built:
//  1. ServerURL: if set, it is used for every operation. If URLParams is
//     non-nil, each {name} placeholder is replaced by URLParams[name] and a
//     placeholder without a value fails construction with a *TemplateError.
//     If URLParams is nil the URL is used verbatim.
//  2. ServerIndex: otherwise selects ServerList[ServerIndex]. The zero value
//     selects the first server. An index outside ServerList fails
//     construction with ErrServerIndexOutOfRange.
//
// Building a client never performs network I/O.
type Config struct {
	// ServerIndex selects an entry of ServerList. Ignored when ServerURL is set.
	ServerIndex int
	// ServerURL overrides the server list for all operations.
	ServerURL string
	// URLParams templates ServerURL. Only consulted when ServerURL is set.
	URLParams map[string]string
	// HTTPClient is used for all operations. If nil, a pooled client with a
	// default timeout is created.
	HTTPClient HTTPClient

	// Optional configurations
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// Interceptors: optional hooks run around every request.
	Interceptors *InterceptorChain
}
