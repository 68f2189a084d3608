// Package http is the transport layer shared by the resource clients. It turns
// a Request into a single HTTP exchange against the configured base URL.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fivetwenty-io/burgers/internal/constants"
	"github.com/fivetwenty-io/burgers/pkg/burgers"
)

// Logger is the logging interface used by the transport.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client sends requests to one base URL through an injected burgers.HTTPClient.
type Client struct {
	baseURL      string
	doer         burgers.HTTPClient
	logger       Logger
	debug        bool
	userAgent    string
	interceptors *burgers.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithInterceptors runs chain around every request.
func WithInterceptors(chain *burgers.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// Request describes one API call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response holds the raw result of an API call.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// NewClient creates a transport for baseURL. A nil doer gets the default pooled client.
func NewClient(baseURL string, doer burgers.HTTPClient, opts ...Option) *Client {
	if doer == nil {
		doer = burgers.NewDefaultHTTPClient()
	}

	client := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		doer:      doer,
		userAgent: constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the URL every request path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends req once. Responses with a status of 400 or above are returned
// together with an *burgers.APIError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var body []byte

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		body = encoded
	}

	intercepted := &burgers.Request{
		Method:   req.Method,
		Path:     req.Path,
		Headers:  c.buildHeaders(req.Headers, body != nil),
		Body:     body,
		Metadata: map[string]interface{}{},
	}

	if c.interceptors != nil {
		err := c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
		if err != nil {
			return nil, err
		}
	}

	var bodyReader io.Reader
	if intercepted.Body != nil {
		bodyReader = bytes.NewReader(intercepted.Body)
	}

	httpReq, err := nethttp.NewRequestWithContext(ctx, intercepted.Method, c.buildURL(intercepted.Path, req.Query), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header = intercepted.Headers

	c.logRequest(httpReq)

	start := time.Now()

	httpResp, err := c.doer.Do(httpReq)
	if err != nil {
		_ = c.runResponseInterceptors(ctx, intercepted, &burgers.Response{Error: err})

		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer c.closeBody(httpResp.Body)

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	c.logResponse(httpReq, resp, time.Since(start))

	var apiErr error
	if resp.StatusCode >= constants.HTTPStatusBadRequest {
		apiErr = burgers.ParseAPIError(resp.StatusCode, respBody)
	}

	err = c.runResponseInterceptors(ctx, intercepted, &burgers.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		Error:      apiErr,
	})
	if err != nil {
		return resp, err
	}

	if apiErr != nil {
		return resp, apiErr
	}

	return resp, nil
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post sends a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Put sends a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPut, Path: path, Body: body})
}

// Patch sends a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPatch, Path: path, Body: body})
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path})
}

func (c *Client) buildURL(path string, query url.Values) string {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	return target
}

func (c *Client) buildHeaders(custom map[string]string, hasBody bool) nethttp.Header {
	headers := make(nethttp.Header)
	headers.Set("Accept", constants.ContentTypeJSON)
	headers.Set("User-Agent", c.userAgent)

	if hasBody {
		headers.Set("Content-Type", constants.ContentTypeJSON)
	}

	for key, value := range custom {
		headers.Set(key, value)
	}

	return headers
}

func (c *Client) runResponseInterceptors(ctx context.Context, req *burgers.Request, resp *burgers.Response) error {
	if c.interceptors == nil {
		return nil
	}

	return c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
}

func (c *Client) closeBody(body io.ReadCloser) {
	err := body.Close()
	if err != nil && c.logger != nil {
		c.logger.Warn("failed to close response body", map[string]interface{}{"error": err.Error()})
	}
}

func (c *Client) logRequest(req *nethttp.Request) {
	if c.logger == nil || !c.debug {
		return
	}

	c.logger.Debug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
	})
}

func (c *Client) logResponse(req *nethttp.Request, resp *Response, elapsed time.Duration) {
	if c.logger == nil || !c.debug {
		return
	}

	c.logger.Debug("HTTP Response", map[string]interface{}{
		"method":      req.Method,
		"url":         req.URL.String(),
		"status_code": resp.StatusCode,
		"duration":    elapsed.String(),
	})
}
