package burgers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Static errors for err113 compliance.
var (
	ErrInvalidConfiguration  = errors.New("invalid configuration")
	ErrServerIndexOutOfRange = errors.New("server index out of range")
	ErrInvalidRequest        = errors.New("invalid request")
)

// TemplateError reports server URL placeholders that had no value.
type TemplateError struct {
	URL     string
	Missing []string
}

// Error implements the error interface.
func (e *TemplateError) Error() string {
	return fmt.Sprintf("unresolved placeholders in server URL %q: %s", e.URL, strings.Join(e.Missing, ", "))
}

// Unwrap lets errors.Is match ErrInvalidConfiguration.
func (e *TemplateError) Unwrap() error {
	return ErrInvalidConfiguration
}

// ValidationError is one entry of a 422 response.
type ValidationError struct {
	Loc  []interface{} `json:"loc"  yaml:"loc"`
	Msg  string        `json:"msg"  yaml:"msg"`
	Type string        `json:"type" yaml:"type"`
}

// String renders the error as "body.name: field required".
func (e ValidationError) String() string {
	parts := make([]string, 0, len(e.Loc))
	for _, loc := range e.Loc {
		parts = append(parts, fmt.Sprint(loc))
	}

	if len(parts) == 0 {
		return e.Msg
	}

	return strings.Join(parts, ".") + ": " + e.Msg
}

// APIError represents a non-2xx response from the API.
type APIError struct {
	StatusCode       int               `json:"status_code"                 yaml:"status_code"`
	Message          string            `json:"message"                     yaml:"message"`
	ValidationErrors []ValidationError `json:"validation_errors,omitempty" yaml:"validation_errors,omitempty"`
	Body             []byte            `json:"-"                           yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if len(e.ValidationErrors) == 0 {
		return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
	}

	details := make([]string, 0, len(e.ValidationErrors))
	for _, validationErr := range e.ValidationErrors {
		details = append(details, validationErr.String())
	}

	return fmt.Sprintf("%s (status: %d): %s", e.Message, e.StatusCode, strings.Join(details, "; "))
}

// ParseAPIError builds an APIError from a response body. Both the
// {"detail": "..."} and {"message": "..."} shapes are understood, as well as
// the {"detail": [...]} list sent with 422 responses. Bodies that are not JSON
// fall back to the status text.
func ParseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       body,
	}

	var payload struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message

		if len(payload.Detail) > 0 {
			var detail string
			if err := json.Unmarshal(payload.Detail, &detail); err == nil {
				apiErr.Message = detail
			} else {
				var validationErrs []ValidationError
				if err := json.Unmarshal(payload.Detail, &validationErrs); err == nil {
					apiErr.ValidationErrors = validationErrs
				}
			}
		}
	}

	if apiErr.Message == "" {
		if len(apiErr.ValidationErrors) > 0 {
			apiErr.Message = "validation failed"
		} else {
			apiErr.Message = http.StatusText(statusCode)
		}
	}

	return apiErr
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsValidationError checks if the server rejected the request payload.
func IsValidationError(err error) bool {
	return hasStatus(err, http.StatusUnprocessableEntity)
}

func hasStatus(err error, statusCode int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}

	return false
}
