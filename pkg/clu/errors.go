package clu

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates the endpoint or key is missing or invalid.
	ErrInvalidConfig = errors.New("clu: invalid configuration")

	// ErrServiceCall indicates a transport, authentication or service side failure.
	ErrServiceCall = errors.New("clu: service call failed")

	// ErrMalformedResponse indicates the response lacks the expected fields.
	ErrMalformedResponse = errors.New("clu: malformed response")
)

// APIError is the error body returned by the service on non-2xx responses.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" && e.Message == "" {
		return fmt.Sprintf("status %d", e.StatusCode)
	}
	return fmt.Sprintf("status %d: %s: %s", e.StatusCode, e.Code, e.Message)
}
