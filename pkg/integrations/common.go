package integrations

import (
	"errors"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single feed request.
const DefaultTimeout = 20 * time.Second

var (
	// ErrNotFound is returned when the requested resource doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, non-2xx responses).
	ErrNetwork = errors.New("network error")

	// ErrEmpty is returned when a response carries no usable records.
	ErrEmpty = errors.New("empty response")

	// ErrDecode is returned when a response body is not the expected JSON shape.
	ErrDecode = errors.New("malformed response")
)

// NewHTTPClient creates an HTTP client with the given timeout.
// A zero timeout selects [DefaultTimeout].
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
