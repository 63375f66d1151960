package client

import (
	"errors"
	"fmt"
)

// Error taxonomy for remote calls. Validation failures never reach this
// layer; everything here came back from the wire.

// ErrSessionExpired marks 401/403 responses. The caller clears stored
// credentials and stops whatever walk is in progress; it is never retried.
var ErrSessionExpired = errors.New("session expired")

// APIError is a non-2xx response from the backend. The backend's own
// message is kept verbatim so the UI can surface it.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d: %s", e.Method, e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s: %d", e.Method, e.URL, e.StatusCode)
}

// NetworkError is a transport-level failure (refused, timeout, DNS). It is
// shown as a generic connectivity problem.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("cannot reach server (%s %s): %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// UserMessage renders a remote error the way the form shows it: the backend
// message verbatim when there is one, a generic fallback otherwise.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return "could not reach the server, check your connection"
	}
	if errors.Is(err, ErrSessionExpired) {
		return "your session has expired, please sign in again"
	}
	return "something went wrong, please try again"
}
