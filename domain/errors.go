package domain

import (
	"errors"
	"fmt"
)

// RemoteAPIError is returned when the remote API answered with a non-success
// status. It carries the HTTP status and the decoded (or best-effort) error
// message from the response body.
type RemoteAPIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *RemoteAPIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote API error (status %d): %s", e.StatusCode, e.Status)
	}
	return fmt.Sprintf("remote API error (status %d): %s", e.StatusCode, e.Message)
}

// TransportError is returned when no response was obtained at all:
// connectivity failure, DNS failure, or a timeout below the HTTP layer.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsRemoteAPIError reports whether err is (or wraps) a RemoteAPIError.
func IsRemoteAPIError(err error) bool {
	var target *RemoteAPIError
	return errors.As(err, &target)
}

// IsTransportError reports whether err is (or wraps) a TransportError.
func IsTransportError(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}
