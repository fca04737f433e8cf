package client

import (
	"errors"
	"fmt"
)

// ErrNotFound marks 404 responses so callers can treat them as a soft
// empty state instead of a hard failure.
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx response decoded from the backend's error body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err represents a 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
