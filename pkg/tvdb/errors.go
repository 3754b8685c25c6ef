package tvdb

import (
	"errors"
	"fmt"
)

// Sentinel errors for TVDB responses.
var (
	ErrNotFound     = errors.New("tvdb: not found")
	ErrUnauthorized = errors.New("tvdb: unauthorized")
	ErrRateLimited  = errors.New("tvdb: rate limited")
)

// APIError is returned for unexpected HTTP statuses.
type APIError struct {
	StatusCode int
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tvdb: %s returned status %d", e.Endpoint, e.StatusCode)
}
