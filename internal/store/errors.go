package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the store answers 404 for an entity.
// Repositories surface it unchanged; usecases translate it into their
// domain's not-found error.
var ErrNotFound = errors.New("entity not found in store")

// APIError is a non-2xx store response other than 404.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("store API %s %s error %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}
