package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound indicates the requested article does not exist.
	ErrNotFound = errors.New("article not found")

	// ErrInvalidResponse indicates a response body that could not be decoded.
	ErrInvalidResponse = errors.New("invalid response from catalog API")
)

// APIError is a non-2xx response from the catalog API.
type APIError struct {
	StatusCode int
	CodeType   string
	Message    string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	if e.CodeType != "" {
		return fmt.Sprintf("catalog API error (status %d, %s): %s", e.StatusCode, e.CodeType, e.Message)
	}
	return fmt.Sprintf("catalog API error (status %d): %s", e.StatusCode, e.Message)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err means the resource does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
