package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrMalformedResponse = errors.New("malformed server response")
	ErrInvalidBaseURL    = errors.New("invalid server url")
)

// APIError is a request the backend understood and refused, e.g. a
// duplicate signup or a second assessment on the same day.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: %s (status %d)", e.Message, e.Status)
}
