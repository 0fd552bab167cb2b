package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation failed")
	ErrLoginRequired = errors.New("login required")
	ErrDraftNotFound = errors.New("draft not found")
)

// APIError is a non-2xx response. Message is the server's "message" or "error" field.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api status %d", e.Status)
	}

	return e.Message
}

func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

// UserMessage returns the text shown to the user for err.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	if err == nil {
		return ""
	}

	return err.Error()
}
