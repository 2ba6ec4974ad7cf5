package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnexpectedShape is returned by list endpoints whose body is neither a
// JSON array nor a {"data": [...]} envelope. The accompanying slice is empty
// rather than nil.
var ErrUnexpectedShape = errors.New("unexpected response shape")

// APIError represents an error returned by the back-office API.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *APIError) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }

// IsUnauthorized means the token was missing, expired or revoked.
func (e *APIError) IsUnauthorized() bool { return e.StatusCode == http.StatusUnauthorized }

// IsForbidden means the token is valid but lacks the admin role.
func (e *APIError) IsForbidden() bool { return e.StatusCode == http.StatusForbidden }

func (e *APIError) IsRateLimited() bool { return e.StatusCode == http.StatusTooManyRequests }

func (e *APIError) IsServerError() bool {
	return e.StatusCode >= http.StatusInternalServerError && e.StatusCode < 600
}

// IsAPIError reports whether err wraps an APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
