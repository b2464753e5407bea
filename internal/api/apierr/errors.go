// Package apierr classifies core errors into the API's uniform
// response envelope and HTTP status codes.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dicehall/accounts/internal/model"
	"github.com/dicehall/accounts/internal/token"
)

// ErrorResponse is the uniform failure envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// httpError combines an HTTP status code with a user-facing message
type httpError struct {
	status  int
	message string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Success: false, Error: he.message})
}

// toHTTPError converts an error to an httpError. Anything unrecognized
// collapses to a generic 500 so internal detail never reaches callers.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	// Input validation
	case errors.Is(err, model.ErrMissingCredentials):
		return &httpError{http.StatusBadRequest, "Username and password required"}
	case errors.Is(err, model.ErrUsernameTooShort):
		return &httpError{http.StatusBadRequest, "Username must be at least 3 characters"}
	case errors.Is(err, model.ErrPasswordTooShort):
		return &httpError{http.StatusBadRequest, "Password must be at least 6 characters"}

	// Account state
	case errors.Is(err, model.ErrUsernameExists):
		return &httpError{http.StatusBadRequest, "Username already exists"}
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusBadRequest, "User not found"}

	// Authentication
	case errors.Is(err, model.ErrWrongPassword):
		return &httpError{http.StatusUnauthorized, "Incorrect password"}
	case errors.Is(err, token.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, "Invalid token"}

	default:
		return &httpError{http.StatusInternalServerError, "Server error"}
	}
}

// NewInvalidRequestError creates a bad request error with a message
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewMissingTokenError creates the error for requests without a bearer token
func NewMissingTokenError() error {
	return &httpError{http.StatusUnauthorized, "No token provided"}
}

// NewInternalError creates a generic internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "Server error"}
}
