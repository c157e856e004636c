package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Folldix/GameStore-Frontend/internal/common"
)

// ErrUnavailable marks transport-level failures: the server could not be
// reached or the response could not be read at all.
var ErrUnavailable = errors.New("server unavailable")

// Error is a non-2xx response from the backend. Message is the server's
// verbatim "error" field when the body carried one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// Unwrap maps well-known statuses to shared sentinels so callers can use
// errors.Is without inspecting status codes.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return common.ErrUnauthorized
	case http.StatusNotFound:
		return common.ErrNotFound
	}
	return nil
}

// NewError builds an *Error for the given status, falling back to a generic
// message when the server supplied none.
func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}
