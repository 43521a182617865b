package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrMalformedResponse = errors.New("malformed response")
)

// APIError is an HTTP failure reported by the backend.
//
// Message is the server-provided "error" field of a JSON payload when one
// exists, "HTTP <status>" for other JSON payloads, and
// "HTTP <status>: <text>" for non-JSON payloads. Body holds the raw payload.
type APIError struct {
	StatusCode int
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(status int, body Body) *APIError {
	switch b := body.(type) {
	case JSONBody:
		msg := b.errorField()
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", status)
		}
		return &APIError{StatusCode: status, Message: msg, Body: string(b.Raw)}
	case TextBody:
		return &APIError{StatusCode: status, Message: fmt.Sprintf("HTTP %d: %s", status, b.Text), Body: b.Text}
	default:
		return &APIError{StatusCode: status, Message: fmt.Sprintf("HTTP %d", status)}
	}
}
