// Package common defines shared constants and sentinel errors used across
// the PeerSphere client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// ErrNotAuthenticated is returned by protected operations when no
	// session is stored.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrValidation wraps user input that failed form validation.
	ErrValidation = errors.New("validation error")
)
