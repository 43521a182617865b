// Package models defines client-side data models used by the PeerSphere CLI.
// JSON field names follow the backend's camelCase wire format.
package models

// User is the identity returned by the backend on login and register. The
// client only ever holds a cached copy.
type User struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
