// Package session keeps the locally cached identity of the logged-in user.
//
// Authentication is local and optimistic: a stored session means the user
// is treated as logged in, and nothing is checked with the backend.
package session

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/peersphere/peersphere/internal/client/models"
)

var errMalformed = errors.New("malformed session record")

// Session is the record stored under common.SessionStorageKey.
type Session struct {
	UserID    int64     `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	LoginTime time.Time `json:"loginTime"`
}

// User returns the identity part of the session.
func (s Session) User() models.User {
	return models.User{UserID: s.UserID, Name: s.Name, Email: s.Email}
}

func newSession(u models.User, at time.Time) Session {
	return Session{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		LoginTime: at.UTC(),
	}
}

// decode parses a stored record. JSON null and records without a non-zero
// userId are rejected.
func decode(raw []byte) (*Session, error) {
	var rec struct {
		UserID    *int64 `json:"userId"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		LoginTime string `json:"loginTime"`
	}
	var shape any
	if err := json.Unmarshal(raw, &shape); err != nil {
		return nil, err
	}
	if _, ok := shape.(map[string]any); !ok {
		return nil, errMalformed
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	if rec.UserID == nil || *rec.UserID == 0 {
		return nil, errMalformed
	}

	s := &Session{UserID: *rec.UserID, Name: rec.Name, Email: rec.Email}
	if rec.LoginTime != "" {
		// An unparsable login time does not invalidate the identity.
		if t, err := time.Parse(time.RFC3339Nano, rec.LoginTime); err == nil {
			s.LoginTime = t
		}
	}
	return s, nil
}
