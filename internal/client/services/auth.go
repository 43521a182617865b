// Package services contains application services for the PeerSphere client.
// This file defines the authentication flow: login, register, logout and
// the liveness probe.
package services

import (
	"context"
	"fmt"

	"github.com/peersphere/peersphere/internal/client/client"
	"github.com/peersphere/peersphere/internal/client/forms"
	"github.com/peersphere/peersphere/internal/client/models"
	"github.com/peersphere/peersphere/internal/client/session"
	"github.com/peersphere/peersphere/internal/logging"
)

// AuthState is the client's authentication state.
type AuthState int

const (
	StateAnonymous AuthState = iota
	StateAuthenticated
)

func (s AuthState) String() string {
	if s == StateAuthenticated {
		return "authenticated"
	}
	return "anonymous"
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login/Register: validate input, call the backend and store a session
//     on success. Backend failures are returned unchanged and leave the
//     state as it was.
//   - Logout: drop the session.
//   - State: derived from the session store only; no server round-trip.
//   - Health: proxy the backend health check.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (*models.User, error)
	Register(ctx context.Context, name, email string, password []byte) (*models.User, error)
	Logout(ctx context.Context) error
	State(ctx context.Context) AuthState
	Health(ctx context.Context) (string, error)
}

// AuthAPI is the part of client.Client the auth flow needs.
type AuthAPI interface {
	Health(ctx context.Context) (string, error)
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
}

type authService struct {
	api   AuthAPI
	store *session.Store
	log   logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(api AuthAPI, store *session.Store, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Discard()
	}
	return &authService{api: api, store: store, log: log}
}

// Login authenticates against the backend and commits the identity it
// returns.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.User, error) {
	if err := forms.Validate(forms.Login{Email: email, Password: string(password)}); err != nil {
		return nil, err
	}

	resp, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return nil, err
	}
	if resp.UserID == 0 {
		return nil, fmt.Errorf("%w: login response has no userId", client.ErrMalformedResponse)
	}

	user := models.User{UserID: resp.UserID, Name: resp.Name, Email: resp.Email}
	if _, err := a.store.Save(ctx, user); err != nil {
		return nil, err
	}

	a.log.Info(ctx, "user logged in", "user_id", user.UserID)
	return &user, nil
}

// Register creates an account. The stored identity keeps the caller's name
// and email; only the id comes from the backend.
func (a *authService) Register(ctx context.Context, name, email string, password []byte) (*models.User, error) {
	if err := forms.Validate(forms.Register{Name: name, Email: email, Password: string(password)}); err != nil {
		return nil, err
	}

	resp, err := a.api.Register(ctx, name, email, string(password))
	if err != nil {
		return nil, err
	}
	if resp.UserID == 0 {
		return nil, fmt.Errorf("%w: register response has no userId", client.ErrMalformedResponse)
	}

	user := models.User{UserID: resp.UserID, Name: name, Email: email}
	if _, err := a.store.Save(ctx, user); err != nil {
		return nil, err
	}

	a.log.Info(ctx, "user registered", "user_id", user.UserID)
	return &user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) State(ctx context.Context) AuthState {
	if a.store.IsAuthenticated(ctx) {
		return StateAuthenticated
	}
	return StateAnonymous
}

// Health proxies a liveness check to the underlying client.
func (a *authService) Health(ctx context.Context) (string, error) {
	return a.api.Health(ctx)
}
