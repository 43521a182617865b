package client

import (
	"context"
	"net/http"

	"github.com/peersphere/peersphere/internal/client/models"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Health returns the backend's health payload as text.
func (c *RESTClient) Health(ctx context.Context) (string, error) {
	body, err := c.Request(ctx, "/health", RequestOptions{Method: http.MethodGet})
	if err != nil {
		return "", err
	}
	return body.String(), nil
}

// Register creates an account. The backend answers with at least the new
// user's id.
func (c *RESTClient) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	var u models.User
	if err := c.call(ctx, http.MethodPost, "/auth/register", registerRequest{Name: name, Email: email, Password: password}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *RESTClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	var u models.User
	if err := c.call(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
