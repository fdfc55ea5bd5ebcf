package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// Register creates an account. It does not authenticate the caller; a
// successful registration is followed by an explicit login.
func (c *Client) Register(ctx context.Context, username string, email string, password string) error {
	body := map[string]string{
		"username": strings.TrimSpace(username),
		"email":    strings.TrimSpace(email),
		"password": password,
	}
	return c.do(ctx, http.MethodPost, "/register", body, nil)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username string, password string) (string, error) {
	body := map[string]string{
		"username": strings.TrimSpace(username),
		"password": password,
	}
	var res struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", body, &res); err != nil {
		return "", err
	}
	if res.AccessToken == "" {
		return "", errors.New("login response missing access token")
	}
	return res.AccessToken, nil
}

// ValidateToken confirms the installed bearer token is still accepted by the
// backend.
func (c *Client) ValidateToken(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/test-auth", nil, nil)
}
