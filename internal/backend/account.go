package backend

import (
	"context"
	"net/http"

	"github.com/careercracker/webclient/internal/model"
)

type signUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResult carries the bearer credential minted by the backend.
type AuthResult struct {
	Token string `json:"token"`
}

// SignUp registers a new account. The backend responds with a credential the
// client can use right away.
func (c *Client) SignUp(ctx context.Context, username, email, password string) (*AuthResult, error) {
	body := signUpRequest{Username: username, Email: email, Password: password}
	var result AuthResult
	if err := c.do(ctx, "", http.MethodPost, "/accounts/signup/", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SignIn exchanges username/password for a bearer credential.
func (c *Client) SignIn(ctx context.Context, username, password string) (*AuthResult, error) {
	body := signInRequest{Username: username, Password: password}
	var result AuthResult
	if err := c.do(ctx, "", http.MethodPost, "/accounts/login/", nil, body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FetchProfile retrieves the authenticated user's profile.
func (c *Client) FetchProfile(ctx context.Context, cred string) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := c.do(ctx, cred, http.MethodGet, "/accounts/profile/", nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile replaces the profile wholesale and returns the stored result.
// Partial updates are expressed by sending only the changed fields.
func (c *Client) UpdateProfile(ctx context.Context, cred string, fields map[string]any) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := c.do(ctx, cred, http.MethodPut, "/accounts/profile/", nil, fields, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
