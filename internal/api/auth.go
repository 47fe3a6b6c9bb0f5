package api

import (
	"context"
	"net/http"

	"wateen/client/internal/models"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	// The backend names the token "access"; older deployments used
	// "access_token". Accept both.
	Access      string       `json:"access"`
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
}

type LoginResult struct {
	Token string
	User  *models.User
}

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var resp loginResponse
	err := c.doJSON(ctx, http.MethodPost, "/users/login", loginRequest{
		Email:    email,
		Password: password,
	}, false, &resp)
	if err != nil {
		return nil, err
	}

	token := resp.Access
	if token == "" {
		token = resp.AccessToken
	}
	return &LoginResult{Token: token, User: resp.User}, nil
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, username, email, password string) error {
	return c.doJSON(ctx, http.MethodPost, "/users/register", registerRequest{
		Username: username,
		Email:    email,
		Password: password,
	}, false, nil)
}

func (c *Client) UpdateProfile(ctx context.Context, profile models.OnboardingProfile) error {
	return c.doJSON(ctx, http.MethodPut, "/users/profile", profile, true, nil)
}

type pushTokenRequest struct {
	Token string `json:"token"`
}

// RegisterPushToken reports an opaque subscription descriptor so the
// backend can target this client for push delivery.
func (c *Client) RegisterPushToken(ctx context.Context, descriptor string) error {
	return c.doJSON(ctx, http.MethodPost, "/users/fcm-token", pushTokenRequest{
		Token: descriptor,
	}, true, nil)
}
