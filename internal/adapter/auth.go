// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-community-share/models"
	"github.com/go-resty/resty/v2"
)

// ErrNoAPIKey is returned when a successful auth response omits the key.
var ErrNoAPIKey = errors.New("server response carries no api key")

type authClient struct {
	transport *transport
}

// Signup implements [AuthClient]: POST /api/usersignup.
func (c *authClient) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResult, error) {
	return c.issueKey(ctx, "/api/usersignup", req)
}

// RequestAPIKey implements [AuthClient]: POST /api/requestapikey.
func (c *authClient) RequestAPIKey(ctx context.Context, creds models.Credentials) (models.AuthResult, error) {
	return c.issueKey(ctx, "/api/requestapikey", creds)
}

// RequestResetPassword implements [AuthClient]: POST /api/requestresetpassword.
func (c *authClient) RequestResetPassword(ctx context.Context, email string) error {
	_, err := call[any](ctx, c.transport, resty.MethodPost, "/api/requestresetpassword", nil,
		models.RequestResetPasswordRequest{Email: email})
	if err != nil {
		return fmt.Errorf("request reset password: %w", err)
	}
	return nil
}

// ResetPassword implements [AuthClient]: POST /api/resetpassword.
func (c *authClient) ResetPassword(ctx context.Context, key, password string) (models.AuthResult, error) {
	return c.issueKey(ctx, "/api/resetpassword", models.ResetPasswordRequest{Key: key, Password: password})
}

// ConfirmEmail implements [AuthClient]: POST /api/confirmemail.
func (c *authClient) ConfirmEmail(ctx context.Context, key string) (models.User, error) {
	env, err := call[models.User](ctx, c.transport, resty.MethodPost, "/api/confirmemail", nil,
		models.ConfirmEmailRequest{Key: key})
	if err != nil {
		return models.User{}, fmt.Errorf("confirm email: %w", err)
	}
	return env.Data, nil
}

func (c *authClient) issueKey(ctx context.Context, path string, body any) (models.AuthResult, error) {
	env, err := call[models.User](ctx, c.transport, resty.MethodPost, path, nil, body)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("%s: %w", path, err)
	}
	if env.APIKey == "" {
		return models.AuthResult{}, fmt.Errorf("%s: %w", path, ErrNoAPIKey)
	}
	return models.AuthResult{User: env.Data, APIKey: env.APIKey}, nil
}
