// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/MKhiriev/go-community-share/internal/store"
	"github.com/MKhiriev/go-community-share/internal/validators"
	"github.com/MKhiriev/go-community-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withAuth(auth *mockAuthService) *service.Services {
	services := newTestServices()
	services.AuthService = auth
	return services
}

// ─────────────────────────────────────────────
// signup
// ─────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	var got models.SignupRequest
	auth := &mockAuthService{
		signupFn: func(_ context.Context, req models.SignupRequest) (models.AuthResult, error) {
			got = req
			return models.AuthResult{User: models.User{ID: 5, Name: req.Name}, APIKey: "new-key"}, nil
		},
	}
	h := newTestHandler(withAuth(auth))

	body := toJSON(t, models.SignupRequest{Name: "Ann", Email: "ann@example.com", Password: "password1"})
	rec := serve(t, h, http.MethodPost, "/api/usersignup", body, "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Bearer new-key", rec.Header().Get("Authorization"))
	env := decodeEnvelope[models.User](t, rec)
	assert.Equal(t, "new-key", env.APIKey)
	assert.Equal(t, int64(5), env.Data.ID)
	assert.Equal(t, "ann@example.com", got.Email)
	assert.Equal(t, "password1", got.Password)
}

func TestSignup_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "invalid json",
			body:        "{invalid json}",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Bad request",
		},
		{
			name:        "email taken",
			body:        `{"name":"Ann","email":"ann@example.com","password":"password1"}`,
			err:         fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists),
			wantStatus:  http.StatusConflict,
			wantMessage: "Email already exists",
		},
		{
			name:        "short password",
			body:        `{"name":"Ann","email":"ann@example.com","password":"short"}`,
			err:         validators.ErrPasswordTooShort,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Password must be at least 8 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				signupFn: func(context.Context, models.SignupRequest) (models.AuthResult, error) {
					return models.AuthResult{}, tt.err
				},
			}
			h := newTestHandler(withAuth(auth))

			rec := serve(t, h, http.MethodPost, "/api/usersignup", tt.body, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeEnvelope[any](t, rec).Message)
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

// ─────────────────────────────────────────────
// requestapikey
// ─────────────────────────────────────────────

func TestRequestAPIKey(t *testing.T) {
	auth := &mockAuthService{
		authenticateFn: func(_ context.Context, creds models.Credentials) (models.AuthResult, error) {
			if creds.Password != "password1" {
				return models.AuthResult{}, service.ErrInvalidCredentials
			}
			return models.AuthResult{User: models.User{ID: 5}, APIKey: "key"}, nil
		},
	}
	h := newTestHandler(withAuth(auth))

	rec := serve(t, h, http.MethodPost, "/api/requestapikey", `{"email":"ann@example.com","password":"password1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "key", decodeEnvelope[models.User](t, rec).APIKey)

	rec = serve(t, h, http.MethodPost, "/api/requestapikey", `{"email":"ann@example.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decodeEnvelope[any](t, rec).Message)
}

// ─────────────────────────────────────────────
// reset password and email confirmation
// ─────────────────────────────────────────────

func TestRequestResetPassword(t *testing.T) {
	auth := &mockAuthService{
		requestResetPasswordFn: func(_ context.Context, email string) error {
			if email == "ann@example.com" {
				return nil
			}
			return fmt.Errorf("user search by email failed: %w", store.ErrNotFound)
		},
	}
	h := newTestHandler(withAuth(auth))

	rec := serve(t, h, http.MethodPost, "/api/requestresetpassword", `{"email":"ann@example.com"}`, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, h, http.MethodPost, "/api/requestresetpassword", `{"email":"nobody@example.com"}`, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", decodeEnvelope[any](t, rec).Message)
}

func TestResetPassword(t *testing.T) {
	auth := &mockAuthService{
		resetPasswordFn: func(_ context.Context, req models.ResetPasswordRequest) (models.AuthResult, error) {
			if req.Key != "good" {
				return models.AuthResult{}, service.ErrInvalidKey
			}
			return models.AuthResult{User: models.User{ID: 5}, APIKey: "key"}, nil
		},
	}
	h := newTestHandler(withAuth(auth))

	rec := serve(t, h, http.MethodPost, "/api/resetpassword", `{"key":"good","password":"password1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "key", decodeEnvelope[models.User](t, rec).APIKey)

	rec = serve(t, h, http.MethodPost, "/api/resetpassword", `{"key":"bad","password":"password1"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid or expired key", decodeEnvelope[any](t, rec).Message)
}

func TestConfirmEmail(t *testing.T) {
	auth := &mockAuthService{
		confirmEmailFn: func(_ context.Context, key string) (models.User, error) {
			return models.User{ID: 5, EmailConfirmed: key == "good"}, nil
		},
	}
	h := newTestHandler(withAuth(auth))

	rec := serve(t, h, http.MethodPost, "/api/confirmemail", `{"key":"good"}`, "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope[models.User](t, rec)
	assert.True(t, env.Data.EmailConfirmed)
	assert.Empty(t, env.APIKey)
}
