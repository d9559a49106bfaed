// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-community-share/internal/config"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/mock"
	"github.com/MKhiriev/go-community-share/internal/store"
	"github.com/MKhiriev/go-community-share/internal/utils"
	"github.com/MKhiriev/go-community-share/internal/validators"
	"github.com/MKhiriev/go-community-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testServerApp = config.ServerApp{
	TokenSignKey:   "sign-key",
	TokenIssuer:    "community-share",
	TokenDuration:  time.Hour,
	SecretDuration: 30 * time.Minute,
	HashKey:        "hash-key",
	Version:        "1.0.0",
}

var authNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

// recordingMailer keeps the last key sent per purpose.
type recordingMailer struct {
	resetKeys   []string
	confirmKeys []string
	err         error
}

func (m *recordingMailer) SendResetPassword(_ context.Context, _ models.User, key string) error {
	m.resetKeys = append(m.resetKeys, key)
	return m.err
}

func (m *recordingMailer) SendConfirmEmail(_ context.Context, _ models.User, key string) error {
	m.confirmKeys = append(m.confirmKeys, key)
	return m.err
}

func newTestAuthService(ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockSecretRepository, *recordingMailer) {
	users := mock.NewMockUserRepository(ctrl)
	secrets := mock.NewMockSecretRepository(ctrl)
	mailer := &recordingMailer{}

	svc := NewAuthService(users, secrets, mailer, validators.NewCommunityValidator(), testServerApp, logger.Nop()).(*authService)
	svc.bcryptCost = bcrypt.MinCost
	svc.now = func() time.Time { return authNow }
	return svc, users, secrets, mailer
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ─────────────────────────────────────────────
// Signup
// ─────────────────────────────────────────────

func TestAuthService_Signup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, secrets, mailer := newTestAuthService(ctrl)

	var stored models.Secret
	users.EXPECT().
		CreateUser(gomock.Any(), gomock.Cond(func(u models.User) bool {
			return u.Name == "Ann" && u.Email == "ann@example.com" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password1")) == nil
		})).
		Return(models.User{ID: 7, Name: "Ann", Email: "ann@example.com"}, nil)
	secrets.EXPECT().
		CreateSecret(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Secret) (models.Secret, error) {
			stored = s
			s.ID = 1
			return s, nil
		})

	result, err := svc.Signup(context.Background(), models.SignupRequest{
		Name: " Ann ", Email: " Ann@Example.com ", Password: "password1",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), result.User.ID)
	token, err := svc.ParseToken(context.Background(), result.APIKey)
	require.NoError(t, err)
	assert.Equal(t, int64(7), token.UserID)

	require.Len(t, mailer.confirmKeys, 1)
	assert.Equal(t, models.SecretConfirmEmail, stored.Purpose)
	assert.Equal(t, int64(7), stored.UserID)
	assert.Equal(t, authNow.Add(testServerApp.SecretDuration), stored.ExpiresAt)
	assert.Equal(t, utils.NewHasher(testServerApp.HashKey).HashString(mailer.confirmKeys[0]), stored.KeyHash)
	assert.NotEqual(t, mailer.confirmKeys[0], stored.KeyHash)
}

func TestAuthService_Signup_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		req     models.SignupRequest
		wantErr error
	}{
		{name: "no name", req: models.SignupRequest{Name: " ", Email: "a@b.co", Password: "password1"}, wantErr: validators.ErrNameRequired},
		{name: "bad email", req: models.SignupRequest{Name: "Ann", Email: "not-an-email", Password: "password1"}, wantErr: validators.ErrInvalidEmail},
		{name: "short password", req: models.SignupRequest{Name: "Ann", Email: "a@b.co", Password: "short"}, wantErr: validators.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _, _ := newTestAuthService(ctrl)

			_, err := svc.Signup(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, validators.ErrValidation)
		})
	}
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _, _ := newTestAuthService(ctrl)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Signup(context.Background(), models.SignupRequest{Name: "Ann", Email: "ann@example.com", Password: "password1"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_Signup_ConfirmationFailureDoesNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, secrets, _ := newTestAuthService(ctrl)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{ID: 3, Name: "Ann"}, nil)
	secrets.EXPECT().CreateSecret(gomock.Any(), gomock.Any()).Return(models.Secret{}, errors.New("db down"))

	result, err := svc.Signup(context.Background(), models.SignupRequest{Name: "Ann", Email: "ann@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.APIKey)
}

// ─────────────────────────────────────────────
// Authenticate
// ─────────────────────────────────────────────

func TestAuthService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _, _ := newTestAuthService(ctrl)

	user := models.User{ID: 4, Email: "ann@example.com", PasswordHash: hashPassword(t, "password1")}
	users.EXPECT().GetUserByEmail(gomock.Any(), "ann@example.com").Return(user, nil)
	users.EXPECT().TouchLastActive(gomock.Any(), int64(4), authNow).Return(nil)

	result, err := svc.Authenticate(context.Background(), models.Credentials{Email: "ANN@example.com", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, authNow, result.User.LastActive)
	assert.NotEmpty(t, result.APIKey)
}

func TestAuthService_Authenticate_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _, _ := newTestAuthService(ctrl)

		users.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNotFound)

		_, err := svc.Authenticate(context.Background(), models.Credentials{Email: "x@example.com", Password: "password1"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, users, _, _ := newTestAuthService(ctrl)

		users.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).
			Return(models.User{ID: 4, PasswordHash: hashPassword(t, "password1")}, nil)

		_, err := svc.Authenticate(context.Background(), models.Credentials{Email: "x@example.com", Password: "password2"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

// ─────────────────────────────────────────────
// Reset password and email confirmation
// ─────────────────────────────────────────────

func TestAuthService_RequestResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, secrets, mailer := newTestAuthService(ctrl)

	users.EXPECT().GetUserByEmail(gomock.Any(), "ann@example.com").Return(models.User{ID: 4}, nil)
	secrets.EXPECT().
		CreateSecret(gomock.Any(), gomock.Cond(func(s models.Secret) bool {
			return s.UserID == 4 && s.Purpose == models.SecretResetPassword
		})).
		Return(models.Secret{ID: 1}, nil)

	require.NoError(t, svc.RequestResetPassword(context.Background(), "ann@example.com"))
	assert.Len(t, mailer.resetKeys, 1)
}

func TestAuthService_RequestResetPassword_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _, mailer := newTestAuthService(ctrl)

	users.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrNotFound)

	err := svc.RequestResetPassword(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, mailer.resetKeys)
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, secrets, _ := newTestAuthService(ctrl)

	hash := svc.hasher.HashString("the-key")
	secrets.EXPECT().FindActiveSecret(gomock.Any(), hash, models.SecretResetPassword, authNow).
		Return(models.Secret{ID: 5, UserID: 4}, nil)
	secrets.EXPECT().MarkSecretUsed(gomock.Any(), int64(5)).Return(nil)
	users.EXPECT().
		UpdatePassword(gomock.Any(), int64(4), gomock.Cond(func(h string) bool {
			return bcrypt.CompareHashAndPassword([]byte(h), []byte("new-password")) == nil
		})).
		Return(nil)
	users.EXPECT().GetUserByID(gomock.Any(), int64(4)).Return(models.User{ID: 4}, nil)

	result, err := svc.ResetPassword(context.Background(), models.ResetPasswordRequest{Key: " the-key ", Password: "new-password"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.User.ID)
	assert.NotEmpty(t, result.APIKey)
}

func TestAuthService_ResetPassword_InvalidKey(t *testing.T) {
	tests := []struct {
		name  string
		setup func(secrets *mock.MockSecretRepository)
	}{
		{
			name: "unknown or expired",
			setup: func(secrets *mock.MockSecretRepository) {
				secrets.EXPECT().FindActiveSecret(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.Secret{}, store.ErrNotFound)
			},
		},
		{
			name: "already used",
			setup: func(secrets *mock.MockSecretRepository) {
				secrets.EXPECT().FindActiveSecret(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.Secret{ID: 5, UserID: 4}, nil)
				secrets.EXPECT().MarkSecretUsed(gomock.Any(), int64(5)).Return(store.ErrSecretAlreadyUsed)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, secrets, _ := newTestAuthService(ctrl)
			tt.setup(secrets)

			_, err := svc.ResetPassword(context.Background(), models.ResetPasswordRequest{Key: "k", Password: "new-password"})
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestAuthService_ConfirmEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, secrets, _ := newTestAuthService(ctrl)

	secrets.EXPECT().FindActiveSecret(gomock.Any(), svc.hasher.HashString("k"), models.SecretConfirmEmail, authNow).
		Return(models.Secret{ID: 2, UserID: 4}, nil)
	secrets.EXPECT().MarkSecretUsed(gomock.Any(), int64(2)).Return(nil)
	users.EXPECT().GetUserByID(gomock.Any(), int64(4)).Return(models.User{ID: 4}, nil)
	users.EXPECT().
		UpdateUser(gomock.Any(), gomock.Cond(func(u models.User) bool { return u.ID == 4 && u.EmailConfirmed })).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) { return u, nil })

	user, err := svc.ConfirmEmail(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, user.EmailConfirmed)
}

func TestAuthService_ConfirmEmail_AlreadyConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, secrets, _ := newTestAuthService(ctrl)

	secrets.EXPECT().FindActiveSecret(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Secret{ID: 2, UserID: 4}, nil)
	secrets.EXPECT().MarkSecretUsed(gomock.Any(), int64(2)).Return(nil)
	users.EXPECT().GetUserByID(gomock.Any(), int64(4)).Return(models.User{ID: 4, EmailConfirmed: true}, nil)

	user, err := svc.ConfirmEmail(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, user.EmailConfirmed)
}

func TestAuthService_ConfirmEmail_EmptyKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestAuthService(ctrl)

	_, err := svc.ConfirmEmail(context.Background(), "  ")
	assert.ErrorIs(t, err, validators.ErrKeyRequired)
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestAuthService_ParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, _ := newTestAuthService(ctrl)

	token, err := svc.CreateToken(context.Background(), models.User{ID: 11})
	require.NoError(t, err)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(11), parsed.UserID)

	other := NewAuthService(nil, nil, nil, nil, config.ServerApp{TokenSignKey: "other", TokenIssuer: testServerApp.TokenIssuer}, logger.Nop())
	_, err = other.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestSecretsCleaner(t *testing.T) {
	ctrl := gomock.NewController(t)
	secrets := mock.NewMockSecretRepository(ctrl)

	cleaner := NewSecretsCleaner(secrets).(*secretsCleaner)
	cleaner.now = func() time.Time { return authNow }
	secrets.EXPECT().DeleteExpiredSecrets(gomock.Any(), authNow).Return(int64(3), nil)

	n, err := cleaner.DeleteExpiredSecrets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
