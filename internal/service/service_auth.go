// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-community-share/internal/config"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/store"
	"github.com/MKhiriev/go-community-share/internal/utils"
	"github.com/MKhiriev/go-community-share/internal/validators"
	"github.com/MKhiriev/go-community-share/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; API keys are HS256 JWTs; reset and
// confirmation keys are random UUIDs of which only the HMAC-SHA256 digest is
// persisted.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// secretRepository stores the digests of single-use keys.
	secretRepository store.SecretRepository

	mailer    Mailer
	validator validators.Validator
	hasher    *utils.Hasher
	keys      *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify API keys.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued API key.
	// Keys whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued API key remains valid.
	tokenDuration time.Duration

	// secretDuration controls how long a reset or confirmation key can be
	// redeemed.
	secretDuration time.Duration

	bcryptCost int
	now        func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with security
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(users store.UserRepository, secrets store.SecretRepository, mailer Mailer, validator validators.Validator, cfg config.ServerApp, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   users,
		secretRepository: secrets,
		mailer:           mailer,
		validator:        validator,
		hasher:           utils.NewHasher(cfg.HashKey),
		keys:             utils.NewUUIDGenerator(),
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		secretDuration:   cfg.SecretDuration,
		bcryptCost:       bcrypt.DefaultCost,
		now:              time.Now,
		logger:           logger,
	}
}

// Signup creates an account and signs it in.
//
// The request is validated (name, email format, password length), the
// password is hashed with bcrypt and the user is persisted. A confirmation
// key is then mailed; failing to deliver it does not fail the signup.
//
// Returns the created user with a fresh API key or:
//   - a [*validators.Error] for invalid input.
//   - store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Str("email", req.Email).Msg("user creation ended with error")
		return models.AuthResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if err = a.sendKey(ctx, user, models.SecretConfirmEmail); err != nil {
		log.Err(err).Str("func", "*authService.Signup").Int64("user_id", user.ID).Msg("confirmation key was not delivered")
	}

	return a.signIn(ctx, user)
}

// Authenticate checks email and password.
//
// Unknown emails and wrong passwords both yield ErrInvalidCredentials so
// that callers cannot probe for registered addresses. On success the user's
// last_active is refreshed.
func (a *authService) Authenticate(ctx context.Context, creds models.Credentials) (models.AuthResult, error) {
	log := logger.FromContext(ctx)

	creds.Email = normalizeEmail(creds.Email)
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.AuthResult{}, err
	}

	user, err := a.userRepository.GetUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.AuthResult{}, ErrInvalidCredentials
		}
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		log.Info().Str("func", "*authService.Authenticate").Int64("user_id", user.ID).Msg("wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	now := a.now()
	if err = a.userRepository.TouchLastActive(ctx, user.ID, now); err != nil {
		log.Err(err).Str("func", "*authService.Authenticate").Int64("user_id", user.ID).Msg("last_active was not updated")
	} else {
		user.LastActive = now
	}

	return a.signIn(ctx, user)
}

// RequestResetPassword mails a reset key to the owner of email. An unknown
// email yields store.ErrNotFound.
func (a *authService) RequestResetPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if err := a.validator.Validate(ctx, models.Credentials{Email: email}, validators.FieldEmail); err != nil {
		return err
	}

	user, err := a.userRepository.GetUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("user search by email failed: %w", err)
	}

	return a.sendKey(ctx, user, models.SecretResetPassword)
}

// ResetPassword redeems a reset key, stores the new password and signs the
// user in. Unknown, expired and used keys all yield ErrInvalidKey.
func (a *authService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.AuthResult, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthResult{}, err
	}

	secret, err := a.redeem(ctx, req.Key, models.SecretResetPassword)
	if err != nil {
		return models.AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("error hashing password: %w", err)
	}
	if err = a.userRepository.UpdatePassword(ctx, secret.UserID, string(hash)); err != nil {
		return models.AuthResult{}, fmt.Errorf("password update failed: %w", err)
	}

	user, err := a.userRepository.GetUserByID(ctx, secret.UserID)
	if err != nil {
		return models.AuthResult{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return a.signIn(ctx, user)
}

// ConfirmEmail redeems a confirmation key and flags the owner's email as
// confirmed.
func (a *authService) ConfirmEmail(ctx context.Context, key string) (models.User, error) {
	if strings.TrimSpace(key) == "" {
		return models.User{}, validators.ErrKeyRequired
	}

	secret, err := a.redeem(ctx, key, models.SecretConfirmEmail)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.GetUserByID(ctx, secret.UserID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	if user.EmailConfirmed {
		return user, nil
	}

	user.EmailConfirmed = true
	updated, err := a.userRepository.UpdateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}
	return updated, nil
}

// CreateToken issues a signed API key for the given user.
//
// The key is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw API key.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) signIn(ctx context.Context, user models.User) (models.AuthResult, error) {
	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.AuthResult{}, err
	}
	return models.AuthResult{User: user, APIKey: token.SignedString}, nil
}

// sendKey stores the digest of a fresh key for purpose and mails the key.
func (a *authService) sendKey(ctx context.Context, user models.User, purpose string) error {
	key := a.keys.Generate()

	_, err := a.secretRepository.CreateSecret(ctx, models.Secret{
		UserID:    user.ID,
		Purpose:   purpose,
		KeyHash:   a.hasher.HashString(key),
		ExpiresAt: a.now().Add(a.secretDuration),
	})
	if err != nil {
		return fmt.Errorf("error storing %s key: %w", purpose, err)
	}

	switch purpose {
	case models.SecretResetPassword:
		return a.mailer.SendResetPassword(ctx, user, key)
	default:
		return a.mailer.SendConfirmEmail(ctx, user, key)
	}
}

// redeem marks the secret behind key used and returns it.
func (a *authService) redeem(ctx context.Context, key, purpose string) (models.Secret, error) {
	secret, err := a.secretRepository.FindActiveSecret(ctx, a.hasher.HashString(strings.TrimSpace(key)), purpose, a.now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Secret{}, ErrInvalidKey
		}
		return models.Secret{}, fmt.Errorf("secret lookup failed: %w", err)
	}

	if err = a.secretRepository.MarkSecretUsed(ctx, secret.ID); err != nil {
		if errors.Is(err, store.ErrSecretAlreadyUsed) {
			return models.Secret{}, ErrInvalidKey
		}
		return models.Secret{}, fmt.Errorf("secret update failed: %w", err)
	}

	return secret, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type secretsCleaner struct {
	secrets store.SecretRepository
	now     func() time.Time
}

// NewSecretsCleaner returns the job body of the expired key cleanup.
func NewSecretsCleaner(secrets store.SecretRepository) SecretsCleaner {
	return &secretsCleaner{secrets: secrets, now: time.Now}
}

func (c *secretsCleaner) DeleteExpiredSecrets(ctx context.Context) (int64, error) {
	return c.secrets.DeleteExpiredSecrets(ctx, c.now())
}
