// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-community-share/internal/adapter"
	"github.com/MKhiriev/go-community-share/internal/app"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/session"
	"github.com/MKhiriev/go-community-share/internal/store"
	"github.com/MKhiriev/go-community-share/internal/utils"
	"github.com/MKhiriev/go-community-share/models"
)

// sessionKeeper mirrors the Session into the local session store. A failed
// write is logged and otherwise ignored: the user stays signed in for the
// running client.
type sessionKeeper struct {
	session  *session.Session
	sessions store.SessionRepository
	now      func() time.Time
	logger   *logger.Logger
}

func (k *sessionKeeper) signIn(ctx context.Context, res models.AuthResult) {
	k.session.SetActiveUser(res.User, res.APIKey)
	k.persist(ctx)
}

func (k *sessionKeeper) persist(ctx context.Context) {
	user, ok := k.session.ActiveUser()
	if !ok || k.sessions == nil {
		return
	}

	stored := models.StoredSession{User: user, APIKey: k.session.APIKey(), SavedAt: k.now()}
	if err := k.sessions.SaveSession(ctx, stored); err != nil {
		k.logger.Warn().Err(err).Str("func", "*sessionKeeper.persist").Int64("user_id", user.ID).Msg("could not persist session")
	}
}

func (k *sessionKeeper) forget(ctx context.Context) error {
	k.session.Clear()
	if k.sessions == nil {
		return nil
	}
	return k.sessions.DeleteSession(ctx)
}

type clientAuthService struct {
	adapter adapter.ServerAdapter
	keeper  *sessionKeeper
	logger  *logger.Logger
}

// NewClientAuthService builds the auth flows over serverAdapter. sessions may
// be nil, in which case nothing survives a restart.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, s *session.Session, sessions store.SessionRepository, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter: serverAdapter,
		keeper:  &sessionKeeper{session: s, sessions: sessions, now: time.Now, logger: logger},
		logger:  logger,
	}
}

func (a *clientAuthService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	res, err := a.adapter.Auth().RequestAPIKey(ctx, models.Credentials{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		a.logger.Debug().Err(err).Str("func", "*clientAuthService.Authenticate").Msg("authentication failed")
		return models.User{}, newViewError(app.MsgAuthenticationFailed, err)
	}

	a.keeper.signIn(ctx, res)
	return res.User, nil
}

func (a *clientAuthService) RequestResetPassword(ctx context.Context, email string) error {
	if err := a.adapter.Auth().RequestResetPassword(ctx, strings.TrimSpace(email)); err != nil {
		return &ViewError{
			Message: combineMessages(app.MsgFailedToResetPassword, resetRequestMessage(err)),
			Err:     err,
		}
	}
	return nil
}

// ResetPassword signs the user in with the key the reset returns.
func (a *clientAuthService) ResetPassword(ctx context.Context, key, password string) (models.User, error) {
	res, err := a.adapter.Auth().ResetPassword(ctx, strings.TrimSpace(key), password)
	if err != nil {
		return models.User{}, &ViewError{Message: serverMessage(err), Err: err}
	}

	a.keeper.signIn(ctx, res)
	return res.User, nil
}

// ConfirmEmail refreshes the session user when the confirmed account is the
// signed-in one.
func (a *clientAuthService) ConfirmEmail(ctx context.Context, key string) (models.User, error) {
	user, err := a.adapter.Auth().ConfirmEmail(ctx, strings.TrimSpace(key))
	if err != nil {
		return models.User{}, newViewError(app.MsgFailedToConfirmEmail, err)
	}

	if a.keeper.session.UpdateActiveUser(user) {
		a.keeper.persist(ctx)
	}
	return user, nil
}

func (a *clientAuthService) Clean(ctx context.Context) error {
	return a.keeper.forget(ctx)
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.User, bool) {
	if a.keeper.sessions == nil {
		return models.User{}, false
	}

	log := a.logger.GetChildLogger()

	stored, err := a.keeper.sessions.LoadSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrNoStoredSession) {
			log.Warn().Err(err).Str("func", "*clientAuthService.RestoreSession").Msg("could not load stored session")
		}
		return models.User{}, false
	}

	expiry, err := utils.APIKeyExpiry(stored.APIKey)
	if err != nil || !expiry.After(a.keeper.now()) {
		log.Info().Str("func", "*clientAuthService.RestoreSession").Msg("stored api key expired, signing out")
		if delErr := a.keeper.forget(ctx); delErr != nil {
			log.Warn().Err(delErr).Str("func", "*clientAuthService.RestoreSession").Msg("could not delete stored session")
		}
		return models.User{}, false
	}

	a.keeper.session.SetActiveUser(stored.User, stored.APIKey)
	return stored.User, true
}
