// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/MKhiriev/go-community-share/internal/tui"
)

var errNoUI = errors.New("client ui is required")

type App struct {
	services *service.ClientServices
	ui       UI
	storage  io.Closer
	logger   *logger.Logger
}

// NewApp builds the client application. storage is closed when Run
// returns and may be nil.
func NewApp(services *service.ClientServices, ui UI, storage io.Closer, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errNoUI
	}
	return &App{services: services, ui: ui, storage: storage, logger: logger}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.closeStorage()

	if user, ok := a.services.AuthService.RestoreSession(ctx); ok {
		a.logger.Info().Int64("user_id", user.ID).Msg("session restored")
	}

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) || errors.Is(err, context.Canceled) {
		a.logger.Info().Msg("client stopped by user")
		return nil
	}
	if err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

func (a *App) closeStorage() {
	if a.storage == nil {
		return
	}
	if err := a.storage.Close(); err != nil {
		a.logger.Error().Err(err).Msg("could not close local storage")
	}
}
