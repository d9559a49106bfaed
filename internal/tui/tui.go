// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the CommunityShare client,
// built on Bubble Tea. Every page is a tea.Model registered with
// [RootModel], which routes between them.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/MKhiriev/go-community-share/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoServices = errors.New("client services are required")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServices
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the landing page and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	root := NewRootModel(t.pages(ctx), t.services.RoutingService.LandingPage(), t.services.Session)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	s := t.services
	return map[string]tea.Model{
		service.PageMenu:                 NewMenuModel(ctx, s),
		service.PageLogin:                NewLoginModel(ctx, s.AuthService, s.RoutingService),
		service.PageSignup:               NewSignupModel(ctx, s.SignupService),
		service.PageRequestResetPassword: NewRequestResetModel(ctx, s.AuthService),
		service.PageResetPassword:        NewResetPasswordModel(ctx, s.AuthService),
		service.PageConfirmEmail:         NewConfirmEmailModel(ctx, s.AuthService),
		service.PageStatistics:           NewStatisticsModel(ctx, s.StatisticsService),
		service.PageInbox:                NewInboxModel(ctx, s.ConversationService, s.Session),
		service.PageConversation:         NewConversationModel(ctx, s.ConversationService, s.Session, t.logger),
		service.PageResults:              NewResultsModel(ctx, s.SearchService, s.ConversationService, s.Session),
		service.PageSettings:             NewSettingsModel(ctx, s.UserService, s.Session),
		service.PageVersion:              NewVersionModel(ctx, s.StatisticsService, t.buildInfo),
	}
}
