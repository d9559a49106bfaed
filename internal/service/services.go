// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-community-share/internal/config"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/store"
	"github.com/MKhiriev/go-community-share/internal/validators"
	"github.com/MKhiriev/go-community-share/models"
)

// Services groups the server business logic consumed by the HTTP handlers
// and the background workers.
type Services struct {
	AuthService         AuthService
	UserService         UserService
	InstitutionService  InstitutionService
	SearchService       SearchService
	ConversationService ConversationService
	MessageService      MessageService
	StatisticsService   StatisticsService
	AppInfoService      AppInfoService
	SecretsCleaner      SecretsCleaner
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	validator := validators.NewCommunityValidator()
	mailer := NewLogMailer("http://"+cfg.Server.HTTPAddress, logger)

	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, storages.SecretRepository, mailer, validator, cfg.App, logger),
		UserService:         NewUserService(storages.UserRepository, validator, logger),
		InstitutionService:  NewInstitutionService(storages.UserRepository, storages.InstitutionRepository, validator),
		SearchService:       NewSearchService(storages.UserRepository, storages.SearchRepository, validator, logger),
		ConversationService: NewConversationService(storages.UserRepository, storages.ConversationRepository, storages.MessageRepository, validator, logger),
		MessageService:      NewMessageService(storages.UserRepository, storages.ConversationRepository, storages.MessageRepository, validator, logger),
		StatisticsService:   NewStatisticsService(storages.StatisticsRepository),
		AppInfoService:      appInfoService,
		SecretsCleaner:      NewSecretsCleaner(storages.SecretRepository),
	}, nil
}
