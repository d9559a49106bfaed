// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-community-share/internal/config"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/models"
)

type appInfoService struct {
	appVersion string
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService serves the configured version together with the build
// metadata injected at link time.
func NewAppInfoService(cfg config.ServerApp, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		buildInfo:  buildInfo,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// GetBuildInfo reports the configured version when the binary was built
// without one.
func (s *appInfoService) GetBuildInfo(ctx context.Context) models.BuildInfoResponse {
	resp := s.buildInfo.Response()
	if resp.Version == "" || resp.Version == "N/A" {
		resp.Version = s.appVersion
	}
	return resp
}
