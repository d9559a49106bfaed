// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-community-share/internal/config"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/service"
)

type Handler struct {
	services *service.Services

	limiters *limiterPool
	metrics  *metrics

	logger *logger.Logger
}

// NewHandler builds the REST handler. cfg supplies the rate limit of the
// auth endpoints.
func NewHandler(services *service.Services, cfg config.ServerHTTP, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limiters: newLimiterPool(cfg.AuthRateLimit, cfg.AuthRateBurst),
		metrics:  newMetrics(),
		logger:   logger,
	}
}
