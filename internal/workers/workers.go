// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-community-share/internal/config"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/service"
	"golang.org/x/sync/errgroup"
)

// Workers runs a fixed set of workers concurrently.
type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers creates the server's background jobs.
func NewWorkers(services *service.Services, cfg config.ServerHTTP, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newSecretsCleanupWorker(services.SecretsCleaner, cfg.CleanupSchedule, logger),
		},
		logger: logger,
	}
}

// Run starts every worker and waits for all of them. The first failure
// cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}
