// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/adhocore/gronx"
)

// secretsCleanupWorker purges expired API, reset and confirmation keys on a
// cron schedule.
type secretsCleanupWorker struct {
	cleaner  service.SecretsCleaner
	schedule string

	now   func() time.Time
	after func(time.Duration) <-chan time.Time

	logger *logger.Logger
}

func newSecretsCleanupWorker(cleaner service.SecretsCleaner, schedule string, logger *logger.Logger) *secretsCleanupWorker {
	return &secretsCleanupWorker{
		cleaner:  cleaner,
		schedule: schedule,
		now:      time.Now,
		after:    time.After,
		logger:   logger.WithStr("worker", "secrets_cleanup"),
	}
}

func (w *secretsCleanupWorker) Run(ctx context.Context) error {
	if !gronx.IsValid(w.schedule) {
		return fmt.Errorf("invalid cleanup schedule %q", w.schedule)
	}

	w.logger.Info().Str("schedule", w.schedule).Msg("secrets cleanup started")
	for {
		next, err := gronx.NextTickAfter(w.schedule, w.now(), false)
		if err != nil {
			return fmt.Errorf("next cleanup tick: %w", err)
		}

		select {
		case <-ctx.Done():
			w.logger.Info().Msg("secrets cleanup stopped")
			return nil
		case <-w.after(next.Sub(w.now())):
		}

		w.cleanup(ctx)
	}
}

// cleanup runs one purge. Failures are logged and retried on the next tick.
func (w *secretsCleanupWorker) cleanup(ctx context.Context) {
	deleted, err := w.cleaner.DeleteExpiredSecrets(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		w.logger.Error().Err(err).Msg("expired secrets cleanup failed")
		return
	}
	w.logger.Debug().Int64("deleted", deleted).Msg("expired secrets purged")
}
