// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/models"
)

type statisticsRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewStatisticsRepository(db *DB, logger *logger.Logger) StatisticsRepository {
	logger.Debug().Msg("creating statistics repository")
	return &statisticsRepository{db: db, logger: logger}
}

// GetStatistics counts everything in one round trip.
func (r *statisticsRepository) GetStatistics(ctx context.Context) (models.Statistics, error) {
	var s models.Statistics
	err := r.db.QueryRowContext(ctx, getStatistics).Scan(
		&s.Users,
		&s.Educators,
		&s.CommunityPartners,
		&s.ActiveSearches,
		&s.Conversations,
		&s.Messages,
		&s.InstitutionsListed,
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*statisticsRepository.GetStatistics").Msg("error counting statistics")
		return models.Statistics{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	return s, nil
}
