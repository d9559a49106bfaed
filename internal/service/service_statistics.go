// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-community-share/internal/store"
	"github.com/MKhiriev/go-community-share/models"
)

type statisticsService struct {
	statisticsRepository store.StatisticsRepository
}

func NewStatisticsService(statistics store.StatisticsRepository) StatisticsService {
	return &statisticsService{statisticsRepository: statistics}
}

func (s *statisticsService) GetStatistics(ctx context.Context) (models.Statistics, error) {
	stats, err := s.statisticsRepository.GetStatistics(ctx)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("statistics lookup failed: %w", err)
	}
	return stats, nil
}
