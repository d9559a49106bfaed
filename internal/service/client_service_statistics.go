// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-community-share/internal/adapter"
	"github.com/MKhiriev/go-community-share/internal/app"
	"github.com/MKhiriev/go-community-share/models"
)

type clientStatisticsService struct {
	adapter adapter.ServerAdapter
}

func newClientStatisticsService(serverAdapter adapter.ServerAdapter) ClientStatisticsService {
	return &clientStatisticsService{adapter: serverAdapter}
}

func (s *clientStatisticsService) Get(ctx context.Context) (models.Statistics, error) {
	stats, err := s.adapter.Statistics(ctx)
	if err != nil {
		return models.Statistics{}, newViewError(app.MsgFailedToFetchStatistics, err)
	}
	return stats, nil
}

func (s *clientStatisticsService) ServerVersion(ctx context.Context) (models.BuildInfoResponse, error) {
	info, err := s.adapter.Version(ctx)
	if err != nil {
		return models.BuildInfoResponse{}, &ViewError{Message: serverMessage(err), Err: err}
	}
	return info, nil
}
