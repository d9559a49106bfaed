// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-community-share/internal/adapter"
	"github.com/MKhiriev/go-community-share/internal/app"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/models"
)

type clientSearchService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func newClientSearchService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSearchService {
	return &clientSearchService{adapter: serverAdapter, logger: logger}
}

// ForPartner expects exactly one partner search per user. None is reported
// as not found; with several the first one wins.
func (s *clientSearchService) ForPartner(ctx context.Context, userID int64) (models.Search, bool, error) {
	query := url.Values{}
	query.Set("searcher_user_id", strconv.FormatInt(userID, 10))
	query.Set("searcher_role", models.RolePartner)

	searches, err := s.adapter.Searches().GetMany(ctx, query)
	if err != nil {
		return models.Search{}, false, newViewError(app.MsgFailedToLoadResults, err)
	}

	switch len(searches) {
	case 0:
		s.logger.Info().Str("func", "*clientSearchService.ForPartner").Int64("user_id", userID).Msg("community partner has no search")
		return models.Search{}, false, nil
	case 1:
		return searches[0], true, nil
	default:
		s.logger.Warn().Str("func", "*clientSearchService.ForPartner").
			Int64("user_id", userID).
			Int("count", len(searches)).
			Msg("community partner has more than one search, using the first")
		return searches[0], true, nil
	}
}

func (s *clientSearchService) Results(ctx context.Context, searchID int64) ([]models.Search, error) {
	results, err := s.adapter.Searches().Results(ctx, searchID)
	if err != nil {
		return nil, newViewError(app.MsgFailedToLoadResults, err)
	}
	return results, nil
}

func (s *clientSearchService) Save(ctx context.Context, search models.Search) (models.Search, error) {
	search.Labels = normalizeLabels(search.Labels)
	saved, err := s.adapter.Searches().Save(ctx, search)
	if err != nil {
		return models.Search{}, newViewError(app.MsgFailedToSaveSearch, err)
	}
	return saved, nil
}
