// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/store"
	"github.com/MKhiriev/go-community-share/internal/validators"
	"github.com/MKhiriev/go-community-share/models"
)

type searchService struct {
	requesters
	userRepository   store.UserRepository
	searchRepository store.SearchRepository
	validator        validators.Validator
	logger           *logger.Logger
}

func NewSearchService(users store.UserRepository, searches store.SearchRepository, validator validators.Validator, logger *logger.Logger) SearchService {
	return &searchService{
		requesters:       requesters{users: users},
		userRepository:   users,
		searchRepository: searches,
		validator:        validator,
		logger:           logger,
	}
}

func (s *searchService) Get(ctx context.Context, id int64) (models.Search, error) {
	if _, err := s.requester(ctx); err != nil {
		return models.Search{}, err
	}
	return s.searchRepository.GetSearchByID(ctx, id)
}

// List filters by searcher_user_id, searcher_role and active.
func (s *searchService) List(ctx context.Context, query url.Values) ([]models.Search, error) {
	if _, err := s.requester(ctx); err != nil {
		return nil, err
	}

	searcherID, _, err := queryInt64(query, "searcher_user_id")
	if err != nil {
		return nil, err
	}
	filter := store.SearchFilter{SearcherUserID: searcherID}

	if role := query.Get("searcher_role"); role != "" {
		if !models.IsValidRole(role) {
			return nil, validators.ErrInvalidSearchRoles
		}
		filter.SearcherRole = role
	}
	if active := query.Get("active"); active != "" {
		filter.ActiveOnly, err = strconv.ParseBool(active)
		if err != nil {
			return nil, fmt.Errorf("%w: active must be a boolean", ErrInvalidDataProvided)
		}
	}

	return s.searchRepository.ListSearches(ctx, filter)
}

// Create saves a search for the requester. Administrators may create
// searches for anyone.
func (s *searchService) Create(ctx context.Context, item models.Search) (models.Search, error) {
	requester, err := s.requester(ctx)
	if err != nil {
		return models.Search{}, err
	}

	if item.SearcherUserID == 0 {
		item.SearcherUserID = requester.ID
	}
	if item.SearcherUserID != requester.ID && !requester.IsAdministrator {
		return models.Search{}, ErrForbidden
	}

	item.ID = 0
	item.SearcherUser = nil
	item.Labels = normalizeLabels(item.Labels)
	if err = s.validator.Validate(ctx, item); err != nil {
		return models.Search{}, err
	}

	created, err := s.searchRepository.CreateSearch(ctx, item)
	if err != nil {
		return models.Search{}, fmt.Errorf("search creation failed: %w", err)
	}
	return created, nil
}

// Update rewrites every search field except the searcher.
func (s *searchService) Update(ctx context.Context, id int64, item models.Search) (models.Search, error) {
	requester, err := s.requester(ctx)
	if err != nil {
		return models.Search{}, err
	}

	existing, err := s.searchRepository.GetSearchByID(ctx, id)
	if err != nil {
		return models.Search{}, err
	}
	if existing.SearcherUserID != requester.ID && !requester.IsAdministrator {
		return models.Search{}, ErrForbidden
	}

	item.ID = id
	item.SearcherUserID = existing.SearcherUserID
	item.SearcherUser = nil
	item.Labels = normalizeLabels(item.Labels)
	if err = s.validator.Validate(ctx, item); err != nil {
		return models.Search{}, err
	}

	updated, err := s.searchRepository.UpdateSearch(ctx, item)
	if err != nil {
		return models.Search{}, fmt.Errorf("search update failed: %w", err)
	}
	return updated, nil
}

// Results returns the active searches of the opposite role that share a
// label with the search, or all of them when the search has no labels. The
// searcher's own searches are never included. Each result carries a public
// snapshot of its searcher.
func (s *searchService) Results(ctx context.Context, id int64) ([]models.Search, error) {
	if _, err := s.requester(ctx); err != nil {
		return nil, err
	}

	search, err := s.searchRepository.GetSearchByID(ctx, id)
	if err != nil {
		return nil, err
	}

	candidates, err := s.searchRepository.ListSearches(ctx, store.SearchFilter{
		SearcherRole:  search.SearchingForRole,
		ActiveOnly:    true,
		ExcludeUserID: search.SearcherUserID,
	})
	if err != nil {
		return nil, fmt.Errorf("search results lookup failed: %w", err)
	}

	snapshots := newUserSnapshots(s.userRepository)
	results := make([]models.Search, 0, len(candidates))
	for _, candidate := range candidates {
		if !sharesLabel(search.Labels, candidate.Labels) {
			continue
		}

		searcher, err := snapshots.get(ctx, candidate.SearcherUserID)
		if err != nil {
			s.logger.Warn().Err(err).
				Str("func", "*searchService.Results").
				Int64("search_id", candidate.ID).
				Msg("searcher of a matching search could not be loaded")
			continue
		}
		candidate.SearcherUser = searcher
		results = append(results, candidate)
	}

	return results, nil
}

func sharesLabel(wanted, offered []string) bool {
	if len(wanted) == 0 {
		return true
	}

	set := make(map[string]struct{}, len(offered))
	for _, l := range offered {
		set[l] = struct{}{}
	}
	for _, l := range wanted {
		if _, ok := set[l]; ok {
			return true
		}
	}
	return false
}
