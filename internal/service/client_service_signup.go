// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-community-share/internal/adapter"
	"github.com/MKhiriev/go-community-share/internal/app"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/models"
)

// SignupResult is what a signup produced. After a failed settings save it
// still holds the created user.
type SignupResult struct {
	User        models.User
	Search      models.Search
	ResultsPath string
}

// RoleSettings saves the role-specific part of a fresh account.
type RoleSettings interface {
	apply(ctx context.Context, s *signupService, user models.User) (models.User, models.Search, error)
}

// PartnerSettings are the settings a community partner fills in at signup.
type PartnerSettings struct {
	InstitutionAssociations []models.InstitutionAssociation
	Labels                  []string
}

func (p PartnerSettings) apply(ctx context.Context, s *signupService, user models.User) (models.User, models.Search, error) {
	user.InstitutionAssociations = models.FilterInstitutionAssociations(p.InstitutionAssociations)
	saved, err := s.users.SaveSettings(ctx, user)
	if err != nil {
		return user, models.Search{}, err
	}

	search, found, err := s.searches.ForPartner(ctx, saved.ID)
	if err != nil {
		return saved, models.Search{}, err
	}
	if !found {
		search = models.Search{
			SearcherUserID:   saved.ID,
			SearcherRole:     models.RolePartner,
			SearchingForRole: models.RoleEducator,
			Active:           true,
		}
	}
	search.Labels = normalizeLabels(p.Labels)

	search, err = s.searches.Save(ctx, search)
	return saved, search, err
}

// EducatorSettings are the settings an educator fills in at signup.
type EducatorSettings struct {
	InstitutionAssociations []models.InstitutionAssociation
	Labels                  []string
	Latitude                *float64
	Longitude               *float64
	Distance                *float64
}

func (e EducatorSettings) apply(ctx context.Context, s *signupService, user models.User) (models.User, models.Search, error) {
	user.InstitutionAssociations = models.FilterInstitutionAssociations(e.InstitutionAssociations)
	saved, err := s.users.SaveSettings(ctx, user)
	if err != nil {
		return user, models.Search{}, err
	}

	search, err := s.searches.Save(ctx, models.Search{
		SearcherUserID:   saved.ID,
		SearcherRole:     models.RoleEducator,
		SearchingForRole: models.RolePartner,
		Active:           true,
		Labels:           normalizeLabels(e.Labels),
		Latitude:         e.Latitude,
		Longitude:        e.Longitude,
		Distance:         e.Distance,
	})
	return saved, search, err
}

type signupService struct {
	adapter  adapter.ServerAdapter
	keeper   *sessionKeeper
	users    ClientUserService
	searches ClientSearchService
	logger   *logger.Logger
}

func newSignupService(serverAdapter adapter.ServerAdapter, keeper *sessionKeeper, users ClientUserService, searches ClientSearchService, logger *logger.Logger) SignupService {
	return &signupService{
		adapter:  serverAdapter,
		keeper:   keeper,
		users:    users,
		searches: searches,
		logger:   logger,
	}
}

func (s *signupService) SignUpCommunityPartner(ctx context.Context, req models.SignupRequest, settings PartnerSettings) (SignupResult, error) {
	return s.signUp(ctx, req, settings)
}

func (s *signupService) SignUpEducator(ctx context.Context, req models.SignupRequest, settings EducatorSettings) (SignupResult, error) {
	return s.signUp(ctx, req, settings)
}

func (s *signupService) signUp(ctx context.Context, req models.SignupRequest, settings RoleSettings) (SignupResult, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	res, err := s.adapter.Auth().Signup(ctx, req)
	if err != nil {
		return SignupResult{}, newViewError(app.MsgFailedToSignUp, err)
	}
	s.keeper.signIn(ctx, res)

	result := SignupResult{User: res.User}

	user, search, err := settings.apply(ctx, s, res.User)
	result.User = user
	if err != nil {
		s.logger.Error().Err(err).
			Str("func", "*signupService.signUp").
			Int64("user_id", res.User.ID).
			Msg("settings were not saved after signup")

		msg := ViewMessage(err)
		var viewErr *ViewError
		if !errors.As(err, &viewErr) {
			msg = combineMessages(app.MsgFailedToUpdateSettings, serverMessage(err))
		}
		return result, &ViewError{Message: msg, Err: fmt.Errorf("%w: %w", ErrSignupIncomplete, err)}
	}

	result.Search = search
	result.ResultsPath = search.ResultsPath()
	return result, nil
}

// normalizeLabels trims labels and drops blanks and repeats.
func normalizeLabels(labels []string) []string {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
