// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/store"
	"github.com/MKhiriev/go-community-share/internal/validators"
	"github.com/MKhiriev/go-community-share/models"
)

type userService struct {
	requesters
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewUserService(users store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		requesters:     requesters{users: users},
		userRepository: users,
		validator:      validator,
		logger:         logger,
	}
}

func (s *userService) Get(ctx context.Context, id int64) (models.User, error) {
	requester, err := s.requester(ctx)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return visibleUser(requester, user), nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (models.User, error) {
	requester, err := s.requester(ctx)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}
	return visibleUser(requester, user), nil
}

// List supports a single filter, email. Without it the requester's own
// record is returned.
func (s *userService) List(ctx context.Context, query url.Values) ([]models.User, error) {
	requester, err := s.requester(ctx)
	if err != nil {
		return nil, err
	}

	email := query.Get("email")
	if email == "" {
		return []models.User{requester}, nil
	}

	user, err := s.userRepository.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []models.User{}, nil
		}
		return nil, fmt.Errorf("user search by email failed: %w", err)
	}
	return []models.User{visibleUser(requester, user)}, nil
}

// Create is refused: accounts come from signup.
func (s *userService) Create(ctx context.Context, _ models.User) (models.User, error) {
	if _, err := s.requester(ctx); err != nil {
		return models.User{}, err
	}
	return models.User{}, ErrForbidden
}

// Update lets users edit their name and institution associations. Only
// administrators may edit others or change is_administrator.
func (s *userService) Update(ctx context.Context, id int64, item models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	requester, err := s.requester(ctx)
	if err != nil {
		return models.User{}, err
	}

	existing, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	if requester.ID != existing.ID && !requester.IsAdministrator {
		log.Info().Str("func", "*userService.Update").Int64("requester_id", requester.ID).Int64("user_id", id).Msg("forbidden user update")
		return models.User{}, ErrForbidden
	}

	item.Name = strings.TrimSpace(item.Name)
	item.InstitutionAssociations = models.FilterInstitutionAssociations(item.InstitutionAssociations)
	if err = s.validator.Validate(ctx, item); err != nil {
		return models.User{}, err
	}

	existing.Name = item.Name
	existing.InstitutionAssociations = item.InstitutionAssociations
	if requester.IsAdministrator {
		existing.IsAdministrator = item.IsAdministrator
	}

	updated, err := s.userRepository.UpdateUser(ctx, existing)
	if err != nil {
		log.Err(err).Str("func", "*userService.Update").Int64("user_id", id).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}
	return updated, nil
}
