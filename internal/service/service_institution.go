// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-community-share/internal/store"
	"github.com/MKhiriev/go-community-share/internal/validators"
	"github.com/MKhiriev/go-community-share/models"
)

type institutionService struct {
	requesters
	institutionRepository store.InstitutionRepository
	validator             validators.Validator
}

func NewInstitutionService(users store.UserRepository, institutions store.InstitutionRepository, validator validators.Validator) InstitutionService {
	return &institutionService{
		requesters:            requesters{users: users},
		institutionRepository: institutions,
		validator:             validator,
	}
}

func (s *institutionService) Get(ctx context.Context, id int64) (models.Institution, error) {
	if _, err := s.requester(ctx); err != nil {
		return models.Institution{}, err
	}
	return s.institutionRepository.GetInstitutionByID(ctx, id)
}

func (s *institutionService) List(ctx context.Context, query url.Values) ([]models.Institution, error) {
	if _, err := s.requester(ctx); err != nil {
		return nil, err
	}
	return s.institutionRepository.ListInstitutions(ctx, strings.TrimSpace(query.Get("name")))
}

func (s *institutionService) Create(ctx context.Context, item models.Institution) (models.Institution, error) {
	if _, err := s.requester(ctx); err != nil {
		return models.Institution{}, err
	}

	item.ID = 0
	item.Name = strings.TrimSpace(item.Name)
	if err := s.validator.Validate(ctx, item); err != nil {
		return models.Institution{}, err
	}

	created, err := s.institutionRepository.CreateInstitution(ctx, item)
	if err != nil {
		return models.Institution{}, fmt.Errorf("institution creation failed: %w", err)
	}
	return created, nil
}

// Update is reserved to administrators.
func (s *institutionService) Update(ctx context.Context, id int64, item models.Institution) (models.Institution, error) {
	requester, err := s.requester(ctx)
	if err != nil {
		return models.Institution{}, err
	}
	if !requester.IsAdministrator {
		return models.Institution{}, ErrForbidden
	}

	item.ID = id
	item.Name = strings.TrimSpace(item.Name)
	if err = s.validator.Validate(ctx, item); err != nil {
		return models.Institution{}, err
	}

	updated, err := s.institutionRepository.UpdateInstitution(ctx, item)
	if err != nil {
		return models.Institution{}, fmt.Errorf("institution update failed: %w", err)
	}
	return updated, nil
}
