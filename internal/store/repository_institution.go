// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/models"
	"github.com/jackc/pgerrcode"
)

type institutionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewInstitutionRepository(db *DB, logger *logger.Logger) InstitutionRepository {
	logger.Debug().Msg("creating institution repository")
	return &institutionRepository{db: db, logger: logger}
}

func (r *institutionRepository) CreateInstitution(ctx context.Context, institution models.Institution) (models.Institution, error) {
	query, args, err := buildInsertInstitutionQuery(institution)
	if err != nil {
		return models.Institution{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := queryOne(ctx, r.db, scanInstitution, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*institutionRepository.CreateInstitution").Msg("error inserting institution")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Institution{}, ErrInstitutionAlreadyExists
		}
		return models.Institution{}, err
	}
	return created, nil
}

func (r *institutionRepository) UpdateInstitution(ctx context.Context, institution models.Institution) (models.Institution, error) {
	query, args, err := buildUpdateInstitutionQuery(institution)
	if err != nil {
		return models.Institution{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := queryOne(ctx, r.db, scanInstitution, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*institutionRepository.UpdateInstitution").Int64("id", institution.ID).Msg("error updating institution")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Institution{}, ErrInstitutionAlreadyExists
		}
		return models.Institution{}, err
	}
	return updated, nil
}

func (r *institutionRepository) GetInstitutionByID(ctx context.Context, id int64) (models.Institution, error) {
	query, args, err := psql.Select(institutionColumns...).From("institutions").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Institution{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return queryOne(ctx, r.db, scanInstitution, query, args...)
}

// ListInstitutions returns every institution, or only the one named name
// when it is not empty.
func (r *institutionRepository) ListInstitutions(ctx context.Context, name string) ([]models.Institution, error) {
	query, args, err := buildListInstitutionsQuery(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	institutions, err := queryMany(ctx, r.db, scanInstitution, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*institutionRepository.ListInstitutions").Msg("error listing institutions")
		return nil, err
	}
	return institutions, nil
}
