// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/models"
)

// searchRepository stores searches with their labels as a JSONB array.
type searchRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSearchRepository(db *DB, logger *logger.Logger) SearchRepository {
	logger.Debug().Msg("creating search repository")
	return &searchRepository{db: db, logger: logger}
}

// CreateSearch inserts search and flags its searcher as an educator or a
// community partner in the same transaction.
func (r *searchRepository) CreateSearch(ctx context.Context, search models.Search) (models.Search, error) {
	query, args, err := buildInsertSearchQuery(search)
	if err != nil {
		return models.Search{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Search
	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		var txErr error
		if created, txErr = queryOne(ctx, tx, scanSearch, query, args...); txErr != nil {
			return txErr
		}
		return markSearcherRole(ctx, tx, created)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*searchRepository.CreateSearch").Int64("searcher_user_id", search.SearcherUserID).Msg("error inserting search")
		return models.Search{}, err
	}
	return created, nil
}

func (r *searchRepository) UpdateSearch(ctx context.Context, search models.Search) (models.Search, error) {
	query, args, err := buildUpdateSearchQuery(search)
	if err != nil {
		return models.Search{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Search
	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		var txErr error
		if updated, txErr = queryOne(ctx, tx, scanSearch, query, args...); txErr != nil {
			return txErr
		}
		return markSearcherRole(ctx, tx, updated)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*searchRepository.UpdateSearch").Int64("id", search.ID).Msg("error updating search")
		return models.Search{}, err
	}
	return updated, nil
}

func (r *searchRepository) GetSearchByID(ctx context.Context, id int64) (models.Search, error) {
	query, args, err := psql.Select(searchColumns...).From("searches").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Search{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return queryOne(ctx, r.db, scanSearch, query, args...)
}

func (r *searchRepository) ListSearches(ctx context.Context, filter SearchFilter) ([]models.Search, error) {
	query, args, err := buildListSearchesQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	searches, err := queryMany(ctx, r.db, scanSearch, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*searchRepository.ListSearches").Msg("error listing searches")
		return nil, err
	}
	return searches, nil
}

func markSearcherRole(ctx context.Context, tx *sql.Tx, search models.Search) error {
	column := "is_educator"
	if search.SearcherRole == models.RolePartner {
		column = "is_community_partner"
	}

	query, args, err := psql.Update("users").Set(column, true).Where(sq.Eq{"id": search.SearcherUserID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
