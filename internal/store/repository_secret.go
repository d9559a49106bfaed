// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/models"
)

// secretRepository keeps reset and confirmation keys. Only the HMAC of a key
// reaches the table.
type secretRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSecretRepository(db *DB, logger *logger.Logger) SecretRepository {
	logger.Debug().Msg("creating secret repository")
	return &secretRepository{db: db, logger: logger}
}

func (r *secretRepository) CreateSecret(ctx context.Context, secret models.Secret) (models.Secret, error) {
	query, args, err := buildInsertSecretQuery(secret)
	if err != nil {
		return models.Secret{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := queryOne(ctx, r.db, scanSecret, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*secretRepository.CreateSecret").Int64("user_id", secret.UserID).Msg("error inserting secret")
		return models.Secret{}, err
	}
	return created, nil
}

func (r *secretRepository) FindActiveSecret(ctx context.Context, keyHash, purpose string, now time.Time) (models.Secret, error) {
	query, args, err := buildFindActiveSecretQuery(keyHash, purpose, now)
	if err != nil {
		return models.Secret{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return queryOne(ctx, r.db, scanSecret, query, args...)
}

// MarkSecretUsed only matches unused rows, so two concurrent redemptions of
// the same key cannot both succeed.
func (r *secretRepository) MarkSecretUsed(ctx context.Context, id int64) error {
	query, args, err := psql.Update("secrets").Set("used", true).Where(sq.Eq{"id": id, "used": false}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*secretRepository.MarkSecretUsed").Int64("id", id).Msg("error marking secret used")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrSecretAlreadyUsed
	}
	return nil
}

// DeleteExpiredSecrets removes secrets that expired at or before now and
// reports how many were removed.
func (r *secretRepository) DeleteExpiredSecrets(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := psql.Delete("secrets").Where(sq.LtOrEq{"expires_at": now}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*secretRepository.DeleteExpiredSecrets").Msg("error deleting expired secrets")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return res.RowsAffected()
}
