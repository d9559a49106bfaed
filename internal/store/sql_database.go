// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/migrations"
	"github.com/cenkalti/backoff/v4"
)

// maxTxAttempts bounds how many times a retryable transaction is replayed.
const maxTxAttempts = 3

// DB wraps *sql.DB with the error classifier of its dialect and the
// placeholder format squirrel must use for it.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	placeholder        sq.PlaceholderFormat
	logger             *logger.Logger
}

// MigrateServer applies the PostgreSQL schema.
func (db *DB) MigrateServer(ctx context.Context) error {
	return migrations.MigrateServer(ctx, db.DB)
}

// MigrateClient applies the local SQLite schema.
func (db *DB) MigrateClient(ctx context.Context) error {
	return migrations.MigrateClient(ctx, db.DB)
}

// builder returns a squirrel statement builder bound to the dialect
// placeholders. A DB built without a dialect (tests) uses `$n`.
func (db *DB) builder() sq.StatementBuilderType {
	if db.placeholder == nil {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// inTx runs fn inside a transaction and commits it. Errors the classifier
// marks as Retryable replay the whole transaction with exponential backoff.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	operation := func() error {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return db.permanentUnlessRetryable(fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
		}

		if err = fn(tx); err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				db.logger.Err(rbErr).Str("func", "*DB.inTx").Msg("rollback failed")
			}
			return db.permanentUnlessRetryable(err)
		}

		if err = tx.Commit(); err != nil {
			return db.permanentUnlessRetryable(fmt.Errorf("%w: %w", ErrCommitingTransaction, err))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxTxAttempts-1), ctx)
	return backoff.Retry(operation, policy)
}

func (db *DB) permanentUnlessRetryable(err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return err
	}
	return backoff.Permanent(err)
}
