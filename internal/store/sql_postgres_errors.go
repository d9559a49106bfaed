// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.inTx] whether a failed transaction may be
// replayed.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// retryableClasses are SQLSTATE classes after which the community tables are
// left untouched: connection loss (08) and rolled back transactions (40).
var retryableClasses = map[string]struct{}{
	"08": {},
	"40": {},
}

// PostgresErrorClassifier implements [ErrorClassificator] for the server
// store. Signup conflicts, bad search filters and missing tables are final;
// only transient connection and rollback failures are replayed.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := postgresError(err)
	if code == "" {
		return NonRetryable
	}
	if code == pgerrcode.CannotConnectNow {
		return Retryable
	}
	if len(code) != 5 {
		return NonRetryable
	}
	if _, ok := retryableClasses[code[:2]]; ok {
		return Retryable
	}
	return NonRetryable
}

// postgresError returns the SQLSTATE code of err, or "" when err does not
// come from PostgreSQL.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
