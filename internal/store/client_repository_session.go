// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/models"
)

// sessionRowID is the primary key of the single client_session row.
const sessionRowID = 1

// sessionRepository is the SQLite-backed [SessionRepository].
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, logger: logger}
}

// SaveSession replaces whatever session was stored before.
func (r *sessionRepository) SaveSession(ctx context.Context, session models.StoredSession) error {
	userJSON, err := json.Marshal(session.User)
	if err != nil {
		return fmt.Errorf("encoding session user: %w", err)
	}

	query, args, err := r.db.builder().
		Replace("client_session").
		Columns("id", "user_id", "user_json", "api_key", "saved_at").
		Values(sessionRowID, session.User.ID, string(userJSON), session.APIKey, session.SavedAt.UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// LoadSession returns ErrNoStoredSession when the table is empty.
func (r *sessionRepository) LoadSession(ctx context.Context) (models.StoredSession, error) {
	query, args, err := r.db.builder().
		Select("user_json", "api_key", "saved_at").
		From("client_session").
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
	if err != nil {
		return models.StoredSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		session  models.StoredSession
		userJSON string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&userJSON, &session.APIKey, &session.SavedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StoredSession{}, ErrNoStoredSession
		}
		r.logger.Err(err).Str("func", "*sessionRepository.LoadSession").Msg("error loading session")
		return models.StoredSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal([]byte(userJSON), &session.User); err != nil {
		return models.StoredSession{}, fmt.Errorf("decoding session user: %w", err)
	}
	return session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context) error {
	query, args, err := r.db.builder().Delete("client_session").ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
