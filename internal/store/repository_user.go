// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// Associations live in institution_associations and are always loaded with
// the user.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the account row. Associations are written later by
// UpdateUser when the user saves their settings.
//
// Error handling:
//   - unique_violation (23505) on email → [ErrEmailAlreadyExists].
//   - any other driver error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error scanning created user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	created.InstitutionAssociations = []models.InstitutionAssociation{}

	return created, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id}, "*userRepository.GetUserByID")
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getUser(ctx, sq.Eq{"email": email}, "*userRepository.GetUserByEmail")
}

func (r *userRepository) getUser(ctx context.Context, where sq.Eq, fn string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(where)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNotFound
		}
		log.Err(err).Str("func", fn).Msg("error selecting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	user.InstitutionAssociations, err = loadAssociations(ctx, r.db, user.ID)
	if err != nil {
		log.Err(err).Str("func", fn).Int64("user_id", user.ID).Msg("error loading institution associations")
		return models.User{}, err
	}

	return user, nil
}

// UpdateUser rewrites the profile and replaces every institution
// association inside one transaction.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.User
	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		var txErr error
		updated, txErr = scanUser(tx.QueryRowContext(ctx, query, args...))
		if txErr != nil {
			if errors.Is(txErr, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, txErr)
		}

		if _, txErr = tx.ExecContext(ctx, deleteUserAssociations, user.ID); txErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, txErr)
		}

		updated.InstitutionAssociations = make([]models.InstitutionAssociation, 0, len(user.InstitutionAssociations))
		for _, a := range models.FilterInstitutionAssociations(user.InstitutionAssociations) {
			institution, txErr := scanInstitution(tx.QueryRowContext(ctx, upsertInstitutionByName, a.Institution.Name, a.Institution.InstitutionType))
			if txErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, txErr)
			}

			saved := models.InstitutionAssociation{Role: a.Role, Institution: institution}
			if txErr = tx.QueryRowContext(ctx, insertUserAssociation, user.ID, institution.ID, a.Role).Scan(&saved.ID); txErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, txErr)
			}
			updated.InstitutionAssociations = append(updated.InstitutionAssociations, saved)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", user.ID).Msg("error updating user")
		return models.User{}, err
	}

	return updated, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	query, args, err := psql.Update("users").Set("password_hash", passwordHash).Where(sq.Eq{"id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.execOne(ctx, "*userRepository.UpdatePassword", query, args...)
}

func (r *userRepository) TouchLastActive(ctx context.Context, userID int64, at time.Time) error {
	query, args, err := psql.Update("users").Set("last_active", at).Where(sq.Eq{"id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.execOne(ctx, "*userRepository.TouchLastActive", query, args...)
}

func (r *userRepository) execOne(ctx context.Context, fn, query string, args ...any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error executing statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func loadAssociations(ctx context.Context, q queryer, userID int64) ([]models.InstitutionAssociation, error) {
	rows, err := q.QueryContext(ctx, getUserAssociations, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	associations := make([]models.InstitutionAssociation, 0)
	for rows.Next() {
		var a models.InstitutionAssociation
		if err = rows.Scan(&a.ID, &a.Role, &a.Institution.ID, &a.Institution.Name, &a.Institution.InstitutionType); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		associations = append(associations, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return associations, nil
}
