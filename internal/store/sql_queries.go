// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-community-share/models"
	"github.com/jackc/pgerrcode"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns = []string{
		"id", "name", "email", "password_hash", "date_created", "last_active",
		"email_confirmed", "is_administrator", "is_educator", "is_community_partner",
	}
	institutionColumns  = []string{"id", "name", "institution_type"}
	searchColumns       = []string{"id", "searcher_user_id", "searcher_role", "searching_for_role", "active", "labels", "latitude", "longitude", "distance"}
	conversationColumns = []string{"id", "title", "search_id", "user_a_id", "user_b_id", "date_created", "active"}
	messageColumns      = []string{"id", "conversation_id", "sender_user_id", "content", "viewed", "date_created"}
	secretColumns       = []string{"id", "user_id", "purpose", "key_hash", "expires_at", "used"}
)

const (
	getStatistics = `SELECT
		(SELECT COUNT(*) FROM users),
		(SELECT COUNT(*) FROM users WHERE is_educator),
		(SELECT COUNT(*) FROM users WHERE is_community_partner),
		(SELECT COUNT(*) FROM searches WHERE active),
		(SELECT COUNT(*) FROM conversations),
		(SELECT COUNT(*) FROM messages),
		(SELECT COUNT(*) FROM institutions);`

	upsertInstitutionByName = `INSERT INTO institutions (name, institution_type)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, institution_type;`

	getUserAssociations = `SELECT a.id, a.role, i.id, i.name, i.institution_type
		FROM institution_associations a
		JOIN institutions i ON i.id = a.institution_id
		WHERE a.user_id = $1
		ORDER BY a.id;`

	deleteUserAssociations = `DELETE FROM institution_associations WHERE user_id = $1;`

	insertUserAssociation = `INSERT INTO institution_associations (user_id, institution_id, role)
		VALUES ($1, $2, $3)
		RETURNING id;`

	existsUnviewedMessage = `EXISTS (SELECT 1 FROM messages m
		WHERE m.conversation_id = conversations.id AND NOT m.viewed AND m.sender_user_id <> ?)`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.DateCreated, &u.LastActive,
		&u.EmailConfirmed, &u.IsAdministrator, &u.IsEducator, &u.IsCommunityPartner)
	return u, err
}

func scanInstitution(row rowScanner) (models.Institution, error) {
	var i models.Institution
	err := row.Scan(&i.ID, &i.Name, &i.InstitutionType)
	return i, err
}

func scanSearch(row rowScanner) (models.Search, error) {
	var (
		s      models.Search
		labels []byte
		lat    sql.NullFloat64
		lon    sql.NullFloat64
		dist   sql.NullFloat64
	)
	if err := row.Scan(&s.ID, &s.SearcherUserID, &s.SearcherRole, &s.SearchingForRole, &s.Active, &labels, &lat, &lon, &dist); err != nil {
		return models.Search{}, err
	}

	s.Labels = []string{}
	if len(labels) > 0 {
		if err := json.Unmarshal(labels, &s.Labels); err != nil {
			return models.Search{}, fmt.Errorf("decoding labels of search %d: %w", s.ID, err)
		}
	}
	s.Latitude = nullFloat(lat)
	s.Longitude = nullFloat(lon)
	s.Distance = nullFloat(dist)

	return s, nil
}

func scanConversation(row rowScanner) (models.Conversation, error) {
	var (
		c        models.Conversation
		searchID sql.NullInt64
	)
	if err := row.Scan(&c.ID, &c.Title, &searchID, &c.UserAID, &c.UserBID, &c.DateCreated, &c.Active); err != nil {
		return models.Conversation{}, err
	}
	c.SearchID = searchID.Int64
	c.Messages = []models.Message{}
	return c, nil
}

func scanMessage(row rowScanner) (models.Message, error) {
	var m models.Message
	err := row.Scan(&m.ID, &m.ConversationID, &m.SenderUserID, &m.Content, &m.Viewed, &m.DateCreated)
	return m, err
}

func scanSecret(row rowScanner) (models.Secret, error) {
	var s models.Secret
	err := row.Scan(&s.ID, &s.UserID, &s.Purpose, &s.KeyHash, &s.ExpiresAt, &s.Used)
	return s, err
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func floatOrNil(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func int64OrNil(v int64) any {
	if v == 0 {
		return nil
	}
	return v
}

func encodeLabels(labels []string) (string, error) {
	if labels == nil {
		labels = []string{}
	}
	b, err := json.Marshal(labels)
	if err != nil {
		return "", fmt.Errorf("encoding labels: %w", err)
	}
	return string(b), nil
}

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert("users").
		Columns("name", "email", "password_hash", "email_confirmed", "is_administrator", "is_educator", "is_community_partner").
		Values(user.Name, user.Email, user.PasswordHash, user.EmailConfirmed, user.IsAdministrator, user.IsEducator, user.IsCommunityPartner).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	return psql.Select(userColumns...).From("users").Where(where).ToSql()
}

func buildUpdateUserQuery(user models.User) (string, []any, error) {
	return psql.Update("users").
		Set("name", user.Name).
		Set("email_confirmed", user.EmailConfirmed).
		Set("is_administrator", user.IsAdministrator).
		Set("is_educator", user.IsEducator).
		Set("is_community_partner", user.IsCommunityPartner).
		Where(sq.Eq{"id": user.ID}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
}

func buildInsertInstitutionQuery(institution models.Institution) (string, []any, error) {
	return psql.Insert("institutions").
		Columns("name", "institution_type").
		Values(institution.Name, institution.InstitutionType).
		Suffix("RETURNING " + strings.Join(institutionColumns, ", ")).
		ToSql()
}

func buildUpdateInstitutionQuery(institution models.Institution) (string, []any, error) {
	return psql.Update("institutions").
		Set("name", institution.Name).
		Set("institution_type", institution.InstitutionType).
		Where(sq.Eq{"id": institution.ID}).
		Suffix("RETURNING " + strings.Join(institutionColumns, ", ")).
		ToSql()
}

func buildListInstitutionsQuery(name string) (string, []any, error) {
	q := psql.Select(institutionColumns...).From("institutions").OrderBy("name")
	if name != "" {
		q = q.Where(sq.Eq{"name": name})
	}
	return q.ToSql()
}

func buildInsertSearchQuery(search models.Search) (string, []any, error) {
	labels, err := encodeLabels(search.Labels)
	if err != nil {
		return "", nil, err
	}
	return psql.Insert("searches").
		Columns("searcher_user_id", "searcher_role", "searching_for_role", "active", "labels", "latitude", "longitude", "distance").
		Values(search.SearcherUserID, search.SearcherRole, search.SearchingForRole, search.Active, labels,
			floatOrNil(search.Latitude), floatOrNil(search.Longitude), floatOrNil(search.Distance)).
		Suffix("RETURNING " + strings.Join(searchColumns, ", ")).
		ToSql()
}

func buildUpdateSearchQuery(search models.Search) (string, []any, error) {
	labels, err := encodeLabels(search.Labels)
	if err != nil {
		return "", nil, err
	}
	return psql.Update("searches").
		Set("searcher_role", search.SearcherRole).
		Set("searching_for_role", search.SearchingForRole).
		Set("active", search.Active).
		Set("labels", labels).
		Set("latitude", floatOrNil(search.Latitude)).
		Set("longitude", floatOrNil(search.Longitude)).
		Set("distance", floatOrNil(search.Distance)).
		Where(sq.Eq{"id": search.ID}).
		Suffix("RETURNING " + strings.Join(searchColumns, ", ")).
		ToSql()
}

func buildListSearchesQuery(filter SearchFilter) (string, []any, error) {
	q := psql.Select(searchColumns...).From("searches").OrderBy("id")
	if filter.SearcherUserID != 0 {
		q = q.Where(sq.Eq{"searcher_user_id": filter.SearcherUserID})
	}
	if filter.SearcherRole != "" {
		q = q.Where(sq.Eq{"searcher_role": filter.SearcherRole})
	}
	if filter.ActiveOnly {
		q = q.Where(sq.Eq{"active": true})
	}
	if filter.ExcludeUserID != 0 {
		q = q.Where(sq.NotEq{"searcher_user_id": filter.ExcludeUserID})
	}
	return q.ToSql()
}

func buildInsertConversationQuery(c models.Conversation) (string, []any, error) {
	return psql.Insert("conversations").
		Columns("title", "search_id", "user_a_id", "user_b_id", "active").
		Values(c.Title, int64OrNil(c.SearchID), c.UserAID, c.UserBID, c.Active).
		Suffix("RETURNING " + strings.Join(conversationColumns, ", ")).
		ToSql()
}

func buildUpdateConversationQuery(c models.Conversation) (string, []any, error) {
	return psql.Update("conversations").
		Set("title", c.Title).
		Set("active", c.Active).
		Where(sq.Eq{"id": c.ID}).
		Suffix("RETURNING " + strings.Join(conversationColumns, ", ")).
		ToSql()
}

func buildListConversationsQuery(filter ConversationFilter) (string, []any, error) {
	q := psql.Select(conversationColumns...).From("conversations").OrderBy("id")
	if filter.ParticipantID != 0 {
		q = q.Where(sq.Or{sq.Eq{"user_a_id": filter.ParticipantID}, sq.Eq{"user_b_id": filter.ParticipantID}})
	}
	if filter.UnviewedFor != 0 {
		q = q.Where(sq.Or{sq.Eq{"user_a_id": filter.UnviewedFor}, sq.Eq{"user_b_id": filter.UnviewedFor}}).
			Where(sq.Expr(existsUnviewedMessage, filter.UnviewedFor))
	}
	return q.ToSql()
}

func buildInsertMessageQuery(m models.Message) (string, []any, error) {
	return psql.Insert("messages").
		Columns("conversation_id", "sender_user_id", "content", "viewed").
		Values(m.ConversationID, m.SenderUserID, m.Content, m.Viewed).
		Suffix("RETURNING " + strings.Join(messageColumns, ", ")).
		ToSql()
}

func buildListMessagesQuery(conversationIDs []int64) (string, []any, error) {
	return psql.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"conversation_id": conversationIDs}).
		OrderBy("conversation_id", "id").
		ToSql()
}

func buildInsertSecretQuery(s models.Secret) (string, []any, error) {
	return psql.Insert("secrets").
		Columns("user_id", "purpose", "key_hash", "expires_at").
		Values(s.UserID, s.Purpose, s.KeyHash, s.ExpiresAt).
		Suffix("RETURNING " + strings.Join(secretColumns, ", ")).
		ToSql()
}

func buildFindActiveSecretQuery(keyHash, purpose string, now time.Time) (string, []any, error) {
	return psql.Select(secretColumns...).
		From("secrets").
		Where(sq.Eq{"key_hash": keyHash, "purpose": purpose, "used": false}).
		Where(sq.Gt{"expires_at": now}).
		ToSql()
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type rowQueryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// queryOne runs a single-row statement. A missing row becomes ErrNotFound and
// a foreign key violation becomes ErrInvalidReference; the driver error stays
// in the chain otherwise.
func queryOne[T any](ctx context.Context, q rowQueryer, scan func(rowScanner) (T, error), query string, args ...any) (T, error) {
	v, err := scan(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		var zero T
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return zero, ErrNotFound
		case postgresError(err) == pgerrcode.ForeignKeyViolation:
			return zero, fmt.Errorf("%w: %w", ErrInvalidReference, err)
		default:
			return zero, fmt.Errorf("unexpected DB error: %w", err)
		}
	}
	return v, nil
}

// queryMany collects every row of query. The result is never nil.
func queryMany[T any](ctx context.Context, q queryer, scan func(rowScanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}
