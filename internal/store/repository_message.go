// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/models"
)

type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{db: db, logger: logger}
}

func (r *messageRepository) CreateMessage(ctx context.Context, message models.Message) (models.Message, error) {
	query, args, err := buildInsertMessageQuery(message)
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := queryOne(ctx, r.db, scanMessage, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*messageRepository.CreateMessage").
			Int64("conversation_id", message.ConversationID).
			Msg("error inserting message")
		return models.Message{}, err
	}
	return created, nil
}

func (r *messageRepository) GetMessageByID(ctx context.Context, id int64) (models.Message, error) {
	query, args, err := psql.Select(messageColumns...).From("messages").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return queryOne(ctx, r.db, scanMessage, query, args...)
}

// SetViewed is the only mutation a message allows.
func (r *messageRepository) SetViewed(ctx context.Context, id int64, viewed bool) (models.Message, error) {
	query, args, err := psql.Update("messages").
		Set("viewed", viewed).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(messageColumns, ", ")).
		ToSql()
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := queryOne(ctx, r.db, scanMessage, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*messageRepository.SetViewed").Int64("id", id).Msg("error updating message")
		return models.Message{}, err
	}
	return updated, nil
}

// ListMessagesByConversation returns the messages of the given
// conversations ordered by conversation and then by id.
func (r *messageRepository) ListMessagesByConversation(ctx context.Context, conversationIDs ...int64) ([]models.Message, error) {
	if len(conversationIDs) == 0 {
		return []models.Message{}, nil
	}

	query, args, err := buildListMessagesQuery(conversationIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	messages, err := queryMany(ctx, r.db, scanMessage, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*messageRepository.ListMessagesByConversation").Msg("error listing messages")
		return nil, err
	}
	return messages, nil
}
