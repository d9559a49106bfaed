// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/models"
)

// conversationRepository stores conversation rows only. Messages and user
// snapshots are attached by the service layer.
type conversationRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewConversationRepository(db *DB, logger *logger.Logger) ConversationRepository {
	logger.Debug().Msg("creating conversation repository")
	return &conversationRepository{db: db, logger: logger}
}

func (r *conversationRepository) CreateConversation(ctx context.Context, conversation models.Conversation) (models.Conversation, error) {
	query, args, err := buildInsertConversationQuery(conversation)
	if err != nil {
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := queryOne(ctx, r.db, scanConversation, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*conversationRepository.CreateConversation").
			Int64("user_a_id", conversation.UserAID).
			Int64("user_b_id", conversation.UserBID).
			Msg("error inserting conversation")
		return models.Conversation{}, err
	}
	return created, nil
}

func (r *conversationRepository) UpdateConversation(ctx context.Context, conversation models.Conversation) (models.Conversation, error) {
	query, args, err := buildUpdateConversationQuery(conversation)
	if err != nil {
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := queryOne(ctx, r.db, scanConversation, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*conversationRepository.UpdateConversation").Int64("id", conversation.ID).Msg("error updating conversation")
		return models.Conversation{}, err
	}
	return updated, nil
}

func (r *conversationRepository) GetConversationByID(ctx context.Context, id int64) (models.Conversation, error) {
	query, args, err := psql.Select(conversationColumns...).From("conversations").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return models.Conversation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return queryOne(ctx, r.db, scanConversation, query, args...)
}

func (r *conversationRepository) ListConversations(ctx context.Context, filter ConversationFilter) ([]models.Conversation, error) {
	query, args, err := buildListConversationsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	conversations, err := queryMany(ctx, r.db, scanConversation, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*conversationRepository.ListConversations").Msg("error listing conversations")
		return nil, err
	}
	return conversations, nil
}
