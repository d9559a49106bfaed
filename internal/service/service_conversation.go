// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/store"
	"github.com/MKhiriev/go-community-share/internal/validators"
	"github.com/MKhiriev/go-community-share/models"
)

// queryUnviewedFor selects the conversations holding unread messages.
const queryUnviewedFor = "user_id_with_unviewed_messages"

type conversationService struct {
	requesters
	userRepository         store.UserRepository
	conversationRepository store.ConversationRepository
	messageRepository      store.MessageRepository
	validator              validators.Validator
	logger                 *logger.Logger
}

func NewConversationService(
	users store.UserRepository,
	conversations store.ConversationRepository,
	messages store.MessageRepository,
	validator validators.Validator,
	logger *logger.Logger,
) ConversationService {
	return &conversationService{
		requesters:             requesters{users: users},
		userRepository:         users,
		conversationRepository: conversations,
		messageRepository:      messages,
		validator:              validator,
		logger:                 logger,
	}
}

// Get returns the conversation with its messages and participant snapshots.
func (s *conversationService) Get(ctx context.Context, id int64) (models.Conversation, error) {
	requester, err := s.requester(ctx)
	if err != nil {
		return models.Conversation{}, err
	}

	conversation, err := s.conversationRepository.GetConversationByID(ctx, id)
	if err != nil {
		return models.Conversation{}, err
	}
	if !conversation.HasParticipant(requester.ID) && !requester.IsAdministrator {
		return models.Conversation{}, ErrForbidden
	}

	embedded, err := s.embed(ctx, []models.Conversation{conversation})
	if err != nil {
		return models.Conversation{}, err
	}
	return embedded[0], nil
}

// List returns the requester's conversations. With
// user_id_with_unviewed_messages only those with unread messages are kept;
// the id must be the requester's own.
func (s *conversationService) List(ctx context.Context, query url.Values) ([]models.Conversation, error) {
	requester, err := s.requester(ctx)
	if err != nil {
		return nil, err
	}

	unviewedFor, ok, err := queryInt64(query, queryUnviewedFor)
	if err != nil {
		return nil, err
	}

	filter := store.ConversationFilter{ParticipantID: requester.ID}
	if ok {
		if unviewedFor != requester.ID {
			return nil, ErrForbidden
		}
		filter = store.ConversationFilter{UnviewedFor: unviewedFor}
	}

	conversations, err := s.conversationRepository.ListConversations(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("conversations lookup failed: %w", err)
	}
	return s.embed(ctx, conversations)
}

// Create opens a conversation started by the requester.
func (s *conversationService) Create(ctx context.Context, item models.Conversation) (models.Conversation, error) {
	requester, err := s.requester(ctx)
	if err != nil {
		return models.Conversation{}, err
	}

	if item.UserAID == 0 {
		item.UserAID = requester.ID
	}
	if item.UserAID != requester.ID {
		return models.Conversation{}, ErrForbidden
	}

	item.ID = 0
	item.Title = strings.TrimSpace(item.Title)
	item.Active = true
	item.Messages = nil
	item.UserA, item.UserB = nil, nil
	if err = s.validator.Validate(ctx, item); err != nil {
		return models.Conversation{}, err
	}

	created, err := s.conversationRepository.CreateConversation(ctx, item)
	if err != nil {
		return models.Conversation{}, fmt.Errorf("conversation creation failed: %w", err)
	}

	embedded, err := s.embed(ctx, []models.Conversation{created})
	if err != nil {
		return models.Conversation{}, err
	}
	return embedded[0], nil
}

// Update lets a participant rename the conversation. Title is the only
// writable field.
func (s *conversationService) Update(ctx context.Context, id int64, item models.Conversation) (models.Conversation, error) {
	requester, err := s.requester(ctx)
	if err != nil {
		return models.Conversation{}, err
	}

	existing, err := s.conversationRepository.GetConversationByID(ctx, id)
	if err != nil {
		return models.Conversation{}, err
	}
	if !existing.HasParticipant(requester.ID) && !requester.IsAdministrator {
		return models.Conversation{}, ErrForbidden
	}

	existing.Title = strings.TrimSpace(item.Title)

	updated, err := s.conversationRepository.UpdateConversation(ctx, existing)
	if err != nil {
		return models.Conversation{}, fmt.Errorf("conversation update failed: %w", err)
	}

	embedded, err := s.embed(ctx, []models.Conversation{updated})
	if err != nil {
		return models.Conversation{}, err
	}
	return embedded[0], nil
}

// embed fills messages and participant snapshots with one message query.
func (s *conversationService) embed(ctx context.Context, conversations []models.Conversation) ([]models.Conversation, error) {
	if len(conversations) == 0 {
		return []models.Conversation{}, nil
	}

	ids := make([]int64, len(conversations))
	for i, c := range conversations {
		ids[i] = c.ID
	}

	messages, err := s.messageRepository.ListMessagesByConversation(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("messages lookup failed: %w", err)
	}
	byConversation := make(map[int64][]models.Message, len(conversations))
	for _, m := range messages {
		byConversation[m.ConversationID] = append(byConversation[m.ConversationID], m)
	}

	snapshots := newUserSnapshots(s.userRepository)
	out := make([]models.Conversation, len(conversations))
	for i, c := range conversations {
		c.Messages = byConversation[c.ID]
		if c.Messages == nil {
			c.Messages = []models.Message{}
		}

		if c.UserA, err = snapshots.get(ctx, c.UserAID); err != nil {
			return nil, fmt.Errorf("participant lookup failed: %w", err)
		}
		if c.UserB, err = snapshots.get(ctx, c.UserBID); err != nil {
			return nil, fmt.Errorf("participant lookup failed: %w", err)
		}
		out[i] = c
	}

	return out, nil
}
