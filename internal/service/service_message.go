// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/store"
	"github.com/MKhiriev/go-community-share/internal/validators"
	"github.com/MKhiriev/go-community-share/models"
)

type messageService struct {
	requesters
	conversationRepository store.ConversationRepository
	messageRepository      store.MessageRepository
	validator              validators.Validator
	logger                 *logger.Logger
}

func NewMessageService(
	users store.UserRepository,
	conversations store.ConversationRepository,
	messages store.MessageRepository,
	validator validators.Validator,
	logger *logger.Logger,
) MessageService {
	return &messageService{
		requesters:             requesters{users: users},
		conversationRepository: conversations,
		messageRepository:      messages,
		validator:              validator,
		logger:                 logger,
	}
}

func (s *messageService) Get(ctx context.Context, id int64) (models.Message, error) {
	requester, err := s.requester(ctx)
	if err != nil {
		return models.Message{}, err
	}

	message, err := s.messageRepository.GetMessageByID(ctx, id)
	if err != nil {
		return models.Message{}, err
	}
	if _, err = s.conversationOf(ctx, requester, message.ConversationID); err != nil {
		return models.Message{}, err
	}
	return message, nil
}

// List requires conversation_id.
func (s *messageService) List(ctx context.Context, query url.Values) ([]models.Message, error) {
	requester, err := s.requester(ctx)
	if err != nil {
		return nil, err
	}

	conversationID, ok, err := queryInt64(query, "conversation_id")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: conversation_id is required", ErrInvalidDataProvided)
	}
	if _, err = s.conversationOf(ctx, requester, conversationID); err != nil {
		return nil, err
	}

	messages, err := s.messageRepository.ListMessagesByConversation(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("messages lookup failed: %w", err)
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

// Create posts a message from the requester to a conversation they take
// part in.
func (s *messageService) Create(ctx context.Context, item models.Message) (models.Message, error) {
	requester, err := s.requester(ctx)
	if err != nil {
		return models.Message{}, err
	}

	if item.SenderUserID == 0 {
		item.SenderUserID = requester.ID
	}
	if item.SenderUserID != requester.ID {
		return models.Message{}, ErrForbidden
	}

	item.ID = 0
	item.Content = strings.TrimSpace(item.Content)
	item.Viewed = false
	item.SenderUser = nil
	if err = s.validator.Validate(ctx, item); err != nil {
		return models.Message{}, err
	}

	if _, err = s.conversationOf(ctx, requester, item.ConversationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Message{}, validators.ErrInvalidReference
		}
		return models.Message{}, err
	}

	created, err := s.messageRepository.CreateMessage(ctx, item)
	if err != nil {
		return models.Message{}, fmt.Errorf("message creation failed: %w", err)
	}
	return created, nil
}

// Update only changes the viewed flag, and only the receiver may do it.
func (s *messageService) Update(ctx context.Context, id int64, item models.Message) (models.Message, error) {
	requester, err := s.requester(ctx)
	if err != nil {
		return models.Message{}, err
	}

	existing, err := s.messageRepository.GetMessageByID(ctx, id)
	if err != nil {
		return models.Message{}, err
	}
	if _, err = s.conversationOf(ctx, requester, existing.ConversationID); err != nil {
		return models.Message{}, err
	}
	if existing.SenderUserID == requester.ID && !requester.IsAdministrator {
		return models.Message{}, ErrForbidden
	}

	updated, err := s.messageRepository.SetViewed(ctx, id, item.Viewed)
	if err != nil {
		return models.Message{}, fmt.Errorf("message update failed: %w", err)
	}
	return updated, nil
}

// conversationOf loads the conversation and checks the requester takes part
// in it.
func (s *messageService) conversationOf(ctx context.Context, requester models.User, id int64) (models.Conversation, error) {
	conversation, err := s.conversationRepository.GetConversationByID(ctx, id)
	if err != nil {
		return models.Conversation{}, err
	}
	if !conversation.HasParticipant(requester.ID) && !requester.IsAdministrator {
		return models.Conversation{}, ErrForbidden
	}
	return conversation, nil
}
