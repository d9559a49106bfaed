// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-community-share/internal/adapter"
	"github.com/MKhiriev/go-community-share/internal/app"
	"github.com/MKhiriev/go-community-share/internal/config"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/session"
	"github.com/MKhiriev/go-community-share/models"
	"golang.org/x/sync/errgroup"
)

// markViewedLimit caps concurrent mark-viewed requests per conversation.
const markViewedLimit = 4

type clientConversationService struct {
	adapter adapter.ServerAdapter
	session *session.Session
	users   ClientUserService
	feedCfg config.ClientWorkers
	logger  *logger.Logger
}

func newClientConversationService(serverAdapter adapter.ServerAdapter, s *session.Session, users ClientUserService, feedCfg config.ClientWorkers, logger *logger.Logger) ClientConversationService {
	return &clientConversationService{
		adapter: serverAdapter,
		session: s,
		users:   users,
		feedCfg: feedCfg,
		logger:  logger,
	}
}

func (c *clientConversationService) Get(ctx context.Context, id int64) (models.Conversation, error) {
	conversation, err := c.adapter.Conversations().Get(ctx, id)
	if err != nil {
		return models.Conversation{}, newViewError(app.MsgFailedToLoadConversation, err)
	}
	return conversation, nil
}

func (c *clientConversationService) Unviewed(ctx context.Context, userID int64) ([]models.Conversation, error) {
	conversations, err := c.adapter.Conversations().GetUnviewedForUser(ctx, userID)
	if err != nil {
		return nil, newViewError(app.MsgFailedToLoadConversations, err)
	}
	return conversations, nil
}

// MarkViewed sends one update per unread message, at most markViewedLimit at
// a time. Every message is attempted; the first failure is returned with the
// conversation holding the updates that succeeded.
func (c *clientConversationService) MarkViewed(ctx context.Context, conversation models.Conversation, viewerID int64) (models.Conversation, error) {
	unviewed := conversation.UnviewedFor(viewerID)
	if len(unviewed) == 0 {
		return conversation, nil
	}

	var (
		mu      sync.Mutex
		updated = make(map[int64]models.Message, len(unviewed))
		g       errgroup.Group
	)
	g.SetLimit(markViewedLimit)

	for _, m := range unviewed {
		g.Go(func() error {
			saved, err := c.adapter.Messages().MarkViewed(ctx, m)
			if err != nil {
				c.logger.Warn().Err(err).
					Str("func", "*clientConversationService.MarkViewed").
					Int64("message_id", m.ID).
					Msg("could not mark message viewed")
				return err
			}

			mu.Lock()
			updated[m.ID] = saved
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()

	messages := make([]models.Message, len(conversation.Messages))
	for i, m := range conversation.Messages {
		if saved, ok := updated[m.ID]; ok {
			m.Viewed = saved.Viewed
		}
		messages[i] = m
	}
	conversation.Messages = messages

	return conversation, err
}

func (c *clientConversationService) Start(ctx context.Context, otherUserID, searchID int64, title, firstMessage string) (models.Conversation, error) {
	me, ok := c.session.ActiveUser()
	if !ok {
		return models.Conversation{}, ErrNotAuthenticated
	}

	conversation, err := c.adapter.Conversations().Save(ctx, models.Conversation{
		Title:    strings.TrimSpace(title),
		SearchID: searchID,
		UserAID:  me.ID,
		UserBID:  otherUserID,
		Active:   true,
	})
	if err != nil {
		return models.Conversation{}, newViewError(app.MsgFailedToSaveConversation, err)
	}
	if conversation.Messages == nil {
		conversation.Messages = []models.Message{}
	}

	content := strings.TrimSpace(firstMessage)
	if content == "" {
		return conversation, nil
	}

	message, err := c.adapter.Messages().Save(ctx, models.Message{
		ConversationID: conversation.ID,
		SenderUserID:   me.ID,
		Content:        content,
	})
	if err != nil {
		return conversation, newViewError(app.MsgFailedToSaveMessage, err)
	}
	message.SenderUser = &me
	conversation.Messages, _ = models.AppendMessage(conversation.Messages, message)

	return conversation, nil
}

func (c *clientConversationService) Feed(conversationID int64) ConversationFeed {
	return newConversationFeed(conversationID, c, c.feedCfg)
}
