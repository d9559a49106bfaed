// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-community-share/internal/config"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/session"
	"github.com/MKhiriev/go-community-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testWorkers = config.ClientWorkers{PollInterval: time.Second, PollMaxBackoff: 2 * time.Second}

func newTestConversationSvc(a *testAdapter, s *session.Session) *clientConversationService {
	keeper := &sessionKeeper{session: s, now: time.Now, logger: logger.Nop()}
	users := newClientUserService(a, keeper, logger.Nop())
	return newClientConversationService(a, s, users, testWorkers, logger.Nop()).(*clientConversationService)
}

func TestClientConversationService_MarkViewed(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := newTestAdapter(ctrl)
	svc := newTestConversationSvc(a, signedIn(models.User{ID: 1}))
	ctx := context.Background()

	conversation := models.Conversation{ID: 10, UserAID: 1, UserBID: 2, Messages: []models.Message{
		{ID: 1, SenderUserID: 2},
		{ID: 2, SenderUserID: 1},
		{ID: 3, SenderUserID: 2},
		{ID: 4, SenderUserID: 2, Viewed: true},
		{ID: 5, SenderUserID: 2},
	}}

	markOK := func(_ context.Context, m models.Message) (models.Message, error) {
		m.Viewed = true
		return m, nil
	}
	a.messages.EXPECT().MarkViewed(ctx, gomock.Cond(func(m models.Message) bool { return m.ID == 1 })).DoAndReturn(markOK)
	a.messages.EXPECT().MarkViewed(ctx, gomock.Cond(func(m models.Message) bool { return m.ID == 3 })).
		Return(models.Message{}, apiError(http.StatusInternalServerError, "Internal server error"))
	a.messages.EXPECT().MarkViewed(ctx, gomock.Cond(func(m models.Message) bool { return m.ID == 5 })).DoAndReturn(markOK)

	got, err := svc.MarkViewed(ctx, conversation, 1)
	require.Error(t, err)

	viewed := map[int64]bool{}
	for _, m := range got.Messages {
		viewed[m.ID] = m.Viewed
	}
	assert.Equal(t, map[int64]bool{1: true, 2: false, 3: false, 4: true, 5: true}, viewed)
	assert.False(t, conversation.Messages[0].Viewed, "input must not be modified")
}

func TestClientConversationService_MarkViewed_NothingUnread(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := newTestAdapter(ctrl)
	svc := newTestConversationSvc(a, signedIn(models.User{ID: 1}))

	conversation := models.Conversation{ID: 10, UserAID: 1, UserBID: 2, Messages: []models.Message{{ID: 1, SenderUserID: 1}}}

	got, err := svc.MarkViewed(context.Background(), conversation, 1)
	require.NoError(t, err)
	assert.Equal(t, conversation, got)
}

func TestClientConversationService_Start(t *testing.T) {
	ctx := context.Background()
	me := models.User{ID: 1, Name: "Ann"}

	t.Run("saves conversation then first message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		a := newTestAdapter(ctrl)
		svc := newTestConversationSvc(a, signedIn(me))

		gomock.InOrder(
			a.conversations.EXPECT().Save(ctx, models.Conversation{Title: "Robotics", SearchID: 4, UserAID: 1, UserBID: 2, Active: true}).
				Return(models.Conversation{ID: 30, Title: "Robotics", UserAID: 1, UserBID: 2}, nil),
			a.messages.EXPECT().Save(ctx, models.Message{ConversationID: 30, SenderUserID: 1, Content: "Hello"}).
				Return(models.Message{ID: 300, ConversationID: 30, SenderUserID: 1, Content: "Hello"}, nil),
		)

		conversation, err := svc.Start(ctx, 2, 4, " Robotics ", " Hello ")
		require.NoError(t, err)
		require.Len(t, conversation.Messages, 1)
		assert.Equal(t, int64(300), conversation.Messages[0].ID)
		assert.Equal(t, "Ann", conversation.Messages[0].SenderUser.Name)
	})

	t.Run("conversation save fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		a := newTestAdapter(ctrl)
		svc := newTestConversationSvc(a, signedIn(me))

		a.conversations.EXPECT().Save(ctx, gomock.Any()).Return(models.Conversation{}, apiError(http.StatusForbidden, "Forbidden"))

		_, err := svc.Start(ctx, 2, 4, "t", "Hello")
		assert.Equal(t, "Failed to save conversation: Forbidden", ViewMessage(err))
	})

	t.Run("message save fails keeps conversation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		a := newTestAdapter(ctrl)
		svc := newTestConversationSvc(a, signedIn(me))

		a.conversations.EXPECT().Save(ctx, gomock.Any()).Return(models.Conversation{ID: 30, UserAID: 1, UserBID: 2}, nil)
		a.messages.EXPECT().Save(ctx, gomock.Any()).Return(models.Message{}, apiError(http.StatusBadRequest, "Message content is required"))

		conversation, err := svc.Start(ctx, 2, 4, "t", "Hello")
		assert.Equal(t, "Failed to save message: Message content is required", ViewMessage(err))
		assert.Equal(t, int64(30), conversation.ID)
	})

	t.Run("signed out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := newTestConversationSvc(newTestAdapter(ctrl), session.New())

		_, err := svc.Start(ctx, 2, 4, "t", "Hello")
		assert.ErrorIs(t, err, ErrNotAuthenticated)
	})
}

func TestClientConversationService_Unviewed(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := newTestAdapter(ctrl)
	svc := newTestConversationSvc(a, signedIn(models.User{ID: 1}))
	ctx := context.Background()

	a.conversations.EXPECT().GetUnviewedForUser(ctx, int64(1)).Return([]models.Conversation{{ID: 1}}, nil)
	a.conversations.EXPECT().GetUnviewedForUser(ctx, int64(1)).Return(nil, apiError(http.StatusUnauthorized, "Authorization failed"))

	conversations, err := svc.Unviewed(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, conversations, 1)

	_, err = svc.Unviewed(ctx, 1)
	assert.Equal(t, "Failed to load conversations: Authorization failed", ViewMessage(err))
}
