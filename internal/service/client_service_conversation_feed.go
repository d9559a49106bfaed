// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-community-share/internal/app"
	"github.com/MKhiriev/go-community-share/internal/config"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/models"
	"github.com/cenkalti/backoff/v4"
)

// Feed timing used when the configuration leaves it unset.
const (
	DefaultPollInterval   = 5 * time.Second
	DefaultPollMaxBackoff = time.Minute
)

// timerFunc starts a one-shot timer. The returned func stops it.
type timerFunc func(d time.Duration) (<-chan time.Time, func() bool)

func realTimer(d time.Duration) (<-chan time.Time, func() bool) {
	t := time.NewTimer(d)
	return t.C, t.Stop
}

// conversationFeed polls one conversation. A single goroutine owns the
// timer; everything it shares with Send and Snapshot is guarded by mu.
type conversationFeed struct {
	conversationID int64
	svc            *clientConversationService

	interval   time.Duration
	maxBackoff time.Duration
	newTimer   timerFunc
	logger     *logger.Logger

	mu       sync.Mutex
	state    FeedUpdate
	viewerID int64
	started  bool
	stopped  bool
	closed   bool
	cancel   context.CancelFunc
	done     chan struct{}

	updates chan FeedUpdate
}

func newConversationFeed(conversationID int64, svc *clientConversationService, cfg config.ClientWorkers) *conversationFeed {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	maxBackoff := cfg.PollMaxBackoff
	if maxBackoff <= 0 {
		maxBackoff = DefaultPollMaxBackoff
	}
	if maxBackoff < interval {
		maxBackoff = interval
	}

	return &conversationFeed{
		conversationID: conversationID,
		svc:            svc,
		interval:       interval,
		maxBackoff:     maxBackoff,
		newTimer:       realTimer,
		logger:         svc.logger.WithStr("component", "conversation_feed"),
		updates:        make(chan FeedUpdate, 1),
	}
}

func (f *conversationFeed) Start(ctx context.Context) error {
	f.mu.Lock()
	switch {
	case f.stopped:
		f.mu.Unlock()
		return ErrFeedStopped
	case f.started:
		f.mu.Unlock()
		return ErrFeedStarted
	}
	f.started = true
	feedCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.mu.Unlock()

	conversation, other, viewerID, err := f.load(feedCtx)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.stopped {
		cancel()
		return ErrFeedStopped
	}
	if err != nil {
		cancel()
		f.started = false
		f.cancel = nil
		return err
	}

	f.viewerID = viewerID
	f.state = FeedUpdate{Conversation: conversation, OtherUser: other}
	f.publishLocked()

	f.done = make(chan struct{})
	go f.run(feedCtx, f.done)

	return nil
}

// load is the first fetch of Start.
func (f *conversationFeed) load(ctx context.Context) (models.Conversation, models.User, int64, error) {
	viewerID := f.svc.session.ActiveUserID()
	if viewerID == 0 {
		return models.Conversation{}, models.User{}, 0, ErrNotAuthenticated
	}

	conversation, err := f.svc.adapter.Conversations().Get(ctx, f.conversationID)
	if err != nil {
		return models.Conversation{}, models.User{}, 0, newViewError(app.MsgFailedToLoadConversation, err)
	}
	if err = ctx.Err(); err != nil {
		return models.Conversation{}, models.User{}, 0, err
	}
	if !conversation.HasParticipant(viewerID) {
		return models.Conversation{}, models.User{}, 0, ErrNotParticipant
	}

	conversation = f.markViewed(ctx, conversation, viewerID)
	other := f.otherUser(ctx, conversation, viewerID, models.User{})

	return conversation, other, viewerID, nil
}

func (f *conversationFeed) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = f.interval
	b.RandomizationFactor = 0
	b.MaxInterval = f.maxBackoff
	b.MaxElapsedTime = 0
	b.Reset()

	wait := f.interval
	for {
		fired, stop := f.newTimer(wait)
		select {
		case <-ctx.Done():
			stop()
			return
		case <-fired:
		}

		if err := f.poll(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			wait = b.NextBackOff()
			f.logger.Warn().Err(err).
				Str("func", "*conversationFeed.run").
				Int64("conversation_id", f.conversationID).
				Dur("retry_in", wait).
				Msg("conversation refresh failed")
			continue
		}

		b.Reset()
		wait = f.interval
	}
}

func (f *conversationFeed) poll(ctx context.Context) error {
	f.mu.Lock()
	viewerID := f.viewerID
	previousOther := f.state.OtherUser
	f.mu.Unlock()

	conversation, err := f.svc.adapter.Conversations().Get(ctx, f.conversationID)
	if err != nil {
		if ctx.Err() != nil {
			return err
		}
		f.mu.Lock()
		f.state.Err = newViewError(app.MsgFailedToLoadConversation, err)
		f.publishLocked()
		f.mu.Unlock()
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	conversation = f.markViewed(ctx, conversation, viewerID)
	other := f.otherUser(ctx, conversation, viewerID, previousOther)

	f.mu.Lock()
	defer f.mu.Unlock()

	conversation.Messages = models.MergeMessages(conversation.Messages, f.state.Conversation.Messages)
	f.state = FeedUpdate{Conversation: conversation, OtherUser: other}
	f.publishLocked()
	return nil
}

func (f *conversationFeed) markViewed(ctx context.Context, conversation models.Conversation, viewerID int64) models.Conversation {
	marked, err := f.svc.MarkViewed(ctx, conversation, viewerID)
	if err != nil {
		f.logger.Warn().Err(err).
			Str("func", "*conversationFeed.markViewed").
			Int64("conversation_id", f.conversationID).
			Msg("some messages were not marked viewed")
	}
	return marked
}

// otherUser prefers the snapshot embedded by the server, then the user
// already known to the feed, and only then asks the server.
func (f *conversationFeed) otherUser(ctx context.Context, conversation models.Conversation, viewerID int64, known models.User) models.User {
	other, ok := conversation.OtherUser(viewerID)
	if ok {
		return other
	}
	if known.ID != 0 && known.ID == other.ID {
		return known
	}

	fetched, err := f.svc.users.Get(ctx, other.ID)
	if err != nil {
		f.logger.Warn().Err(err).
			Str("func", "*conversationFeed.otherUser").
			Int64("user_id", other.ID).
			Msg("could not load conversation participant")
		return other
	}
	return fetched
}

func (f *conversationFeed) Send(ctx context.Context, content string) (models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Message{}, ErrEmptyMessage
	}

	me, ok := f.svc.session.ActiveUser()
	if !ok {
		return models.Message{}, ErrNotAuthenticated
	}

	message, err := f.svc.adapter.Messages().Save(ctx, models.Message{
		ConversationID: f.conversationID,
		SenderUserID:   me.ID,
		Content:        content,
	})
	if err != nil {
		return models.Message{}, newViewError(app.MsgFailedToSaveMessage, err)
	}
	message.SenderUser = &me

	f.mu.Lock()
	defer f.mu.Unlock()

	var appended bool
	f.state.Conversation.Messages, appended = models.AppendMessage(f.state.Conversation.Messages, message)
	if appended {
		f.publishLocked()
	}
	return message, nil
}

func (f *conversationFeed) Stop() {
	f.mu.Lock()
	if f.stopped {
		f.mu.Unlock()
		return
	}
	f.stopped = true
	cancel, done := f.cancel, f.done
	f.mu.Unlock()

	// cancel also aborts a Start still loading; done exists once the loop runs.
	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}

	f.mu.Lock()
	f.closed = true
	close(f.updates)
	f.mu.Unlock()
}

func (f *conversationFeed) Updates() <-chan FeedUpdate {
	return f.updates
}

func (f *conversationFeed) Snapshot() FeedUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *conversationFeed) snapshotLocked() FeedUpdate {
	u := f.state
	u.Conversation.Messages = append([]models.Message(nil), f.state.Conversation.Messages...)
	return u
}

// publishLocked replaces any update the view has not read yet with the
// current state. Must hold mu.
func (f *conversationFeed) publishLocked() {
	if f.closed {
		return
	}
	select {
	case <-f.updates:
	default:
	}
	f.updates <- f.snapshotLocked()
}
