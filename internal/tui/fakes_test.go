// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"reflect"
	"sync"

	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/MKhiriev/go-community-share/models"
	tea "github.com/charmbracelet/bubbletea"
)

type fakeAuth struct {
	authenticateFn func(ctx context.Context, email, password string) (models.User, error)
	resetFn        func(ctx context.Context, key, password string) (models.User, error)
	requestResetFn func(ctx context.Context, email string) error
	confirmFn      func(ctx context.Context, key string) (models.User, error)
	cleanFn        func(ctx context.Context) error
}

func (f *fakeAuth) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	return f.authenticateFn(ctx, email, password)
}

func (f *fakeAuth) RequestResetPassword(ctx context.Context, email string) error {
	return f.requestResetFn(ctx, email)
}

func (f *fakeAuth) ResetPassword(ctx context.Context, key, password string) (models.User, error) {
	return f.resetFn(ctx, key, password)
}

func (f *fakeAuth) ConfirmEmail(ctx context.Context, key string) (models.User, error) {
	return f.confirmFn(ctx, key)
}

func (f *fakeAuth) Clean(ctx context.Context) error {
	return f.cleanFn(ctx)
}

func (f *fakeAuth) RestoreSession(context.Context) (models.User, bool) {
	return models.User{}, false
}

type fakeRouting struct{}

func (fakeRouting) LandingPage() string { return service.PageMenu }

func (fakeRouting) AfterLogin(next string) string {
	if next == "" {
		return service.PageInbox
	}
	return next
}

type fakeFeed struct {
	mu       sync.Mutex
	startErr error
	started  int
	stopped  int
	sent     []string
	state    service.FeedUpdate
	updates  chan service.FeedUpdate
}

func newFakeFeed(state service.FeedUpdate) *fakeFeed {
	return &fakeFeed{state: state, updates: make(chan service.FeedUpdate, 1)}
}

func (f *fakeFeed) Start(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started++
	return f.startErr
}

func (f *fakeFeed) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped++
}

func (f *fakeFeed) Send(_ context.Context, content string) (models.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, content)
	msg := models.Message{ID: int64(len(f.sent)) + 100, SenderUserID: 1, Content: content}
	f.state.Conversation.Messages = append(f.state.Conversation.Messages, msg)
	return msg, nil
}

func (f *fakeFeed) Updates() <-chan service.FeedUpdate { return f.updates }

func (f *fakeFeed) Snapshot() service.FeedUpdate {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

type fakeConversations struct {
	feeds   map[int64]*fakeFeed
	startFn func(ctx context.Context, otherUserID, searchID int64, title, firstMessage string) (models.Conversation, error)
}

func (f *fakeConversations) Get(context.Context, int64) (models.Conversation, error) {
	return models.Conversation{}, nil
}

func (f *fakeConversations) Unviewed(context.Context, int64) ([]models.Conversation, error) {
	return nil, nil
}

func (f *fakeConversations) MarkViewed(_ context.Context, c models.Conversation, _ int64) (models.Conversation, error) {
	return c, nil
}

func (f *fakeConversations) Start(ctx context.Context, otherUserID, searchID int64, title, firstMessage string) (models.Conversation, error) {
	return f.startFn(ctx, otherUserID, searchID, title, firstMessage)
}

func (f *fakeConversations) Feed(conversationID int64) service.ConversationFeed {
	return f.feeds[conversationID]
}

type fakeSearches struct {
	forPartnerFn func(ctx context.Context, userID int64) (models.Search, bool, error)
	resultsFn    func(ctx context.Context, searchID int64) ([]models.Search, error)
}

func (f *fakeSearches) ForPartner(ctx context.Context, userID int64) (models.Search, bool, error) {
	return f.forPartnerFn(ctx, userID)
}

func (f *fakeSearches) Results(ctx context.Context, searchID int64) ([]models.Search, error) {
	return f.resultsFn(ctx, searchID)
}

func (f *fakeSearches) Save(_ context.Context, s models.Search) (models.Search, error) {
	return s, nil
}

// stubPage records what the router delivers to it.
type stubPage struct {
	inits    int
	received []tea.Msg
	left     int
}

func (p *stubPage) Init() tea.Cmd { p.inits++; return nil }

func (p *stubPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	p.received = append(p.received, msg)
	return p, nil
}

func (p *stubPage) View() string { return "stub" }

func (p *stubPage) Leave() { p.left++ }

type stubDefaultPage struct {
	stubPage
}

func (p *stubDefaultPage) DefaultPayload() tea.Msg { return openResults{} }

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+y":
		return tea.KeyMsg{Type: tea.KeyCtrlY}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// typeInto sends s to a model one rune at a time.
func typeInto(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

var cmdType = reflect.TypeOf(tea.Cmd(nil))

// runCmd executes cmd and flattens batch and sequence results in order.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}

	v := reflect.ValueOf(msg)
	if v.Kind() == reflect.Slice && v.Type().Elem() == cmdType {
		var out []tea.Msg
		for i := 0; i < v.Len(); i++ {
			c := v.Index(i).Interface().(tea.Cmd)
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
