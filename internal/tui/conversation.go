// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/MKhiriev/go-community-share/internal/session"
	"github.com/MKhiriev/go-community-share/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// maxShownMessages bounds the history rendered above the input.
const maxShownMessages = 15

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// ConversationModel shows one conversation and keeps it fresh through a
// [service.ConversationFeed]. The feed starts when an [openConversation]
// payload arrives and stops when the page is left.
type ConversationModel struct {
	ctx           context.Context
	conversations service.ClientConversationService
	session       *session.Session
	logger        *logger.Logger

	conversationID int64
	feed           service.ConversationFeed
	state          service.FeedUpdate
	loading        bool

	input   textinput.Model
	sending bool
	status  string
	errMsg  string
}

func NewConversationModel(ctx context.Context, conversations service.ClientConversationService, s *session.Session, logger *logger.Logger) *ConversationModel {
	in := textinput.New()
	in.Placeholder = "write a message"
	in.Width = 60
	in.CharLimit = 2000

	return &ConversationModel{
		ctx:           ctx,
		conversations: conversations,
		session:       s,
		logger:        logger,
		input:         in,
	}
}

func (m *ConversationModel) Init() tea.Cmd {
	m.state = service.FeedUpdate{}
	m.status = ""
	m.errMsg = ""
	m.input.SetValue("")
	m.input.Focus()
	return textinput.Blink
}

// Leave stops the feed. It is called by [RootModel] before another page
// is shown.
func (m *ConversationModel) Leave() {
	if m.feed != nil {
		m.feed.Stop()
		m.feed = nil
	}
	m.loading = false
	m.sending = false
}

func (m *ConversationModel) open(id int64) tea.Cmd {
	m.Leave()
	m.conversationID = id
	m.feed = m.conversations.Feed(id)
	m.loading = true
	return m.cmdStart(m.feed)
}

func (m *ConversationModel) cmdStart(feed service.ConversationFeed) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return feedStartedMsg{feed: feed, err: feed.Start(ctx)}
	}
}

// waitForUpdate delivers the next snapshot of feed. ok is false once the
// feed is stopped.
func waitForUpdate(feed service.ConversationFeed) tea.Cmd {
	updates := feed.Updates()
	return func() tea.Msg {
		u, ok := <-updates
		return feedUpdateMsg{feed: feed, update: u, ok: ok}
	}
}

func (m *ConversationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openConversation:
		return m, m.open(msg.id)
	case feedStartedMsg:
		if msg.feed != m.feed {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).
				Int64("conversation_id", m.conversationID).
				Msg("conversation feed did not start")
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.state = m.feed.Snapshot()
		return m, waitForUpdate(m.feed)
	case feedUpdateMsg:
		if msg.feed != m.feed || !msg.ok {
			return m, nil
		}
		m.state = msg.update
		m.errMsg = errorText(msg.update.Err)
		return m, waitForUpdate(m.feed)
	case messageSentMsg:
		m.sending = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.input.SetValue("")
		if m.feed != nil {
			m.state = m.feed.Snapshot()
		}
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "Copied"
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(service.PageInbox)
		case key.Matches(msg, keys.copy):
			return m, m.cmdCopyLast()
		case msg.String() == "ctrl+r":
			if m.feed != nil && m.loading {
				return m, nil
			}
			m.errMsg = ""
			if m.feed == nil || m.state.Conversation.ID == 0 {
				return m, m.open(m.conversationID)
			}
			return m, nil
		case key.Matches(msg, keys.enter):
			return m.send()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *ConversationModel) send() (tea.Model, tea.Cmd) {
	if m.feed == nil || m.loading || m.sending {
		return m, nil
	}
	content := strings.TrimSpace(m.input.Value())
	if content == "" {
		return m, nil
	}

	m.sending = true
	m.status = ""
	ctx, feed := m.ctx, m.feed
	return m, func() tea.Msg {
		_, err := feed.Send(ctx, content)
		return messageSentMsg{err: err}
	}
}

func (m *ConversationModel) cmdCopyLast() tea.Cmd {
	messages := m.state.Conversation.Messages
	if len(messages) == 0 {
		m.status = "Nothing to copy"
		return nil
	}
	text := messages[len(messages)-1].Content
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func (m *ConversationModel) View() string {
	var b strings.Builder
	viewerID := m.session.ActiveUserID()
	c := m.state.Conversation

	title := "CONVERSATION"
	if c.Title != "" {
		title += ": " + strings.ToUpper(c.Title)
	}

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case c.ID == 0:
		if m.errMsg == "" {
			b.WriteString("No conversation\n")
		}
	default:
		b.WriteString("With: ")
		b.WriteString(valueOrDash(m.state.OtherUser.Name))
		b.WriteString("\n\n")

		messages := c.Messages
		if len(messages) > maxShownMessages {
			b.WriteString("...\n")
			messages = messages[len(messages)-maxShownMessages:]
		}
		if len(messages) == 0 {
			b.WriteString("No messages yet\n")
		}
		for _, msg := range messages {
			b.WriteString(m.renderMessage(msg, viewerID))
			b.WriteString("\n")
		}

		b.WriteString("\n[")
		b.WriteString(m.input.View())
		b.WriteString("]\n")
		if m.sending {
			b.WriteString("Sending...\n")
		}
	}
	writeFeedback(&b, m.status, m.errMsg)

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "enter: send │ ctrl+y: copy last message │ ctrl+r: retry │ esc: inbox")
}

func (m *ConversationModel) renderMessage(msg models.Message, viewerID int64) string {
	author := m.state.OtherUser.Name
	if msg.SenderUserID == viewerID {
		author = "You"
	} else if msg.SenderUser != nil && msg.SenderUser.Name != "" {
		author = msg.SenderUser.Name
	}

	line := formatTime(msg.DateCreated) + " " + valueOrDash(author) + ": " + msg.Content
	if msg.SenderUserID == viewerID {
		return ownMessageStyle.Render(line)
	}
	return line
}
