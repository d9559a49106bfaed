// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/MKhiriev/go-community-share/internal/session"
	"github.com/MKhiriev/go-community-share/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// InboxModel lists the conversations holding messages the signed-in user
// has not read yet.
type InboxModel struct {
	ctx           context.Context
	conversations service.ClientConversationService
	session       *session.Session

	items   []models.Conversation
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string
}

func NewInboxModel(ctx context.Context, conversations service.ClientConversationService, s *session.Session) *InboxModel {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	return &InboxModel{ctx: ctx, conversations: conversations, session: s, spinner: sp}
}

func (m *InboxModel) Init() tea.Cmd {
	m.loading = true
	m.status = ""
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *InboxModel) cmdLoad() tea.Cmd {
	ctx, conversations := m.ctx, m.conversations
	userID := m.session.ActiveUserID()
	return func() tea.Msg {
		items, err := conversations.Unviewed(ctx, userID)
		return inboxLoadedMsg{conversations: items, err: err}
	}
}

func (m *InboxModel) current() (models.Conversation, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Conversation{}, false
	}
	return m.items[m.idx], true
}

func (m *InboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notice:
		m.status = msg.text
	case inboxLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.conversations
		if m.idx >= len(m.items) {
			m.idx = len(m.items) - 1
		}
		if m.idx < 0 {
			m.idx = 0
		}
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.items)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			c, ok := m.current()
			if !ok {
				m.status = "No conversations"
				return m, nil
			}
			return m, navigateWith(service.PageConversation, openConversation{id: c.ID})
		case key.Matches(msg, keys.refresh):
			if m.loading {
				return m, nil
			}
			return m, m.Init()
		case msg.String() == "s":
			return m, navigate(service.PageResults)
		case key.Matches(msg, keys.esc):
			return m, navigate(service.PageMenu)
		}
	}
	return m, nil
}

func (m *InboxModel) View() string {
	var b strings.Builder
	viewerID := m.session.ActiveUserID()

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	case len(m.items) == 0 && m.errMsg == "":
		b.WriteString("No unread messages\n")
	default:
		for i, c := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			other, _ := c.OtherUser(viewerID)
			line := fmt.Sprintf("%s%-30s │ %-20s │ %d new",
				cursor,
				fitText(valueOrDash(c.Title), 30),
				fitText(valueOrDash(other.Name), 20),
				len(c.UnviewedFor(viewerID)),
			)
			b.WriteString(unreadStyle.Render(line))
			b.WriteString("\n")
		}
	}
	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("INBOX", strings.TrimRight(b.String(), "\n"), "enter: open │ r: refresh │ s: search results │ esc: menu")
}
