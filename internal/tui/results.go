// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/MKhiriev/go-community-share/internal/session"
	"github.com/MKhiriev/go-community-share/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoSearch = errors.New("you have no search yet, sign up as a community partner or save a search")

const (
	startTitle = iota
	startMessage
)

// ResultsModel lists the matches of one search and starts a conversation
// with the searcher of the selected match.
type ResultsModel struct {
	ctx           context.Context
	searches      service.ClientSearchService
	conversations service.ClientConversationService
	session       *session.Session

	search  models.Search
	link    string
	matches []models.Search
	idx     int
	loading bool

	composing bool
	compose   form

	status string
	errMsg string
}

func NewResultsModel(ctx context.Context, searches service.ClientSearchService, conversations service.ClientConversationService, s *session.Session) *ResultsModel {
	return &ResultsModel{
		ctx:           ctx,
		searches:      searches,
		conversations: conversations,
		session:       s,
	}
}

func newComposeForm() form {
	return newForm(
		field{label: "Title", placeholder: "conversation title", charLimit: 100},
		field{label: "Message", placeholder: "first message", charLimit: 2000},
	)
}

func (m *ResultsModel) Init() tea.Cmd {
	m.search = models.Search{}
	m.link = ""
	m.matches = nil
	m.idx = 0
	m.composing = false
	m.status = ""
	m.errMsg = ""
	m.loading = true
	return nil
}

// DefaultPayload opens the partner search of the signed-in user when the
// page is shown without a search.
func (m *ResultsModel) DefaultPayload() tea.Msg {
	return openResults{}
}

// cmdLoad loads the matches of searchID, or of the user's own partner
// search when searchID is zero.
func (m *ResultsModel) cmdLoad(searchID int64) tea.Cmd {
	ctx, searches := m.ctx, m.searches
	userID := m.session.ActiveUserID()
	return func() tea.Msg {
		search := models.Search{ID: searchID}
		if searchID == 0 {
			own, found, err := searches.ForPartner(ctx, userID)
			if err != nil {
				return resultsLoadedMsg{err: err}
			}
			if !found {
				return resultsLoadedMsg{err: errNoSearch}
			}
			search = own
		}

		matches, err := searches.Results(ctx, search.ID)
		return resultsLoadedMsg{search: search, matches: matches, err: err}
	}
}

func (m *ResultsModel) current() (models.Search, bool) {
	if len(m.matches) == 0 || m.idx < 0 || m.idx >= len(m.matches) {
		return models.Search{}, false
	}
	return m.matches[m.idx], true
}

func (m *ResultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openResults:
		m.link = msg.link
		m.loading = true
		m.errMsg = ""
		return m, m.cmdLoad(msg.searchID)
	case resultsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.search = msg.search
		if m.link == "" {
			m.link = msg.search.ResultsPath()
		}
		m.matches = msg.matches
		m.idx = 0
		return m, nil
	case conversationStartedMsg:
		m.compose.submitting = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.composing = false
		return m, navigateWith(service.PageConversation, openConversation{id: msg.conversation.ID})
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "Link copied"
		return m, nil
	case tea.KeyMsg:
		if m.composing {
			return m.updateCompose(msg)
		}
		return m.updateList(msg)
	}

	if m.composing {
		return m, m.compose.update(msg)
	}
	return m, nil
}

func (m *ResultsModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.matches)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); !ok {
			return m, nil
		}
		m.compose = newComposeForm()
		m.composing = true
		m.status = ""
		m.errMsg = ""
		return m, textinput.Blink
	case key.Matches(msg, keys.copy), msg.String() == "c":
		if m.link == "" {
			m.status = "Nothing to copy"
			return m, nil
		}
		link := m.link
		return m, func() tea.Msg { return copiedMsg{err: writeClipboard(link)} }
	case key.Matches(msg, keys.refresh):
		if m.loading || m.search.ID == 0 {
			return m, nil
		}
		m.loading = true
		return m, m.cmdLoad(m.search.ID)
	case key.Matches(msg, keys.esc):
		return m, navigate(service.PageInbox)
	}
	return m, nil
}

func (m *ResultsModel) updateCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.composing = false
		m.errMsg = ""
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.compose.submitting {
			return m, nil
		}
		match, ok := m.current()
		if !ok {
			return m, nil
		}
		title := m.compose.trimmed(startTitle)
		first := m.compose.trimmed(startMessage)
		if title == "" || first == "" {
			m.errMsg = "Title and message are required"
			return m, nil
		}
		m.errMsg = ""
		m.compose.submitting = true
		ctx, conversations := m.ctx, m.conversations
		searchID := m.search.ID
		return m, func() tea.Msg {
			c, err := conversations.Start(ctx, match.SearcherUserID, searchID, title, first)
			return conversationStartedMsg{conversation: c, err: err}
		}
	}
	return m, m.compose.update(msg)
}

func (m *ResultsModel) View() string {
	var b strings.Builder

	if m.composing {
		match, _ := m.current()
		b.WriteString("To: ")
		b.WriteString(valueOrDash(searcherName(match)))
		b.WriteString("\n\n")
		b.WriteString(m.compose.view())
		b.WriteString(m.compose.submitLine("Start conversation"))
		writeFeedback(&b, "", m.errMsg)
		return renderPage("START CONVERSATION", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: send")
	}

	if m.link != "" {
		b.WriteString("Link: ")
		b.WriteString(m.link)
		b.WriteString("\n")
	}
	if len(m.search.Labels) > 0 {
		b.WriteString("Labels: ")
		b.WriteString(strings.Join(m.search.Labels, ", "))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.matches) == 0 && m.errMsg == "":
		b.WriteString("No matches yet\n")
	default:
		for i, s := range m.matches {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			b.WriteString(fmt.Sprintf("%s%-24s │ %-8s │ %s\n",
				cursor,
				fitText(valueOrDash(searcherName(s)), 24),
				s.SearcherRole,
				fitText(valueOrDash(strings.Join(s.Labels, ", ")), 40),
			))
		}
	}
	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("SEARCH RESULTS", strings.TrimRight(b.String(), "\n"), "enter: contact │ c: copy link │ r: refresh │ esc: inbox")
}

func searcherName(s models.Search) string {
	if s.SearcherUser == nil {
		return ""
	}
	return s.SearcherUser.Name
}
