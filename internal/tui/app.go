// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/MKhiriev/go-community-share/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// leaver is implemented by pages holding resources while they are shown.
type leaver interface {
	Leave()
}

// defaultPayloader is implemented by pages that need a payload even when
// navigated to without one.
type defaultPayloader interface {
	DefaultPayload() tea.Msg
}

// protectedPages need a signed-in user. Navigating to one while signed out
// opens the login page with the requested page as its target.
var protectedPages = map[string]struct{}{
	service.PageInbox:        {},
	service.PageConversation: {},
	service.PageResults:      {},
	service.PageSettings:     {},
}

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles the global ctrl+c quit
// 3) handles NavigateTo messages, leaving the previous page
// 4) delegates all other messages to the active page
type RootModel struct {
	pages       map[string]tea.Model
	currentName string
	current     tea.Model
	session     *session.Session

	quitByUser bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, s *session.Session) RootModel {
	return RootModel{
		pages:       pages,
		currentName: startPage,
		current:     pages[startPage],
		session:     s,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		r.leave()
		r.quitByUser = true
		return r, tea.Quit
	}

	if nav, ok := msg.(NavigateTo); ok {
		return r.navigate(nav)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.currentName] = updated
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	if _, protected := protectedPages[nav.Page]; protected && r.session != nil && !r.session.IsAuthenticated() {
		nav = NavigateTo{Page: service.PageLogin, Payload: loginTarget{next: nav.Page}}
	}

	next, exists := r.pages[nav.Page]
	if !exists {
		return r, nil
	}

	r.leave()
	r.currentName = nav.Page
	r.current = next

	init := r.current.Init()
	payload := nav.Payload
	if d, ok := r.current.(defaultPayloader); ok && payload == nil {
		payload = d.DefaultPayload()
	}
	if payload == nil {
		return r, init
	}
	return r, tea.Sequence(init, func() tea.Msg { return payload })
}

func (r RootModel) leave() {
	if l, ok := r.current.(leaver); ok {
		l.Leave()
	}
}

func (r RootModel) View() string {
	if r.current == nil {
		return appStyle.Render(renderPage("COMMUNITY SHARE", "", ""))
	}
	return appStyle.Render(r.current.View())
}

// Page returns the name of the active page.
func (r RootModel) Page() string {
	return r.currentName
}
