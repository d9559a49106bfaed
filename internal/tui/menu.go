// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// actionLogout is a menu entry that is not a page.
const actionLogout = "logout"

type menuItem struct {
	title  string
	target string
}

var (
	signedOutMenu = []menuItem{
		{"Log in", service.PageLogin},
		{"Sign up", service.PageSignup},
		{"Forgot password", service.PageRequestResetPassword},
		{"Reset password", service.PageResetPassword},
		{"Confirm email", service.PageConfirmEmail},
		{"Statistics", service.PageStatistics},
		{"About", service.PageVersion},
	}
	signedInMenu = []menuItem{
		{"Inbox", service.PageInbox},
		{"Results", service.PageResults},
		{"Settings", service.PageSettings},
		{"Confirm email", service.PageConfirmEmail},
		{"Statistics", service.PageStatistics},
		{"About", service.PageVersion},
		{"Log out", actionLogout},
	}
)

// MenuModel lists the pages available to the current session and signs
// the user out after a confirmation.
type MenuModel struct {
	ctx      context.Context
	services *service.ClientServices

	items      []menuItem
	idx        int
	confirming bool
	confirm    confirmModel
	status     string
	errMsg     string
	loggingOut bool
}

func NewMenuModel(ctx context.Context, services *service.ClientServices) *MenuModel {
	m := &MenuModel{ctx: ctx, services: services}
	m.refreshItems()
	return m
}

func (m *MenuModel) refreshItems() {
	if m.services.Session.IsAuthenticated() {
		m.items = signedInMenu
	} else {
		m.items = signedOutMenu
	}
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
}

// Init runs every time the menu is shown.
func (m *MenuModel) Init() tea.Cmd {
	m.confirming = false
	m.status = ""
	m.errMsg = ""
	m.refreshItems()
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notice:
		m.status = msg.text
		return m, nil
	case loggedOutMsg:
		m.loggingOut = false
		m.refreshItems()
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.idx = 0
		m.status = "Signed out"
		return m, nil
	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m *MenuModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirming {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirming = false
			m.loggingOut = true
			return m, m.cmdLogout()
		case key.Matches(msg, keys.no):
			m.confirming = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.version):
		return m, navigate(service.PageVersion)
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.enter):
		m.status = ""
		item := m.items[m.idx]
		if item.target == actionLogout {
			name := "the current user"
			if user, ok := m.services.Session.ActiveUser(); ok {
				name = user.Name
			}
			m.confirm = confirmModel{message: "Log out " + name + "?"}
			m.confirming = true
			return m, nil
		}
		return m, navigate(item.target)
	}
	return m, nil
}

func (m *MenuModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return loggedOutMsg{err: auth.Clean(ctx)}
	}
}

func (m *MenuModel) View() string {
	var b strings.Builder

	if user, ok := m.services.Session.ActiveUser(); ok {
		b.WriteString("Signed in as ")
		b.WriteString(user.Name)
		b.WriteString(" <")
		b.WriteString(user.Email)
		b.WriteString(">\n\n")
	}

	idColWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items))) + 2
	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "#", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.title))
	}

	if m.loggingOut {
		b.WriteString("\nSigning out...\n")
	}
	writeFeedback(&b, m.status, m.errMsg)

	if m.confirming {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
	}

	return renderPage("COMMUNITY SHARE", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: navigate │ v: about │ q: quit")
}
