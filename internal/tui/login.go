// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginEmail = iota
	loginPassword
)

// LoginModel is the Bubble Tea model for the login screen. It renders the
// email and password inputs and dispatches an async sign in on submit.
// A [loginTarget] payload sets the page opened after a successful sign in.
type LoginModel struct {
	ctx     context.Context
	auth    service.ClientAuthService
	routing service.RoutingService

	form   form
	next   string
	errMsg string
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService, routing service.RoutingService) *LoginModel {
	return &LoginModel{
		ctx:     ctx,
		auth:    auth,
		routing: routing,
		form: newForm(
			field{label: "Email", placeholder: "email", charLimit: 254},
			field{label: "Password", placeholder: "password", secret: true, charLimit: 256},
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	m.next = ""
	m.errMsg = ""
	return textinput.Blink
}

// Update handles:
//   - [loginTarget]   sets the page to continue to.
//   - [authResultMsg] finishes the sign in or shows its error.
//   - esc             goes back to the menu.
//   - ctrl+r          opens the password reset request.
//   - enter           validates the inputs and signs in.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginTarget:
		m.next = msg.next
		return m, nil
	case authResultMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		next := m.routing.AfterLogin(m.next)
		m.form.reset()
		m.errMsg = ""
		return m, navigate(next)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.form.submitting = false
			m.errMsg = ""
			return m, navigate(service.PageMenu)
		case msg.String() == "ctrl+r":
			return m, navigate(service.PageRequestResetPassword)
		case key.Matches(msg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			email := m.form.trimmed(loginEmail)
			pass := m.form.value(loginPassword)
			if email == "" || pass == "" {
				m.errMsg = "Email and password are required"
				return m, nil
			}
			m.errMsg = ""
			m.form.submitting = true
			return m, m.cmdLogin(email, pass)
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString(m.form.submitLine("Log in"))
	if m.next != "" {
		b.WriteString("\nContinues to: ")
		b.WriteString(m.next)
		b.WriteString("\n")
	}
	writeFeedback(&b, "", m.errMsg)

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ ctrl+r: forgot password │ enter: submit")
}

func (m *LoginModel) cmdLogin(email, pass string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Authenticate(ctx, email, pass)
		return authResultMsg{user: user, err: err}
	}
}
