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

// RequestResetModel asks the server to mail a password reset key.
type RequestResetModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form   form
	email  string
	status string
	errMsg string
}

func NewRequestResetModel(ctx context.Context, auth service.ClientAuthService) *RequestResetModel {
	return &RequestResetModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(field{label: "Email", placeholder: "email", charLimit: 254}),
	}
}

func (m *RequestResetModel) Init() tea.Cmd {
	m.status = ""
	m.errMsg = ""
	return textinput.Blink
}

func (m *RequestResetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case doneMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.form.reset()
		m.status = "A reset key was sent to " + m.email + ". Open Reset password to use it."
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(service.PageMenu)
		case msg.String() == "ctrl+n":
			return m, navigate(service.PageResetPassword)
		case key.Matches(msg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			m.email = m.form.trimmed(0)
			if m.email == "" {
				m.errMsg = "Email is required"
				return m, nil
			}
			m.errMsg = ""
			m.status = ""
			m.form.submitting = true
			ctx, auth, email := m.ctx, m.auth, m.email
			return m, func() tea.Msg {
				return doneMsg{err: auth.RequestResetPassword(ctx, email)}
			}
		}
	}
	return m, m.form.update(msg)
}

func (m *RequestResetModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString(m.form.submitLine("Send reset key"))
	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("FORGOT PASSWORD", strings.TrimRight(b.String(), "\n"), "esc: back │ ctrl+n: enter key │ enter: submit")
}

const (
	resetKey = iota
	resetPassword
	resetRepeat
)

// ResetPasswordModel sets a new password with a mailed key. A successful
// reset signs the user in.
type ResetPasswordModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form   form
	errMsg string
}

func NewResetPasswordModel(ctx context.Context, auth service.ClientAuthService) *ResetPasswordModel {
	return &ResetPasswordModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(
			field{label: "Key", placeholder: "key from the email"},
			field{label: "New password", placeholder: "at least 8 characters", secret: true},
			field{label: "Repeat password", placeholder: "password", secret: true},
		),
	}
}

func (m *ResetPasswordModel) Init() tea.Cmd {
	m.errMsg = ""
	return textinput.Blink
}

func (m *ResetPasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.form.reset()
		return m, navigateWith(service.PageMenu, notice{text: "Password updated, signed in as " + msg.user.Name})
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(service.PageMenu)
		case key.Matches(msg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			resetKeyValue := m.form.trimmed(resetKey)
			pass := m.form.value(resetPassword)
			if resetKeyValue == "" || pass == "" {
				m.errMsg = "Key and password are required"
				return m, nil
			}
			if pass != m.form.value(resetRepeat) {
				m.errMsg = "Passwords do not match"
				return m, nil
			}
			m.errMsg = ""
			m.form.submitting = true
			ctx, auth := m.ctx, m.auth
			return m, func() tea.Msg {
				user, err := auth.ResetPassword(ctx, resetKeyValue, pass)
				return authResultMsg{user: user, err: err}
			}
		}
	}
	return m, m.form.update(msg)
}

func (m *ResetPasswordModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString(m.form.submitLine("Reset password"))
	writeFeedback(&b, "", m.errMsg)

	return renderPage("RESET PASSWORD", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
