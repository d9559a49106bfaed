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

// ConfirmEmailModel redeems an email confirmation key.
type ConfirmEmailModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form   form
	status string
	errMsg string
}

func NewConfirmEmailModel(ctx context.Context, auth service.ClientAuthService) *ConfirmEmailModel {
	return &ConfirmEmailModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(field{label: "Key", placeholder: "key from the email"}),
	}
}

func (m *ConfirmEmailModel) Init() tea.Cmd {
	m.status = ""
	m.errMsg = ""
	return textinput.Blink
}

func (m *ConfirmEmailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.form.reset()
		m.status = "Email " + msg.user.Email + " confirmed"
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(service.PageMenu)
		case key.Matches(msg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			confirmKey := m.form.trimmed(0)
			if confirmKey == "" {
				m.errMsg = "Key is required"
				return m, nil
			}
			m.errMsg = ""
			m.status = ""
			m.form.submitting = true
			ctx, auth := m.ctx, m.auth
			return m, func() tea.Msg {
				user, err := auth.ConfirmEmail(ctx, confirmKey)
				return authResultMsg{user: user, err: err}
			}
		}
	}
	return m, m.form.update(msg)
}

func (m *ConfirmEmailModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString(m.form.submitLine("Confirm"))
	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("CONFIRM EMAIL", strings.TrimRight(b.String(), "\n"), "esc: back │ enter: submit")
}
