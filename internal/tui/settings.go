// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-community-share/internal/app"
	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/MKhiriev/go-community-share/internal/session"
	"github.com/MKhiriev/go-community-share/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	settingsName = iota
	settingsInstitution
	settingsInstitutionRole
)

// SettingsModel edits the profile of the signed-in user.
type SettingsModel struct {
	ctx     context.Context
	users   service.ClientUserService
	session *session.Session

	form   form
	status string
	errMsg string
}

func NewSettingsModel(ctx context.Context, users service.ClientUserService, s *session.Session) *SettingsModel {
	return &SettingsModel{ctx: ctx, users: users, session: s}
}

// Init fills the form from the session user.
func (m *SettingsModel) Init() tea.Cmd {
	m.form = newForm(
		field{label: "Name", placeholder: "full name"},
		field{label: "Institution", placeholder: "optional"},
		field{label: "Institution role", placeholder: "e.g. teacher, volunteer"},
	)
	m.status = ""
	m.errMsg = ""

	if user, ok := m.session.ActiveUser(); ok {
		m.form.inputs[settingsName].SetValue(user.Name)
		if len(user.InstitutionAssociations) > 0 {
			first := user.InstitutionAssociations[0]
			m.form.inputs[settingsInstitution].SetValue(first.Institution.Name)
			m.form.inputs[settingsInstitutionRole].SetValue(first.Role)
		}
	}
	return textinput.Blink
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notice:
		m.errMsg = msg.text
		return m, nil
	case settingsSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = app.MsgSettingsUpdated
		m.form.inputs[settingsName].SetValue(msg.user.Name)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(service.PageMenu)
		case key.Matches(msg, keys.enter):
			return m.save()
		}
	}
	return m, m.form.update(msg)
}

func (m *SettingsModel) save() (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}
	user, ok := m.session.ActiveUser()
	if !ok {
		return m, navigateWith(service.PageLogin, loginTarget{next: service.PageSettings})
	}

	name := m.form.trimmed(settingsName)
	if name == "" {
		m.errMsg = app.MsgNameRequired
		return m, nil
	}

	edited := user.Clone()
	edited.Name = name
	institution := m.form.trimmed(settingsInstitution)
	role := m.form.trimmed(settingsInstitutionRole)
	switch {
	case len(edited.InstitutionAssociations) > 0:
		edited.InstitutionAssociations[0].Institution.Name = institution
		edited.InstitutionAssociations[0].Role = role
		if institution == "" {
			edited.InstitutionAssociations = edited.InstitutionAssociations[1:]
		}
	case institution != "":
		edited.InstitutionAssociations = []models.InstitutionAssociation{{
			Role:        role,
			Institution: models.Institution{Name: institution},
		}}
	}

	m.status = ""
	m.errMsg = ""
	m.form.submitting = true
	ctx, users := m.ctx, m.users
	return m, func() tea.Msg {
		saved, err := users.SaveSettings(ctx, edited)
		return settingsSavedMsg{user: saved, err: err}
	}
}

func (m *SettingsModel) View() string {
	var b strings.Builder
	if user, ok := m.session.ActiveUser(); ok {
		b.WriteString("Email: ")
		b.WriteString(user.Email)
		if !user.EmailConfirmed {
			b.WriteString(" (not confirmed)")
		}
		b.WriteString("\n\n")
	}
	b.WriteString(m.form.view())
	b.WriteString(m.form.submitLine("Save"))
	writeFeedback(&b, m.status, m.errMsg)

	return renderPage("SETTINGS", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: save")
}
