// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/MKhiriev/go-community-share/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	signupName = iota
	signupEmail
	signupPassword
	signupRepeat
	signupInstitution
	signupInstitutionRole
	signupLabels
	signupLatitude
	signupLongitude
	signupDistance
)

var signupRoles = []struct {
	role  string
	title string
}{
	{models.RoleEducator, "Educator"},
	{models.RolePartner, "Community partner"},
}

// SignupModel creates an account in two steps: the role is chosen first,
// then the account and role settings are filled in one form. Educators
// also give their location.
type SignupModel struct {
	ctx    context.Context
	signup service.SignupService

	choosingRole bool
	roleIdx      int
	form         form
	errMsg       string
}

func NewSignupModel(ctx context.Context, signup service.SignupService) *SignupModel {
	m := &SignupModel{ctx: ctx, signup: signup}
	m.resetForm()
	return m
}

func (m *SignupModel) resetForm() {
	m.choosingRole = true
	m.errMsg = ""
	m.form = newForm(
		field{label: "Name", placeholder: "full name"},
		field{label: "Email", placeholder: "email", charLimit: 254},
		field{label: "Password", placeholder: "at least 8 characters", secret: true},
		field{label: "Repeat password", placeholder: "password", secret: true},
		field{label: "Institution", placeholder: "optional"},
		field{label: "Institution role", placeholder: "e.g. teacher, volunteer"},
		field{label: "Labels", placeholder: "comma separated, e.g. science, robotics"},
		field{label: "Latitude", placeholder: "optional"},
		field{label: "Longitude", placeholder: "optional"},
		field{label: "Distance, km", placeholder: "optional"},
	)
}

func (m *SignupModel) role() string {
	return signupRoles[m.roleIdx].role
}

func (m *SignupModel) Init() tea.Cmd {
	m.resetForm()
	return textinput.Blink
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case signupResultMsg:
		return m.handleResult(msg)
	case tea.KeyMsg:
		if m.choosingRole {
			return m.updateRoleChoice(msg)
		}
		switch {
		case key.Matches(msg, keys.esc):
			m.choosingRole = true
			m.errMsg = ""
			return m, nil
		case key.Matches(msg, keys.enter):
			return m.submit()
		}
		// Partners have no location fields; focus wraps around the labels.
		if m.role() == models.RolePartner {
			switch {
			case key.Matches(msg, keys.tab) && m.form.focus == signupLabels:
				m.focusField(signupName)
				return m, nil
			case key.Matches(msg, keys.backtab) && m.form.focus == signupName:
				m.focusField(signupLabels)
				return m, nil
			}
		}
	}

	if m.choosingRole {
		return m, nil
	}
	return m, m.form.update(msg)
}

func (m *SignupModel) focusField(i int) {
	m.form.inputs[m.form.focus].Blur()
	m.form.focus = i
	m.form.inputs[i].Focus()
}

func (m *SignupModel) updateRoleChoice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(service.PageMenu)
	case key.Matches(msg, keys.up):
		if m.roleIdx > 0 {
			m.roleIdx--
		}
	case key.Matches(msg, keys.down):
		if m.roleIdx < len(signupRoles)-1 {
			m.roleIdx++
		}
	case key.Matches(msg, keys.enter):
		m.choosingRole = false
	}
	return m, nil
}

func (m *SignupModel) submit() (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}

	req := models.SignupRequest{
		Name:     m.form.trimmed(signupName),
		Email:    m.form.trimmed(signupEmail),
		Password: m.form.value(signupPassword),
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		m.errMsg = "Name, email and password are required"
		return m, nil
	}
	if req.Password != m.form.value(signupRepeat) {
		m.errMsg = "Passwords do not match"
		return m, nil
	}

	associations := []models.InstitutionAssociation{{
		Role:        m.form.trimmed(signupInstitutionRole),
		Institution: models.Institution{Name: m.form.trimmed(signupInstitution)},
	}}
	labels := splitList(m.form.value(signupLabels))

	m.errMsg = ""
	if m.role() == models.RolePartner {
		m.form.submitting = true
		return m, m.cmdSignup(func(ctx context.Context) (service.SignupResult, error) {
			return m.signup.SignUpCommunityPartner(ctx, req, service.PartnerSettings{
				InstitutionAssociations: associations,
				Labels:                  labels,
			})
		})
	}

	settings := service.EducatorSettings{InstitutionAssociations: associations, Labels: labels}
	var err error
	if settings.Latitude, err = optionalFloat(m.form.value(signupLatitude)); err != nil {
		m.errMsg = "Latitude must be a number"
		return m, nil
	}
	if settings.Longitude, err = optionalFloat(m.form.value(signupLongitude)); err != nil {
		m.errMsg = "Longitude must be a number"
		return m, nil
	}
	if settings.Distance, err = optionalFloat(m.form.value(signupDistance)); err != nil {
		m.errMsg = "Distance must be a number"
		return m, nil
	}

	m.form.submitting = true
	return m, m.cmdSignup(func(ctx context.Context) (service.SignupResult, error) {
		return m.signup.SignUpEducator(ctx, req, settings)
	})
}

func (m *SignupModel) handleResult(msg signupResultMsg) (tea.Model, tea.Cmd) {
	m.form.submitting = false
	switch {
	case msg.err == nil && msg.result.ResultsPath != "":
		return m, navigateWith(service.PageResults, openResults{
			searchID: msg.result.Search.ID,
			link:     msg.result.ResultsPath,
		})
	case msg.err == nil:
		return m, navigate(service.PageInbox)
	case errors.Is(msg.err, service.ErrSignupIncomplete):
		// The account exists and is signed in; settings can be fixed later.
		return m, navigateWith(service.PageSettings, notice{text: errorText(msg.err)})
	default:
		m.errMsg = errorText(msg.err)
		return m, nil
	}
}

func (m *SignupModel) cmdSignup(run func(ctx context.Context) (service.SignupResult, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		res, err := run(ctx)
		return signupResultMsg{result: res, err: err}
	}
}

func (m *SignupModel) View() string {
	var b strings.Builder

	if m.choosingRole {
		b.WriteString("I am signing up as:\n\n")
		for i, r := range signupRoles {
			cursor := "  "
			if i == m.roleIdx {
				cursor = "> "
			}
			b.WriteString(cursor)
			b.WriteString(r.title)
			b.WriteString("\n")
		}
		return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ ↑/↓: choose │ enter: continue")
	}

	b.WriteString(fmt.Sprintf("Role: %s\n\n", signupRoles[m.roleIdx].title))
	view := m.form.view()
	if m.role() == models.RolePartner {
		lines := strings.SplitAfter(view, "\n")
		view = strings.Join(lines[:signupLabels+1], "")
	}
	b.WriteString(view)
	b.WriteString(m.form.submitLine("Sign up"))
	writeFeedback(&b, "", m.errMsg)

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: change role │ tab: next field │ enter: submit")
}

func optionalFloat(v string) (*float64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
