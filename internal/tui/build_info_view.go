// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/MKhiriev/go-community-share/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// VersionModel shows the client build and the version the server reports.
type VersionModel struct {
	ctx       context.Context
	stats     service.ClientStatisticsService
	buildInfo models.AppBuildInfo

	server    models.BuildInfoResponse
	loading   bool
	serverErr string
}

func NewVersionModel(ctx context.Context, stats service.ClientStatisticsService, buildInfo models.AppBuildInfo) *VersionModel {
	return &VersionModel{ctx: ctx, stats: stats, buildInfo: buildInfo}
}

func (m *VersionModel) Init() tea.Cmd {
	m.loading = true
	m.serverErr = ""
	ctx, stats := m.ctx, m.stats
	return func() tea.Msg {
		v, err := stats.ServerVersion(ctx)
		return serverVersionMsg{version: v, err: err}
	}
}

func (m *VersionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case serverVersionMsg:
		m.loading = false
		if msg.err != nil {
			m.serverErr = errorText(msg.err)
			return m, nil
		}
		m.server = msg.version
	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) {
			return m, navigate(service.PageMenu)
		}
	}
	return m, nil
}

func (m *VersionModel) View() string {
	return renderPage("ABOUT", m.render(), "esc: back")
}

func (m *VersionModel) render() string {
	var b strings.Builder

	b.WriteString("Application: CommunityShare\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(m.buildInfo.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(valueOrNA(m.buildInfo.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(valueOrNA(m.buildInfo.BuildCommit()))
	b.WriteString("\n\n")

	b.WriteString("Server version: ")
	switch {
	case m.loading:
		b.WriteString("loading...")
	case m.serverErr != "":
		b.WriteString("unavailable (" + m.serverErr + ")")
	default:
		b.WriteString(valueOrNA(m.server.Version))
	}

	return b.String()
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
