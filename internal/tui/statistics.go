// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/MKhiriev/go-community-share/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// StatisticsModel shows the platform counters. They are reloaded every
// time the page opens.
type StatisticsModel struct {
	ctx   context.Context
	stats service.ClientStatisticsService

	spinner spinner.Model
	loading bool
	data    models.Statistics
	errMsg  string
}

func NewStatisticsModel(ctx context.Context, stats service.ClientStatisticsService) *StatisticsModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &StatisticsModel{ctx: ctx, stats: stats, spinner: s}
}

func (m *StatisticsModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *StatisticsModel) cmdLoad() tea.Cmd {
	ctx, stats := m.ctx, m.stats
	return func() tea.Msg {
		data, err := stats.Get(ctx)
		return statisticsLoadedMsg{stats: data, err: err}
	}
}

func (m *StatisticsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statisticsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = errorText(msg.err)
			return m, nil
		}
		m.data = msg.stats
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(service.PageMenu)
		case key.Matches(msg, keys.refresh):
			if m.loading {
				return m, nil
			}
			return m, m.Init()
		}
	}
	return m, nil
}

func (m *StatisticsModel) View() string {
	var b strings.Builder
	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading...\n")
	} else if m.errMsg == "" {
		rows := []struct {
			label string
			value int64
		}{
			{"Users", m.data.Users},
			{"Educators", m.data.Educators},
			{"Community partners", m.data.CommunityPartners},
			{"Active searches", m.data.ActiveSearches},
			{"Conversations", m.data.Conversations},
			{"Messages", m.data.Messages},
			{"Institutions", m.data.InstitutionsListed},
		}
		for _, r := range rows {
			b.WriteString(fmt.Sprintf("%-20s │ %d\n", r.label, r.value))
		}
	}
	writeFeedback(&b, "", m.errMsg)

	return renderPage("STATISTICS", strings.TrimRight(b.String(), "\n"), "esc: back │ r: refresh")
}
