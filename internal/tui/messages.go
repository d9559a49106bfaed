// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/MKhiriev/go-community-share/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

func navigate(page string) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page} }
}

func navigateWith(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

// Payloads.
type (
	// loginTarget tells the login page where to continue after sign in.
	loginTarget struct {
		next string
	}

	openConversation struct {
		id int64
	}

	// openResults shows the matches of one search. link is the shareable
	// path of the results page.
	openResults struct {
		searchID int64
		link     string
	}

	notice struct {
		text string
	}
)

// Results of asynchronous commands.
type (
	authResultMsg struct {
		user models.User
		err  error
	}

	signupResultMsg struct {
		result service.SignupResult
		err    error
	}

	doneMsg struct {
		err error
	}

	loggedOutMsg struct {
		err error
	}

	statisticsLoadedMsg struct {
		stats models.Statistics
		err   error
	}

	serverVersionMsg struct {
		version models.BuildInfoResponse
		err     error
	}

	inboxLoadedMsg struct {
		conversations []models.Conversation
		err           error
	}

	resultsLoadedMsg struct {
		search  models.Search
		matches []models.Search
		err     error
	}

	conversationStartedMsg struct {
		conversation models.Conversation
		err          error
	}

	// Feed messages carry their feed so that a page ignores messages of
	// a feed it already left.
	feedStartedMsg struct {
		feed service.ConversationFeed
		err  error
	}

	feedUpdateMsg struct {
		feed   service.ConversationFeed
		update service.FeedUpdate
		ok     bool
	}

	messageSentMsg struct {
		err error
	}

	settingsSavedMsg struct {
		user models.User
		err  error
	}

	copiedMsg struct {
		err error
	}
)
