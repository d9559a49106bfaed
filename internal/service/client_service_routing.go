// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-community-share/internal/session"

// Pages of the terminal client.
const (
	PageMenu                 = "menu"
	PageLogin                = "login"
	PageSignup               = "signup"
	PageRequestResetPassword = "requestresetpassword"
	PageResetPassword        = "resetpassword"
	PageConfirmEmail         = "confirmemail"
	PageStatistics           = "statistics"
	PageInbox                = "inbox"
	PageConversation         = "conversation"
	PageResults              = "results"
	PageSettings             = "settings"
	PageVersion              = "version"
)

// loginTargets are the pages a login may continue to.
var loginTargets = map[string]struct{}{
	PageInbox:        {},
	PageResults:      {},
	PageSettings:     {},
	PageStatistics:   {},
	PageConfirmEmail: {},
	PageVersion:      {},
}

type routingService struct {
	session *session.Session
}

func newRoutingService(s *session.Session) RoutingService {
	return &routingService{session: s}
}

func (r *routingService) LandingPage() string {
	if r.session.IsAuthenticated() {
		return PageInbox
	}
	return PageMenu
}

// AfterLogin honours a requested next page when it is one a signed-in user
// can open, and falls back to the inbox.
func (r *routingService) AfterLogin(next string) string {
	if _, ok := loginTargets[next]; ok {
		return next
	}
	return PageInbox
}
