// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-community-share/internal/adapter"
	"github.com/MKhiriev/go-community-share/internal/config"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/session"
	"github.com/MKhiriev/go-community-share/internal/store"
)

// ClientServices are the flows the terminal UI drives.
type ClientServices struct {
	Session *session.Session

	AuthService         ClientAuthService
	SignupService       SignupService
	UserService         ClientUserService
	SearchService       ClientSearchService
	ConversationService ClientConversationService
	StatisticsService   ClientStatisticsService
	RoutingService      RoutingService
}

// NewClientServices wires the client flows. sessions may be nil to keep the
// session in memory only.
func NewClientServices(serverAdapter adapter.ServerAdapter, s *session.Session, sessions store.SessionRepository, workers config.ClientWorkers, logger *logger.Logger) *ClientServices {
	keeper := &sessionKeeper{session: s, sessions: sessions, now: time.Now, logger: logger}

	users := newClientUserService(serverAdapter, keeper, logger)
	searches := newClientSearchService(serverAdapter, logger)

	return &ClientServices{
		Session:             s,
		AuthService:         &clientAuthService{adapter: serverAdapter, keeper: keeper, logger: logger},
		SignupService:       newSignupService(serverAdapter, keeper, users, searches, logger),
		UserService:         users,
		SearchService:       searches,
		ConversationService: newClientConversationService(serverAdapter, s, users, workers, logger),
		StatisticsService:   newClientStatisticsService(serverAdapter),
		RoutingService:      newRoutingService(s),
	}
}
