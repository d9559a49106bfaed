// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds who is signed in to the client.
//
// A [Session] is created once by the application and passed to every
// component that needs the active user or the API key. It is safe for
// concurrent readers; the auth flows are its only writers.
package session

import (
	"sync"

	"github.com/MKhiriev/go-community-share/models"
)

// Session is the active user and the API key issued for them.
type Session struct {
	mu sync.RWMutex

	activeUser *models.User
	apiKey     string
}

// New returns an empty, signed-out session.
func New() *Session {
	return &Session{}
}

// SetActiveUser signs user in with apiKey, replacing any previous user.
func (s *Session) SetActiveUser(user models.User, apiKey string) {
	u := user.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeUser = &u
	s.apiKey = apiKey
}

// UpdateActiveUser replaces the stored user fields and keeps the key. It
// reports false, changing nothing, when nobody is signed in or user is a
// different account.
func (s *Session) UpdateActiveUser(user models.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeUser == nil || s.activeUser.ID != user.ID {
		return false
	}
	u := user.Clone()
	s.activeUser = &u
	return true
}

// Clear signs out. Calling it on an empty session is a no-op.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeUser = nil
	s.apiKey = ""
}

// ActiveUser returns a copy of the signed-in user.
func (s *Session) ActiveUser() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.activeUser == nil {
		return models.User{}, false
	}
	return s.activeUser.Clone(), true
}

// ActiveUserID returns 0 when signed out.
func (s *Session) ActiveUserID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.activeUser == nil {
		return 0
	}
	return s.activeUser.ID
}

// APIKey implements adapter.APIKeySource.
func (s *Session) APIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apiKey
}

// IsAuthenticated reports whether a user and a key are both present.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeUser != nil && s.apiKey != ""
}
