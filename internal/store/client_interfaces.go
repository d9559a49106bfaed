// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-community-share/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository keeps the signed-in user and API key across client
// restarts. It holds at most one session.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.StoredSession) error
	LoadSession(ctx context.Context) (models.StoredSession, error)
	DeleteSession(ctx context.Context) error
}
