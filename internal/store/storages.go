// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-community-share/internal/config"
	"github.com/MKhiriev/go-community-share/internal/logger"
)

// Storages groups the server repositories around one PostgreSQL pool.
type Storages struct {
	db *DB

	UserRepository         UserRepository
	InstitutionRepository  InstitutionRepository
	SearchRepository       SearchRepository
	ConversationRepository ConversationRepository
	MessageRepository      MessageRepository
	SecretRepository       SecretRepository
	StatisticsRepository   StatisticsRepository
}

// NewStorages connects to PostgreSQL, applies migrations and builds every
// repository.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.MigrateServer(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		db:                     db,
		UserRepository:         NewUserRepository(db, logger),
		InstitutionRepository:  NewInstitutionRepository(db, logger),
		SearchRepository:       NewSearchRepository(db, logger),
		ConversationRepository: NewConversationRepository(db, logger),
		MessageRepository:      NewMessageRepository(db, logger),
		SecretRepository:       NewSecretRepository(db, logger),
		StatisticsRepository:   NewStatisticsRepository(db, logger),
	}
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
