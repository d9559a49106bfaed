// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-community-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a failed statement is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists accounts and their institution associations.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	// UpdateUser writes the profile columns and replaces the institution
	// associations. Institutions are matched by name and created on demand.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	TouchLastActive(ctx context.Context, userID int64, at time.Time) error
}

type InstitutionRepository interface {
	CreateInstitution(ctx context.Context, institution models.Institution) (models.Institution, error)
	UpdateInstitution(ctx context.Context, institution models.Institution) (models.Institution, error)
	GetInstitutionByID(ctx context.Context, id int64) (models.Institution, error)
	ListInstitutions(ctx context.Context, name string) ([]models.Institution, error)
}

// SearchFilter narrows ListSearches. Zero fields are ignored.
type SearchFilter struct {
	SearcherUserID int64
	SearcherRole   string
	ActiveOnly     bool
	ExcludeUserID  int64
}

type SearchRepository interface {
	CreateSearch(ctx context.Context, search models.Search) (models.Search, error)
	UpdateSearch(ctx context.Context, search models.Search) (models.Search, error)
	GetSearchByID(ctx context.Context, id int64) (models.Search, error)
	ListSearches(ctx context.Context, filter SearchFilter) ([]models.Search, error)
}

// ConversationFilter narrows ListConversations. Zero fields are ignored.
type ConversationFilter struct {
	// ParticipantID keeps conversations the user takes part in.
	ParticipantID int64
	// UnviewedFor keeps conversations holding messages the user has not
	// viewed yet and did not send.
	UnviewedFor int64
}

type ConversationRepository interface {
	CreateConversation(ctx context.Context, conversation models.Conversation) (models.Conversation, error)
	UpdateConversation(ctx context.Context, conversation models.Conversation) (models.Conversation, error)
	GetConversationByID(ctx context.Context, id int64) (models.Conversation, error)
	ListConversations(ctx context.Context, filter ConversationFilter) ([]models.Conversation, error)
}

type MessageRepository interface {
	CreateMessage(ctx context.Context, message models.Message) (models.Message, error)
	GetMessageByID(ctx context.Context, id int64) (models.Message, error)
	SetViewed(ctx context.Context, id int64, viewed bool) (models.Message, error)
	ListMessagesByConversation(ctx context.Context, conversationIDs ...int64) ([]models.Message, error)
}

// SecretRepository stores hashed single-use keys.
type SecretRepository interface {
	CreateSecret(ctx context.Context, secret models.Secret) (models.Secret, error)
	// FindActiveSecret returns the unused, unexpired secret with keyHash.
	FindActiveSecret(ctx context.Context, keyHash, purpose string, now time.Time) (models.Secret, error)
	// MarkSecretUsed flips the used flag once; a second call returns
	// ErrSecretAlreadyUsed.
	MarkSecretUsed(ctx context.Context, id int64) error
	DeleteExpiredSecrets(ctx context.Context, now time.Time) (int64, error)
}

type StatisticsRepository interface {
	GetStatistics(ctx context.Context) (models.Statistics, error)
}
