// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-community-share/models"
)

// AuthService issues and checks API keys and the single-use keys of the
// password reset and email confirmation flows.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResult, error)
	Authenticate(ctx context.Context, creds models.Credentials) (models.AuthResult, error)
	RequestResetPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) (models.AuthResult, error)
	ConfirmEmail(ctx context.Context, key string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ResourceService serves one REST resource on behalf of the requester whose
// id the auth middleware put in ctx.
type ResourceService[T models.Item] interface {
	Get(ctx context.Context, id int64) (T, error)
	List(ctx context.Context, query url.Values) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	// Update applies the writable fields of item to the record with id.
	Update(ctx context.Context, id int64, item T) (T, error)
}

type UserService interface {
	ResourceService[models.User]
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

type InstitutionService interface {
	ResourceService[models.Institution]
}

type SearchService interface {
	ResourceService[models.Search]
	// Results lists the active searches matching the search with id.
	Results(ctx context.Context, id int64) ([]models.Search, error)
}

type ConversationService interface {
	ResourceService[models.Conversation]
}

type MessageService interface {
	ResourceService[models.Message]
}

type StatisticsService interface {
	GetStatistics(ctx context.Context) (models.Statistics, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.BuildInfoResponse
}

// Mailer delivers single-use keys to their owners.
type Mailer interface {
	SendResetPassword(ctx context.Context, user models.User, key string) error
	SendConfirmEmail(ctx context.Context, user models.User, key string) error
}

// SecretsCleaner purges expired single-use keys.
type SecretsCleaner interface {
	DeleteExpiredSecrets(ctx context.Context) (int64, error)
}
