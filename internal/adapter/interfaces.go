// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's transport to the CommunityShare REST API.
//
// [ResourceClient] is a generic CRUD proxy keyed by a
// [models.ResourceDescriptor]; every domain type is a thin specialization
// adding only its own helper calls. [AuthClient] covers the endpoints that
// issue API keys. [ServerAdapter] bundles them for the service layer.
//
// Non-2xx responses become [*APIError] values that wrap the sentinels in
// errors.go and carry the server message verbatim (see [MessageOf]).
package adapter

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-community-share/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// APIKeySource supplies the API key attached to authenticated requests. It
// is read on every request, so signing in or out takes effect immediately.
type APIKeySource interface {
	APIKey() string
}

// ResourceClient is the generic get / get many / save proxy for one resource.
type ResourceClient[T models.Item] interface {
	// Get fetches the record with id.
	Get(ctx context.Context, id int64) (T, error)

	// GetMany fetches the records matching query, in server order. No match
	// yields an empty slice and a nil error.
	GetMany(ctx context.Context, query url.Values) ([]T, error)

	// Save creates item when its id is zero and updates it otherwise. The
	// returned value is the server's canonical representation.
	Save(ctx context.Context, item T) (T, error)
}

// UsersClient is the user resource plus lookup by email.
type UsersClient interface {
	ResourceClient[models.User]
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

// InstitutionsClient is the plain institution resource.
type InstitutionsClient interface {
	ResourceClient[models.Institution]
}

// SearchesClient is the search resource plus its matching results.
type SearchesClient interface {
	ResourceClient[models.Search]
	Results(ctx context.Context, searchID int64) ([]models.Search, error)
}

// ConversationsClient is the conversation resource plus the inbox query.
type ConversationsClient interface {
	ResourceClient[models.Conversation]
	GetUnviewedForUser(ctx context.Context, userID int64) ([]models.Conversation, error)
}

// MessagesClient is the message resource plus the viewed flag update.
type MessagesClient interface {
	ResourceClient[models.Message]
	MarkViewed(ctx context.Context, message models.Message) (models.Message, error)
}

// AuthClient covers the endpoints that do not follow the resource pattern.
type AuthClient interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResult, error)
	RequestAPIKey(ctx context.Context, creds models.Credentials) (models.AuthResult, error)
	RequestResetPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, key, password string) (models.AuthResult, error)
	ConfirmEmail(ctx context.Context, key string) (models.User, error)
}

// ServerAdapter bundles every client of the API.
type ServerAdapter interface {
	Users() UsersClient
	Institutions() InstitutionsClient
	Searches() SearchesClient
	Conversations() ConversationsClient
	Messages() MessagesClient
	Auth() AuthClient

	Statistics(ctx context.Context) (models.Statistics, error)
	Version(ctx context.Context) (models.BuildInfoResponse, error)
}
