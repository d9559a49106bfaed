// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-community-share/models"
)

// ClientAuthService signs the user in and out. Every successful sign-in
// fills the Session and persists it locally.
type ClientAuthService interface {
	// Authenticate exchanges email and password for an API key.
	Authenticate(ctx context.Context, email, password string) (models.User, error)

	// RequestResetPassword asks the server to mail a reset key to email.
	RequestResetPassword(ctx context.Context, email string) error

	// ResetPassword sets a new password with a mailed key and signs in.
	ResetPassword(ctx context.Context, key, password string) (models.User, error)

	// ConfirmEmail redeems a confirmation key.
	ConfirmEmail(ctx context.Context, key string) (models.User, error)

	// Clean signs out: it clears the Session and forgets the stored key.
	Clean(ctx context.Context) error

	// RestoreSession signs the stored user back in when the stored API key
	// has not expired yet.
	RestoreSession(ctx context.Context) (models.User, bool)
}

// SignupService creates an account and saves the settings of its role.
type SignupService interface {
	SignUpCommunityPartner(ctx context.Context, req models.SignupRequest, settings PartnerSettings) (SignupResult, error)
	SignUpEducator(ctx context.Context, req models.SignupRequest, settings EducatorSettings) (SignupResult, error)
}

type ClientUserService interface {
	Get(ctx context.Context, id int64) (models.User, error)
	// SaveSettings saves edited, a modified clone of the session user, and
	// refreshes the session with the server's copy.
	SaveSettings(ctx context.Context, edited models.User) (models.User, error)
}

type ClientSearchService interface {
	// ForPartner returns the search of a community partner. The second
	// result is false when the partner has none.
	ForPartner(ctx context.Context, userID int64) (models.Search, bool, error)
	Results(ctx context.Context, searchID int64) ([]models.Search, error)
	Save(ctx context.Context, search models.Search) (models.Search, error)
}

type ClientConversationService interface {
	Get(ctx context.Context, id int64) (models.Conversation, error)
	Unviewed(ctx context.Context, userID int64) ([]models.Conversation, error)
	// MarkViewed flags every message viewerID received in conversation as
	// viewed and returns the updated conversation.
	MarkViewed(ctx context.Context, conversation models.Conversation, viewerID int64) (models.Conversation, error)
	// Start opens a conversation with otherUserID and sends its first
	// message.
	Start(ctx context.Context, otherUserID, searchID int64, title, firstMessage string) (models.Conversation, error)
	// Feed builds the polling feed of one conversation.
	Feed(conversationID int64) ConversationFeed
}

type ClientStatisticsService interface {
	Get(ctx context.Context) (models.Statistics, error)
	ServerVersion(ctx context.Context) (models.BuildInfoResponse, error)
}

// RoutingService picks the page a user lands on.
type RoutingService interface {
	LandingPage() string
	AfterLogin(next string) string
}

// ConversationFeed keeps one open conversation fresh.
type ConversationFeed interface {
	// Start fetches the conversation, marks the viewer's unread messages
	// viewed and starts polling.
	Start(ctx context.Context) error
	// Stop cancels polling and waits for it to finish. It is safe to call
	// before Start and more than once.
	Stop()
	// Send saves a message and appends the saved copy to the feed.
	Send(ctx context.Context, content string) (models.Message, error)
	// Updates delivers the latest snapshot after every change.
	Updates() <-chan FeedUpdate
	Snapshot() FeedUpdate
}

// FeedUpdate is one state of a [ConversationFeed]. Err is set when the last
// fetch failed; Conversation then still holds the previous state.
type FeedUpdate struct {
	Conversation models.Conversation
	OtherUser    models.User
	Err          error
}
