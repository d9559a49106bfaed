// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the server
// handlers and the client flows. The server writes the Msg* API strings into
// the "message" field of its envelopes; the client compares against some of
// them and builds its own view strings from the rest.
package app

// API messages written by the server.
const (
	// MsgAuthorizationFailed is returned when a request needs a valid API key
	// and has none.
	MsgAuthorizationFailed = "Authorization failed"

	MsgForbidden  = "Forbidden"
	MsgNotFound   = "Not found"
	MsgBadRequest = "Bad request"

	// MsgEmailAlreadyExists is returned by signup for a registered email.
	MsgEmailAlreadyExists = "Email already exists"

	// MsgInvalidEmailOrPassword is returned by requestapikey when the
	// credentials do not match.
	MsgInvalidEmailOrPassword = "Invalid email or password"

	// MsgInvalidOrExpiredKey is returned when a reset or confirmation key is
	// unknown, expired or already used.
	MsgInvalidOrExpiredKey = "Invalid or expired key"

	MsgInstitutionAlreadyExists = "Institution already exists"
	MsgTooManyRequests          = "Too many requests"
	MsgInternalServerError      = "Internal server error"

	// Validation failures.
	MsgNameRequired       = "Name is required"
	MsgInvalidEmail       = "Invalid email address"
	MsgPasswordTooShort   = "Password must be at least 8 characters"
	MsgInvalidSearchRole  = "Search roles must be educator and partner"
	MsgInvalidName        = "Institution name must be 1 to 50 characters"
	MsgEmptyMessage       = "Message content is required"
	MsgInvalidParticipant = "Conversation needs two different participants"
)

// View messages shown by the client.
const (
	MsgFailedToLoadConversation  = "Failed to load conversation"
	MsgFailedToSaveConversation  = "Failed to save conversation"
	MsgFailedToSaveMessage       = "Failed to save message"
	MsgFailedToLoadConversations = "Failed to load conversations"
	MsgAuthenticationFailed      = "Authentication failed"
	MsgFailedToUpdateSettings    = "Failed to update settings"
	MsgFailedToFetchStatistics   = "Failed to fetch statistics"
	MsgFailedToResetPassword     = "Failed to reset password"
	MsgUnknownEmailAddress       = "Unknown email address"
	MsgFailedToConfirmEmail      = "Failed to confirm email"
	MsgFailedToSignUp            = "Failed to sign up"
	MsgFailedToSaveSearch        = "Failed to save search"
	MsgFailedToLoadResults       = "Failed to load search results"
	MsgCouldNotFindUser          = "Could not find user with id=%d"
	MsgSettingsUpdated           = "Successfully updated settings."
)
