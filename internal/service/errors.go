// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Client flow errors.
var (
	ErrNotAuthenticated = errors.New("no signed-in user")
	ErrNotParticipant   = errors.New("viewer is not a participant of the conversation")
	ErrEmptyMessage     = errors.New("message content is empty")
	ErrFeedStarted      = errors.New("conversation feed already started")
	ErrFeedStopped      = errors.New("conversation feed stopped")

	// ErrSignupIncomplete is returned when the account was created and the
	// user is signed in, but the role settings could not be saved.
	ErrSignupIncomplete = errors.New("account created but settings were not saved")
)

// Server errors.
var (
	ErrInvalidDataProvided     = errors.New("invalid data provided")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")
	ErrInvalidKey              = errors.New("invalid or expired key")
	ErrForbidden               = errors.New("forbidden")
	ErrIDMismatch              = errors.New("body id does not match path id")
	ErrNoRequester             = errors.New("request has no authenticated user")
)
