// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SignupRequest is the body of POST /api/usersignup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials is the body of POST /api/requestapikey.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ResetPasswordRequest is the body of POST /api/resetpassword.
type ResetPasswordRequest struct {
	Key      string `json:"key"`
	Password string `json:"password"`
}

// RequestResetPasswordRequest is the body of POST /api/requestresetpassword.
type RequestResetPasswordRequest struct {
	Email string `json:"email"`
}

// ConfirmEmailRequest is the body of POST /api/confirmemail.
type ConfirmEmailRequest struct {
	Key string `json:"key"`
}

// AuthResult is what a successful signup or authentication yields.
type AuthResult struct {
	User   User
	APIKey string
}

// Secret purposes.
const (
	SecretResetPassword = "reset_password"
	SecretConfirmEmail  = "confirm_email"
)

// Secret is a single-use key issued for a password reset or an email
// confirmation. Only KeyHash is persisted.
type Secret struct {
	ID        int64
	UserID    int64
	Purpose   string
	KeyHash   string
	ExpiresAt time.Time
	Used      bool
}

// StoredSession is the client-side persisted copy of the session.
type StoredSession struct {
	User    User
	APIKey  string
	SavedAt time.Time
}
