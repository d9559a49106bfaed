// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/utils"
	"github.com/MKhiriev/go-community-share/models"
)

// logMailer writes key links to the log instead of sending mail.
type logMailer struct {
	baseURL string
	logger  *logger.Logger
}

// NewLogMailer returns a Mailer that logs the links it would send. baseURL
// prefixes the links, e.g. "http://localhost:8080".
func NewLogMailer(baseURL string, logger *logger.Logger) Mailer {
	return &logMailer{baseURL: baseURL, logger: logger}
}

func (m *logMailer) SendResetPassword(ctx context.Context, user models.User, key string) error {
	m.log(ctx, user, "resetpassword", key)
	return nil
}

func (m *logMailer) SendConfirmEmail(ctx context.Context, user models.User, key string) error {
	m.log(ctx, user, "confirmemail", key)
	return nil
}

func (m *logMailer) log(ctx context.Context, user models.User, page, key string) {
	link := m.baseURL + "/#/" + page + "?key=" + url.QueryEscape(key)
	m.logger.Info().
		Str("func", "*logMailer.log").
		Str("trace_id", utils.GetTraceIDFromContext(ctx)).
		Int64("user_id", user.ID).
		Str("to", user.Email).
		Str("link", link).
		Msg("mail")
}
