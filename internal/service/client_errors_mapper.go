// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-community-share/internal/adapter"
	"github.com/MKhiriev/go-community-share/internal/app"
)

// ViewError is a failure of a client flow carrying the line the view shows.
// Err keeps the adapter error for errors.Is checks.
type ViewError struct {
	Message string
	Err     error
}

func (e *ViewError) Error() string {
	return e.Message
}

func (e *ViewError) Unwrap() error {
	return e.Err
}

// ViewMessage returns the line to show for err.
func ViewMessage(err error) string {
	if err == nil {
		return ""
	}

	var viewErr *ViewError
	if errors.As(err, &viewErr) {
		return viewErr.Message
	}
	return adapter.MessageOf(err)
}

// combineMessages joins a flow's base message with the specific reason, if
// there is one.
func combineMessages(base, specific string) string {
	if specific == "" {
		return base
	}
	return base + ": " + specific
}

func newViewError(base string, err error) error {
	return &ViewError{Message: combineMessages(base, serverMessage(err)), Err: err}
}

// serverMessage is the reason shown after a base message. A canceled request
// has none.
func serverMessage(err error) string {
	if errors.Is(err, context.Canceled) {
		return ""
	}
	return adapter.MessageOf(err)
}

// resetRequestMessage turns the server's 404 for an unknown email into a
// readable reason.
func resetRequestMessage(err error) string {
	msg := serverMessage(err)
	if adapter.StatusOf(err) == http.StatusNotFound && msg == app.MsgNotFound {
		return app.MsgUnknownEmailAddress
	}
	return msg
}
