// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")

	// ErrTransport wraps failures where no response was received.
	ErrTransport = errors.New("network unavailable or server down")

	// ErrDecode wraps undecodable 2xx response bodies.
	ErrDecode = errors.New("malformed server response")

	ErrInvalidID = errors.New("invalid id")
)

// APIError is a non-2xx response. Message is the envelope "message" as sent
// by the server, or the raw body when it was not an envelope.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("http %d: %s", e.Status, msg)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// MessageOf returns the text a user should see for err: the server message
// for API errors, a fixed text for transport failures and err.Error()
// otherwise. It returns "" for a nil error.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return http.StatusText(apiErr.Status)
	}

	if errors.Is(err, ErrTransport) {
		return ErrTransport.Error()
	}

	return err.Error()
}

// StatusOf returns the HTTP status of an API error, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
