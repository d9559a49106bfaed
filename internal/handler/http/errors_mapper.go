// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-community-share/internal/app"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/MKhiriev/go-community-share/internal/store"
	"github.com/MKhiriev/go-community-share/internal/utils"
	"github.com/MKhiriev/go-community-share/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	ErrInvalidID:                   {http.StatusBadRequest, app.MsgBadRequest},
	ErrInvalidJSON:                 {http.StatusBadRequest, app.MsgBadRequest},
	service.ErrInvalidDataProvided: {http.StatusBadRequest, app.MsgBadRequest},
	service.ErrIDMismatch:          {http.StatusBadRequest, app.MsgBadRequest},
	service.ErrInvalidKey:          {http.StatusBadRequest, app.MsgInvalidOrExpiredKey},

	service.ErrNoRequester:             {http.StatusUnauthorized, app.MsgAuthorizationFailed},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgAuthorizationFailed},
	service.ErrInvalidCredentials:      {http.StatusUnauthorized, app.MsgInvalidEmailOrPassword},

	service.ErrForbidden: {http.StatusForbidden, app.MsgForbidden},

	store.ErrNotFound:                 {http.StatusNotFound, app.MsgNotFound},
	store.ErrEmailAlreadyExists:       {http.StatusConflict, app.MsgEmailAlreadyExists},
	store.ErrInstitutionAlreadyExists: {http.StatusConflict, app.MsgInstitutionAlreadyExists},
	store.ErrInvalidReference:         {http.StatusBadRequest, app.MsgBadRequest},
}

// responseFromError picks the status and client message for err. Validation
// errors carry their own message.
func responseFromError(err error) errorResponse {
	var validationErr *validators.Error
	if errors.As(err, &validationErr) {
		return errorResponse{http.StatusBadRequest, validationErr.Message}
	}

	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and writes its message envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	event := log.Info()
	if resp.status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", resp.status).Msg("request failed")

	utils.WriteMessage(w, resp.status, resp.message)
}
