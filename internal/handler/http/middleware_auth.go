// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-community-share/internal/app"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/utils"
)

// auth requires a valid API key in "Authorization: Bearer <key>" and puts
// the key's user id in the request context for the services. Every
// rejection is a 401 "Authorization failed".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Info().Err(err).Msg("request without api key")
			utils.WriteMessage(w, http.StatusUnauthorized, app.MsgAuthorizationFailed)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("api key rejected")
			utils.WriteMessage(w, http.StatusUnauthorized, app.MsgAuthorizationFailed)
			return
		}

		ctx = utils.WithUserID(ctx, token.UserID)
		ctx = log.WithStr("user_id", formatID(token.UserID)).ContextWith(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
