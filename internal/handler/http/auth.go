// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/utils"
	"github.com/MKhiriev/go-community-share/models"
)

// signup creates an account: POST /api/usersignup.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.services.AuthService.Signup(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", result.User.ID).Msg("user signed up")
	writeAuthResult(w, http.StatusCreated, result)
}

// requestAPIKey exchanges email and password for an API key:
// POST /api/requestapikey.
func (h *Handler) requestAPIKey(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if !decodeBody(w, r, &creds) {
		return
	}

	result, err := h.services.AuthService.Authenticate(r.Context(), creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeAuthResult(w, http.StatusOK, result)
}

// requestResetPassword mails a reset key: POST /api/requestresetpassword.
func (h *Handler) requestResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.RequestResetPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.services.AuthService.RequestResetPassword(r.Context(), req.Email); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData[any](w, http.StatusOK, nil, "")
}

// resetPassword redeems a reset key: POST /api/resetpassword.
func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.services.AuthService.ResetPassword(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeAuthResult(w, http.StatusOK, result)
}

// confirmEmail redeems a confirmation key: POST /api/confirmemail.
func (h *Handler) confirmEmail(w http.ResponseWriter, r *http.Request) {
	var req models.ConfirmEmailRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.services.AuthService.ConfirmEmail(r.Context(), req.Key)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteData(w, http.StatusOK, user, "")
}

// writeAuthResult returns the key in the envelope and in the
// Authorization header.
func writeAuthResult(w http.ResponseWriter, status int, result models.AuthResult) {
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", result.APIKey))
	utils.WriteData(w, status, result.User, result.APIKey)
}

// decodeBody reads the JSON body into dst and answers 400 when it cannot.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.ReadJSON(r, dst); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return false
	}
	return true
}
