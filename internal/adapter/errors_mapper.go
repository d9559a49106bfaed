// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-community-share/models"
	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	sentinel, ok := statusErrors[status]
	if !ok {
		sentinel = ErrUnexpectedStatus
	}

	return &APIError{
		Status:  status,
		Message: responseMessage(resp.Body()),
		Err:     sentinel,
	}
}

// responseMessage extracts the envelope message, falling back to the body
// text for non-JSON error pages.
func responseMessage(body []byte) string {
	var env models.Envelope[json.RawMessage]
	if err := json.Unmarshal(body, &env); err == nil {
		return env.Message
	}
	return strings.TrimSpace(string(body))
}
