// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-community-share/internal/config"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/MKhiriev/go-community-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "valid-key"

// newTestServices returns services whose auth accepts testAPIKey as user 1.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
				if tokenString != testAPIKey {
					return models.Token{}, service.ErrTokenIsExpiredOrInvalid
				}
				return models.Token{UserID: 1}, nil
			},
		},
		UserService:         &mockUserService{},
		InstitutionService:  &mockResourceService[models.Institution]{},
		SearchService:       &mockSearchService{},
		ConversationService: &mockResourceService[models.Conversation]{},
		MessageService:      &mockResourceService[models.Message]{},
		StatisticsService:   &mockStatisticsService{},
		AppInfoService:      &mockAppInfoService{version: "test-version"},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, config.ServerHTTP{AuthRateLimit: 1000, AuthRateBurst: 1000}, logger.Nop())
}

// serve sends one request through the full router. A non-empty key is sent
// as a bearer token.
func serve(t *testing.T, h *Handler, method, path, body, key string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if key != "" {
		req.Header.Set("Authorization", "Bearer "+key)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope[T any](t *testing.T, rec *httptest.ResponseRecorder) models.Envelope[T] {
	t.Helper()
	var env models.Envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func toJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	h := NewHandler(services, config.ServerHTTP{}, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, services, h.services)
	assert.NotNil(t, h.limiters)
	assert.NotNil(t, h.metrics)
}

func TestNewHandler_IndependentMetrics(t *testing.T) {
	h1 := NewHandler(&service.Services{}, config.ServerHTTP{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, config.ServerHTTP{}, logger.Nop())

	assert.NotSame(t, h1.metrics.registry, h2.metrics.registry)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

// expectedRoutes lists routes that exist. Protected ones answer 401 without
// a key, which still proves registration.
var expectedRoutes = []struct {
	method string
	path   string
	status int
}{
	{http.MethodGet, "/api/version", http.StatusOK},
	{http.MethodGet, "/api/statistics", http.StatusOK},
	{http.MethodGet, "/metrics", http.StatusOK},
	{http.MethodPost, "/api/usersignup", http.StatusBadRequest},
	{http.MethodPost, "/api/requestapikey", http.StatusBadRequest},
	{http.MethodPost, "/api/requestresetpassword", http.StatusBadRequest},
	{http.MethodPost, "/api/resetpassword", http.StatusBadRequest},
	{http.MethodPost, "/api/confirmemail", http.StatusBadRequest},
	{http.MethodGet, "/api/userbyemail/ann@example.com", http.StatusUnauthorized},
	{http.MethodGet, "/api/search/1/results", http.StatusUnauthorized},
	{http.MethodGet, "/api/user", http.StatusUnauthorized},
	{http.MethodGet, "/api/user/1", http.StatusUnauthorized},
	{http.MethodPost, "/api/institution", http.StatusUnauthorized},
	{http.MethodPut, "/api/search/1", http.StatusUnauthorized},
	{http.MethodPatch, "/api/conversation/1", http.StatusUnauthorized},
	{http.MethodGet, "/api/message", http.StatusUnauthorized},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	h := newTestHandler(newTestServices())

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(t, h, tc.method, tc.path, "", "")
			assert.Equal(t, tc.status, rec.Code, rec.Body.String())
		})
	}
}

func TestInit_UnknownRoutesAnswerNotFound(t *testing.T) {
	h := newTestHandler(newTestServices())

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/nonexistent"},
		{http.MethodDelete, "/api/version"},
		{http.MethodDelete, "/api/user/1"},
		{http.MethodGet, "/api/usersignup"},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(t, h, tc.method, tc.path, "", testAPIKey)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, "Not found", decodeEnvelope[any](t, rec).Message)
		})
	}
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	h := newTestHandler(newTestServices())

	rec := serve(t, h, http.MethodGet, "/api/version", "", "")

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

// ─────────────────────────────────────────────
// version and statistics
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(newTestServices())

	rec := serve(t, h, http.MethodGet, "/api/version", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	env := decodeEnvelope[models.BuildInfoResponse](t, rec)
	assert.Equal(t, "test-version", env.Data.Version)
}

func TestGetStatistics(t *testing.T) {
	services := newTestServices()
	services.StatisticsService = &mockStatisticsService{stats: models.Statistics{Users: 3, Messages: 7}}
	h := newTestHandler(services)

	rec := serve(t, h, http.MethodGet, "/api/statistics", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope[models.Statistics](t, rec)
	assert.Equal(t, int64(3), env.Data.Users)
	assert.Equal(t, int64(7), env.Data.Messages)
}

func TestGetStatistics_Failure(t *testing.T) {
	services := newTestServices()
	services.StatisticsService = &mockStatisticsService{err: errors.New("db down")}
	h := newTestHandler(services)

	rec := serve(t, h, http.MethodGet, "/api/statistics", "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", decodeEnvelope[any](t, rec).Message)
}
