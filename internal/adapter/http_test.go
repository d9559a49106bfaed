// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-community-share/internal/config"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticKey string

func (k staticKey) APIKey() string { return string(k) }

// newTestAdapter returns an adapter aimed at the test server.
func newTestAdapter(t *testing.T, serverURL string, key string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, staticKey(key), logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, env any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(env))
}

// ── ResourceClient.Get ──────────────────────────────────────────────────────

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/user/7", r.URL.Path)
		assert.Equal(t, "Bearer key-7", r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusOK, models.Envelope[models.User]{Data: models.User{ID: 7, Name: "Ada"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "key-7")
	got, err := a.Users().Get(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Ada", got.Name)
}

func TestGet_NotFoundKeepsServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusNotFound, models.Envelope[any]{Message: "Not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Institutions().Get(context.Background(), 3)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Not found", MessageOf(err))
	assert.Equal(t, http.StatusNotFound, StatusOf(err))
}

func TestGet_InvalidIDSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Searches().Get(context.Background(), 0)

	assert.ErrorIs(t, err, ErrInvalidID)
	assert.Zero(t, calls.Load())
}

func TestGet_NoAuthHeaderWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusUnauthorized, models.Envelope[any]{Message: "Authorization failed"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Conversations().Get(context.Background(), 1)

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Authorization failed", MessageOf(err))
}

// ── ResourceClient.GetMany ──────────────────────────────────────────────────

func TestGetMany_PassesQueryAndKeepsOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/search", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("searcher_user_id"))
		writeEnvelope(t, w, http.StatusOK, models.Envelope[[]models.Search]{Data: []models.Search{{ID: 9}, {ID: 2}}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "k")
	got, err := a.Searches().GetMany(context.Background(), map[string][]string{"searcher_user_id": {"5"}})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(9), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestGetMany_NoMatchesIsEmptyNotError(t *testing.T) {
	for _, body := range []string{`{"data":[]}`, `{"data":null}`, `{}`} {
		t.Run(body, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, "k")
			got, err := a.Institutions().GetMany(context.Background(), nil)

			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

// ── ResourceClient.Save ─────────────────────────────────────────────────────

func TestSave_CreatesWithPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/institution", r.URL.Path)

		var in models.Institution
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Zero(t, in.ID)

		in.ID = 11
		writeEnvelope(t, w, http.StatusOK, models.Envelope[models.Institution]{Data: in})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "k")
	got, err := a.Institutions().Save(context.Background(), models.Institution{Name: "Museum"})

	require.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, "Museum", got.Name)
}

func TestSave_UpdatesWithPutAndReturnsCanonical(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/user/4", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, models.Envelope[models.User]{
			Data: models.User{ID: 4, Name: "Trimmed", Email: "a@b.c"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "k")
	got, err := a.Users().Save(context.Background(), models.User{ID: 4, Name: " Trimmed "})

	require.NoError(t, err)
	assert.Equal(t, "Trimmed", got.Name)
	assert.Equal(t, "a@b.c", got.Email)
}

func TestSave_ValidationFailureKeepsItem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusBadRequest, models.Envelope[any]{Message: "Institution name too long"})
	}))
	defer srv.Close()

	item := models.Institution{Name: "x"}
	a := newTestAdapter(t, srv.URL, "k")
	got, err := a.Institutions().Save(context.Background(), item)

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "Institution name too long", MessageOf(err))
	assert.Equal(t, item, got)
}

// TestGetThenSave_RoundTrip verifies that saving an unchanged record sends
// back exactly what was fetched.
func TestGetThenSave_RoundTrip(t *testing.T) {
	stored := models.Search{ID: 5, SearcherUserID: 2, SearcherRole: models.RolePartner,
		SearchingForRole: models.RoleEducator, Active: true, Labels: []string{"science"}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeEnvelope(t, w, http.StatusOK, models.Envelope[models.Search]{Data: stored})
		case http.MethodPut:
			var in models.Search
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			assert.Equal(t, stored, in)
			writeEnvelope(t, w, http.StatusOK, models.Envelope[models.Search]{Data: in})
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "k")
	got, err := a.Searches().Get(context.Background(), 5)
	require.NoError(t, err)

	saved, err := a.Searches().Save(context.Background(), got)
	require.NoError(t, err)
	assert.Equal(t, stored, saved)
}

// ── Specializations ─────────────────────────────────────────────────────────

func TestUsers_GetByEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/userbyemail/ada@example.org", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, models.Envelope[models.User]{Data: models.User{ID: 1, Email: "ada@example.org"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "k")
	got, err := a.Users().GetByEmail(context.Background(), "ada@example.org")

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestSearches_Results(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/search/3/results", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, models.Envelope[[]models.Search]{Data: []models.Search{{ID: 8}}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "k")
	got, err := a.Searches().Results(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(8), got[0].ID)
}

func TestConversations_GetUnviewedForUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/conversation", r.URL.Path)
		assert.Equal(t, "12", r.URL.Query().Get("user_id_with_unviewed_messages"))
		writeEnvelope(t, w, http.StatusOK, models.Envelope[[]models.Conversation]{Data: []models.Conversation{{ID: 1}}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "k")
	got, err := a.Conversations().GetUnviewedForUser(context.Background(), 12)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestMessages_MarkViewed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/message/6", r.URL.Path)

		var in models.Message
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.True(t, in.Viewed)
		writeEnvelope(t, w, http.StatusOK, models.Envelope[models.Message]{Data: in})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "k")
	got, err := a.Messages().MarkViewed(context.Background(), models.Message{ID: 6, Content: "hi"})

	require.NoError(t, err)
	assert.True(t, got.Viewed)
}

// ── Auth ────────────────────────────────────────────────────────────────────

func TestAuth_SignupReturnsUserAndKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/usersignup", r.URL.Path)
		var in models.SignupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "Ada", in.Name)
		writeEnvelope(t, w, http.StatusOK, models.Envelope[models.User]{Data: models.User{ID: 1, Name: in.Name}, APIKey: "new-key"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.Auth().Signup(context.Background(), models.SignupRequest{Name: "Ada", Email: "a@b.c", Password: "password1"})

	require.NoError(t, err)
	assert.Equal(t, "new-key", got.APIKey)
	assert.Equal(t, int64(1), got.User.ID)
}

func TestAuth_SignupConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusConflict, models.Envelope[any]{Message: "Email already exists"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Auth().Signup(context.Background(), models.SignupRequest{})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Email already exists", MessageOf(err))
}

func TestAuth_RequestAPIKeyWithoutKeyInResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, models.Envelope[models.User]{Data: models.User{ID: 1}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Auth().RequestAPIKey(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"})

	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestAuth_RequestResetPassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/requestresetpassword", r.URL.Path)
		var in models.RequestResetPasswordRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in.Email == "known@example.org" {
			writeEnvelope(t, w, http.StatusOK, models.Envelope[any]{})
			return
		}
		writeEnvelope(t, w, http.StatusNotFound, models.Envelope[any]{Message: "Not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	require.NoError(t, a.Auth().RequestResetPassword(context.Background(), "known@example.org"))

	err := a.Auth().RequestResetPassword(context.Background(), "who@example.org")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Not found", MessageOf(err))
}

func TestAuth_ConfirmEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/confirmemail", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, models.Envelope[models.User]{Data: models.User{ID: 2, EmailConfirmed: true}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.Auth().ConfirmEmail(context.Background(), "key")

	require.NoError(t, err)
	assert.True(t, got.EmailConfirmed)
}

// ── Statistics / Version ────────────────────────────────────────────────────

func TestStatistics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/statistics", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, models.Envelope[models.Statistics]{Data: models.Statistics{Users: 3}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.Statistics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Users)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, models.Envelope[models.BuildInfoResponse]{Data: models.BuildInfoResponse{Version: "1.0.0"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", got.Version)
}

// ── Error mapping ───────────────────────────────────────────────────────────

func TestErrorMapping_PlainTextBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream down\n")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Users().Get(context.Background(), 1)

	assert.ErrorIs(t, err, ErrBadGateway)
	assert.Equal(t, "upstream down", MessageOf(err))
}

func TestErrorMapping_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Users().Get(context.Background(), 1)

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	assert.Equal(t, http.StatusText(http.StatusTeapot), MessageOf(err))
}

func TestErrorMapping_MalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "<html>")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Users().Get(context.Background(), 1)

	assert.ErrorIs(t, err, ErrDecode)
}

func TestErrorMapping_Transport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url, "")
	_, err := a.Users().Get(context.Background(), 1)

	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, ErrTransport.Error(), MessageOf(err))
}

func TestErrorMapping_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Users().Get(ctx, 1)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, ErrTransport))
}

func TestMessageOf(t *testing.T) {
	assert.Empty(t, MessageOf(nil))
	assert.Equal(t, "boom", MessageOf(errors.New("boom")))
	assert.Equal(t, "Forbidden", MessageOf(&APIError{Status: http.StatusForbidden, Err: ErrForbidden}))
	assert.Equal(t, "http 403: Forbidden", (&APIError{Status: http.StatusForbidden}).Error())
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "localhost:8080", want: "http://localhost:8080"},
		{input: " https://cs.example.org/ ", want: "https://cs.example.org"},
		{input: "", wantErr: true},
		{input: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, staticKey(""), logger.Nop())
	assert.Error(t, err)
}
