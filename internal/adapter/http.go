// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-community-share/internal/config"
	"github.com/MKhiriev/go-community-share/internal/logger"
	"github.com/MKhiriev/go-community-share/internal/utils"
	"github.com/MKhiriev/go-community-share/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	transport *transport

	users         *usersClient
	institutions  *institutionsClient
	searches      *searchesClient
	conversations *conversationsClient
	messages      *messagesClient
	auth          *authClient
}

// NewHTTPServerAdapter builds the REST implementation of [ServerAdapter]
// against adapterCfg.HTTPAddress. keys is consulted on every authenticated
// request.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, keys APIKeySource, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	t := &transport{client: client, keys: keys, logger: logger}

	return &httpServerAdapter{
		transport:     t,
		users:         &usersClient{resourceClient: newResourceClient[models.User](t, models.UserResource)},
		institutions:  &institutionsClient{resourceClient: newResourceClient[models.Institution](t, models.InstitutionResource)},
		searches:      &searchesClient{resourceClient: newResourceClient[models.Search](t, models.SearchResource)},
		conversations: &conversationsClient{resourceClient: newResourceClient[models.Conversation](t, models.ConversationResource)},
		messages:      &messagesClient{resourceClient: newResourceClient[models.Message](t, models.MessageResource)},
		auth:          &authClient{transport: t},
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Users() UsersClient                 { return h.users }
func (h *httpServerAdapter) Institutions() InstitutionsClient   { return h.institutions }
func (h *httpServerAdapter) Searches() SearchesClient           { return h.searches }
func (h *httpServerAdapter) Conversations() ConversationsClient { return h.conversations }
func (h *httpServerAdapter) Messages() MessagesClient           { return h.messages }
func (h *httpServerAdapter) Auth() AuthClient                   { return h.auth }

// Statistics implements [ServerAdapter]: GET /api/statistics.
func (h *httpServerAdapter) Statistics(ctx context.Context) (models.Statistics, error) {
	env, err := call[models.Statistics](ctx, h.transport, resty.MethodGet, "/api/statistics", nil, nil)
	return env.Data, err
}

// Version implements [ServerAdapter]: GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (models.BuildInfoResponse, error) {
	env, err := call[models.BuildInfoResponse](ctx, h.transport, resty.MethodGet, "/api/version", nil, nil)
	return env.Data, err
}

// transport is shared by every client of one adapter.
type transport struct {
	client *utils.HTTPClient
	keys   APIKeySource
	logger *logger.Logger
}

func (t *transport) authedRequest(ctx context.Context) *resty.Request {
	req := t.client.R().SetContext(ctx)
	if t.keys == nil {
		return req
	}
	if key := strings.TrimSpace(t.keys.APIKey()); key != "" {
		req.SetAuthToken(key)
	}
	return req
}

// call performs one request and decodes the envelope of a 2xx response.
// body is sent as JSON when non-nil.
func call[T any](ctx context.Context, t *transport, method, path string, query url.Values, body any) (models.Envelope[T], error) {
	var env models.Envelope[T]

	req := t.authedRequest(ctx)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return env, fmt.Errorf("%s %s request: %w", method, path, ctxErr)
		}
		return env, fmt.Errorf("%s %s request: %w", method, path, errors.Join(ErrTransport, err))
	}
	if err = mapHTTPError(resp); err != nil {
		t.logger.Debug().
			Str("func", "adapter.call").
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Err(err).
			Msg("api request failed")
		return env, err
	}

	if len(resp.Body()) == 0 {
		return env, nil
	}
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return env, fmt.Errorf("%s %s: %w: %w", method, path, ErrDecode, err)
	}

	return env, nil
}
