// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-community-share/models"
	"github.com/go-resty/resty/v2"
)

type resourceClient[T models.Item] struct {
	transport  *transport
	descriptor models.ResourceDescriptor
}

func newResourceClient[T models.Item](t *transport, descriptor models.ResourceDescriptor) *resourceClient[T] {
	return &resourceClient[T]{transport: t, descriptor: descriptor}
}

func (c *resourceClient[T]) itemPath(id int64) string {
	return c.descriptor.BasePath + "/" + strconv.FormatInt(id, 10)
}

// Get implements [ResourceClient]: GET {base}/{id}.
func (c *resourceClient[T]) Get(ctx context.Context, id int64) (T, error) {
	if id <= 0 {
		var zero T
		return zero, fmt.Errorf("get %s: %w %d", c.descriptor.Name, ErrInvalidID, id)
	}

	env, err := call[T](ctx, c.transport, resty.MethodGet, c.itemPath(id), nil, nil)
	if err != nil {
		return env.Data, fmt.Errorf("get %s %d: %w", c.descriptor.Name, id, err)
	}
	return env.Data, nil
}

// GetMany implements [ResourceClient]: GET {base}?{query}.
func (c *resourceClient[T]) GetMany(ctx context.Context, query url.Values) ([]T, error) {
	env, err := call[[]T](ctx, c.transport, resty.MethodGet, c.descriptor.BasePath, query, nil)
	if err != nil {
		return nil, fmt.Errorf("get many %s: %w", c.descriptor.Name, err)
	}
	if env.Data == nil {
		return []T{}, nil
	}
	return env.Data, nil
}

// Save implements [ResourceClient]: POST {base} for new items, PUT
// {base}/{id} otherwise.
func (c *resourceClient[T]) Save(ctx context.Context, item T) (T, error) {
	method, path := resty.MethodPost, c.descriptor.BasePath
	if id := item.ItemID(); id != 0 {
		method, path = resty.MethodPut, c.itemPath(id)
	}

	env, err := call[T](ctx, c.transport, method, path, nil, item)
	if err != nil {
		return item, fmt.Errorf("save %s: %w", c.descriptor.Name, err)
	}
	return env.Data, nil
}

type usersClient struct {
	*resourceClient[models.User]
}

// GetByEmail implements [UsersClient]: GET /api/userbyemail/{email}.
func (c *usersClient) GetByEmail(ctx context.Context, email string) (models.User, error) {
	env, err := call[models.User](ctx, c.transport, resty.MethodGet, "/api/userbyemail/"+url.PathEscape(email), nil, nil)
	if err != nil {
		return models.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return env.Data, nil
}

type institutionsClient struct {
	*resourceClient[models.Institution]
}

type searchesClient struct {
	*resourceClient[models.Search]
}

// Results implements [SearchesClient]: GET /api/search/{id}/results.
func (c *searchesClient) Results(ctx context.Context, searchID int64) ([]models.Search, error) {
	if searchID <= 0 {
		return nil, fmt.Errorf("search results: %w %d", ErrInvalidID, searchID)
	}

	env, err := call[[]models.Search](ctx, c.transport, resty.MethodGet, c.itemPath(searchID)+"/results", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("search results: %w", err)
	}
	if env.Data == nil {
		return []models.Search{}, nil
	}
	return env.Data, nil
}

type conversationsClient struct {
	*resourceClient[models.Conversation]
}

// GetUnviewedForUser implements [ConversationsClient].
func (c *conversationsClient) GetUnviewedForUser(ctx context.Context, userID int64) ([]models.Conversation, error) {
	return c.GetMany(ctx, url.Values{
		"user_id_with_unviewed_messages": {strconv.FormatInt(userID, 10)},
	})
}

type messagesClient struct {
	*resourceClient[models.Message]
}

// MarkViewed implements [MessagesClient].
func (c *messagesClient) MarkViewed(ctx context.Context, message models.Message) (models.Message, error) {
	message.Viewed = true
	return c.Save(ctx, message)
}
