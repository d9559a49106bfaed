// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MKhiriev/go-community-share/internal/store"
	"github.com/MKhiriev/go-community-share/internal/utils"
	"github.com/MKhiriev/go-community-share/models"
)

// requesters resolves the user behind the API key of a request.
type requesters struct {
	users store.UserRepository
}

func (r requesters) requester(ctx context.Context) (models.User, error) {
	id, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return models.User{}, ErrNoRequester
	}

	user, err := r.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrNoRequester
		}
		return models.User{}, fmt.Errorf("requester lookup failed: %w", err)
	}
	return user, nil
}

// visibleUser hides private fields of u from anyone but u and administrators.
func visibleUser(requester, u models.User) models.User {
	if requester.IsAdministrator || requester.ID == u.ID {
		return u
	}
	return u.Public()
}

// userSnapshots loads each user once per request.
type userSnapshots struct {
	users store.UserRepository
	cache map[int64]*models.User
}

func newUserSnapshots(users store.UserRepository) *userSnapshots {
	return &userSnapshots{users: users, cache: make(map[int64]*models.User)}
}

func (s *userSnapshots) get(ctx context.Context, id int64) (*models.User, error) {
	if u, ok := s.cache[id]; ok {
		return u, nil
	}
	u, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	public := u.Public()
	s.cache[id] = &public
	return &public, nil
}

// queryInt64 reads an optional integer query parameter.
func queryInt64(query url.Values, key string) (int64, bool, error) {
	raw := query.Get(key)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %s must be an integer", ErrInvalidDataProvided, key)
	}
	return v, true, nil
}
