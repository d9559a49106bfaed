// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-community-share/internal/service"
	"github.com/MKhiriev/go-community-share/internal/utils"
	"github.com/MKhiriev/go-community-share/models"
	"github.com/go-chi/chi/v5"
)

// resourceHandler serves the generic routes of one resource:
//
//	GET       /api/<name>       list, filtered by query parameters
//	GET       /api/<name>/{id}  read
//	POST      /api/<name>       create
//	PUT|PATCH /api/<name>/{id}  update
type resourceHandler[T models.Item] struct {
	descriptor models.ResourceDescriptor
	service    service.ResourceService[T]
}

func newResourceHandler[T models.Item](descriptor models.ResourceDescriptor, svc service.ResourceService[T]) *resourceHandler[T] {
	return &resourceHandler[T]{descriptor: descriptor, service: svc}
}

func (rh *resourceHandler[T]) register(r chi.Router) {
	r.Route(rh.descriptor.BasePath, func(r chi.Router) {
		r.Get("/", rh.list)
		r.Post("/", rh.create)
		r.Get("/{id}", rh.get)
		r.Put("/{id}", rh.update)
		r.Patch("/{id}", rh.update)
	})
}

func (rh *resourceHandler[T]) list(w http.ResponseWriter, r *http.Request) {
	items, err := rh.service.List(r.Context(), r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	utils.WriteData(w, http.StatusOK, items, "")
}

func (rh *resourceHandler[T]) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	item, err := rh.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, item, "")
}

func (rh *resourceHandler[T]) create(w http.ResponseWriter, r *http.Request) {
	var item T
	if !decodeBody(w, r, &item) {
		return
	}

	created, err := rh.service.Create(r.Context(), item)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusCreated, created, "")
}

// update rejects bodies whose id differs from the path id. A body without
// an id is accepted.
func (rh *resourceHandler[T]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var item T
	if !decodeBody(w, r, &item) {
		return
	}
	if bodyID := item.ItemID(); bodyID != 0 && bodyID != id {
		writeError(w, r, fmt.Errorf("%w: %d != %d", service.ErrIDMismatch, bodyID, id))
		return
	}

	updated, err := rh.service.Update(r.Context(), id, item)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, updated, "")
}

// userByEmail: GET /api/userbyemail/{email}.
func (h *Handler) userByEmail(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteData(w, http.StatusOK, user, "")
}

// searchResults: GET /api/search/{id}/results.
func (h *Handler) searchResults(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	results, err := h.services.SearchService.Results(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if results == nil {
		results = []models.Search{}
	}
	utils.WriteData(w, http.StatusOK, results, "")
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, fmt.Errorf("%w: %q", ErrInvalidID, raw))
		return 0, false
	}
	return id, true
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
