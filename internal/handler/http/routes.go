// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-community-share/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	router.Handle("/metrics", h.metrics.handler())

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/statistics", h.getStatistics)
	})

	// key issuing routes, throttled per client address
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)

		r.Post("/api/usersignup", h.signup)
		r.Post("/api/requestapikey", h.requestAPIKey)
		r.Post("/api/requestresetpassword", h.requestResetPassword)
		r.Post("/api/resetpassword", h.resetPassword)
		r.Post("/api/confirmemail", h.confirmEmail)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/userbyemail/{email}", h.userByEmail)
		r.Get("/api/search/{id}/results", h.searchResults)

		newResourceHandler[models.User](models.UserResource, h.services.UserService).register(r)
		newResourceHandler[models.Institution](models.InstitutionResource, h.services.InstitutionService).register(r)
		newResourceHandler[models.Search](models.SearchResource, h.services.SearchService).register(r)
		newResourceHandler[models.Conversation](models.ConversationResource, h.services.ConversationService).register(r)
		newResourceHandler[models.Message](models.MessageResource, h.services.MessageService).register(r)
	})

	return router
}
