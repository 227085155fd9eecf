// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-case-vault/internal/app"
	"github.com/MKhiriev/go-case-vault/internal/utils"
	"github.com/MKhiriev/go-case-vault/models"
)

// Init builds the router of the dev blob server.
//
//	GET  /health            public
//	GET  /version           public
//	GET  /whoami            any valid token
//	GET  /list_blobs        clinician, researcher, admin
//	GET  /fetch_blob/{id}   clinician, researcher, admin
//	POST /search            clinician
//	POST /store_blob        admin, researcher
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/whoami", h.whoAmI)

		r.Group(func(r chi.Router) {
			r.Use(requireRole(models.RoleClinician, models.RoleResearcher, models.RoleAdmin))
			r.Get("/list_blobs", h.listBlobs)
			r.Get("/fetch_blob/{id}", h.fetchBlob)
		})

		r.With(requireRole(models.RoleClinician)).Post("/search", h.search)
		r.With(requireRole(models.RoleAdmin, models.RoleResearcher)).Post("/store_blob", h.storeBlob)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
