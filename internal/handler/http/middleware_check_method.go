// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-case-vault/internal/app"
	"github.com/MKhiriev/go-case-vault/internal/utils"
)

// CheckHTTPMethod returns a handler to be registered with
// [chi.Mux.MethodNotAllowed]. A path that exists but does not accept the
// request method answers 404 instead of 405, so route existence is not
// leaked to callers probing with other methods.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
	}
}
