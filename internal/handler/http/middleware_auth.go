// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"slices"

	"github.com/MKhiriev/go-case-vault/internal/app"
	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/internal/utils"
	"github.com/MKhiriev/go-case-vault/models"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization: Bearer <token>" header,
// verifies its HS256 signature and expiry with the server's sign key and
// stores the (subject, role) pair in the request context under
// [utils.IdentityCtxKey].
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - the "Authorization" header is absent ([app.MsgMissingAuthorization]);
//   - the header is not a bearer header ([app.MsgInvalidTokenFormat]);
//   - the token is expired, badly signed or lacks sub/role
//     ([app.MsgTokenIsExpiredOrInvalid]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			utils.WriteError(w, app.MsgMissingAuthorization, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Send()
			utils.WriteError(w, app.MsgInvalidTokenFormat, http.StatusUnauthorized)
			return
		}

		claims, err := utils.ValidateAndParseSessionToken(tokenString, h.tokenSignKey)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("token rejected")
			utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		identity := models.Identity{Subject: claims.Subject, Role: claims.Role}
		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
	})
}

// requireRole lets a request through only when the authenticated caller has
// one of roles. It must run after auth.
func requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			identity, ok := utils.GetIdentityFromContext(r.Context())
			if !ok {
				log.Err(ErrNoIdentity).Str("func", "requireRole").Send()
				utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
				return
			}

			if !slices.Contains(roles, identity.Role) {
				log.Err(ErrRoleNotAllowed).
					Str("func", "requireRole").
					Str("sub", identity.Subject).
					Str("role", identity.Role).
					Str("path", r.URL.Path).
					Send()
				utils.WriteError(w, app.MsgAccessDenied, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
