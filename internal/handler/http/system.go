// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-case-vault/internal/app"
	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/internal/utils"
	"github.com/MKhiriev/go-case-vault/models"
)

// ServiceName is reported by GET /health.
const ServiceName = "case-vault-proxy"

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthStatus{Status: "ok", Service: ServiceName}, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) whoAmI(w http.ResponseWriter, r *http.Request) {
	identity, ok := utils.GetIdentityFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoIdentity).Str("func", "*Handler.whoAmI").Send()
		utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, identity, http.StatusOK)
}
