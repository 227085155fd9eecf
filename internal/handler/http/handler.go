// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/internal/service"
)

type Handler struct {
	services     *service.Services
	tokenSignKey string

	logger *logger.Logger
}

// NewHandler returns a Handler verifying bearer tokens with tokenSignKey.
func NewHandler(services *service.Services, tokenSignKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		tokenSignKey: tokenSignKey,
		logger:       logger,
	}
}
