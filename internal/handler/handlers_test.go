// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-case-vault/internal/config"
	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/internal/service"
)

// newTestServices returns a nil *service.Services. http.NewHandler only
// stores the pointer, so nil is safe for construction-time tests.
func newTestServices() *service.Services {
	return nil
}

func TestNewHandlers_HTTP(t *testing.T) {
	cfg := &config.ServerConfig{
		HTTPAddress:  ":8000",
		TokenSignKey: "secret",
	}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected HTTP handler to be initialised")
}

func TestNewHandlers_NoAddress(t *testing.T) {
	cfg := &config.ServerConfig{TokenSignKey: "secret"}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}

func TestNewHandlers_NoSignKey(t *testing.T) {
	cfg := &config.ServerConfig{HTTPAddress: ":8000"}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errEmptyTokenSignKey)
}
