// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/internal/service"
	"github.com/MKhiriev/go-case-vault/internal/utils"
	"github.com/MKhiriev/go-case-vault/models"
)

const testSignKey = "test-sign-key"

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return models.NewAppBuildInfo(m.version, "", "")
}

// mockBlobService implements service.BlobService with replaceable funcs.
// A nil func fails the test when called.
type mockBlobService struct {
	t *testing.T

	listFn   func(ctx context.Context, caller models.Identity) ([]string, error)
	fetchFn  func(ctx context.Context, caller models.Identity, name string) (models.EncryptedBlob, error)
	storeFn  func(ctx context.Context, caller models.Identity, req models.StoreBlobRequest) (models.StoreBlobResponse, error)
	searchFn func(ctx context.Context, caller models.Identity, req models.SearchRequest) ([]models.SearchResult, error)
}

func (m *mockBlobService) ListBlobs(ctx context.Context, caller models.Identity) ([]string, error) {
	if m.listFn == nil {
		m.t.Fatal("unexpected ListBlobs call")
	}
	return m.listFn(ctx, caller)
}

func (m *mockBlobService) FetchBlob(ctx context.Context, caller models.Identity, name string) (models.EncryptedBlob, error) {
	if m.fetchFn == nil {
		m.t.Fatal("unexpected FetchBlob call")
	}
	return m.fetchFn(ctx, caller, name)
}

func (m *mockBlobService) StoreBlob(ctx context.Context, caller models.Identity, req models.StoreBlobRequest) (models.StoreBlobResponse, error) {
	if m.storeFn == nil {
		m.t.Fatal("unexpected StoreBlob call")
	}
	return m.storeFn(ctx, caller, req)
}

func (m *mockBlobService) Search(ctx context.Context, caller models.Identity, req models.SearchRequest) ([]models.SearchResult, error) {
	if m.searchFn == nil {
		m.t.Fatal("unexpected Search call")
	}
	return m.searchFn(ctx, caller, req)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(t *testing.T, blobs service.BlobService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{
		AppInfoService: &mockAppInfoService{version: "test-version"},
		BlobService:    blobs,
	}, testSignKey, logger.Nop())
}

// mintToken выпускает подписанный токен для заданной роли.
func mintToken(t *testing.T, sub string, role models.Role) string {
	t.Helper()
	token, err := utils.GenerateSessionToken(sub, role, time.Hour, testSignKey)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, router http.Handler, req *http.Request, token string) *httptest.ResponseRecorder {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
