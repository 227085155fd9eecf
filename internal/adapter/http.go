// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-case-vault/internal/config"
	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/internal/utils"
	"github.com/MKhiriev/go-case-vault/models"
)

type httpBlobStoreAdapter struct {
	client *utils.HTTPClient
	tokens TokenProvider

	logger *logger.Logger
}

// NewHTTPBlobStoreAdapter constructs an HTTP/JSON implementation of
// [BlobStoreAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. Every authenticated request carries
// the token returned by tokens at the time of the call.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPBlobStoreAdapter(adapterCfg config.ClientAdapter, tokens TokenProvider, logger *logger.Logger) (BlobStoreAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpBlobStoreAdapter{client: client, tokens: tokens, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListBlobs implements [BlobStoreAdapter]. GET /list_blobs.
func (h *httpBlobStoreAdapter) ListBlobs(ctx context.Context) ([]string, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var list models.BlobList
	resp, err := req.SetResult(&list).Get("/list_blobs")
	if err != nil {
		return nil, fmt.Errorf("list blobs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if list.Blobs == nil {
		return []string{}, nil
	}

	return list.Blobs, nil
}

// FetchBlob implements [BlobStoreAdapter]. GET /fetch_blob/{id}, with id
// path-escaped.
func (h *httpBlobStoreAdapter) FetchBlob(ctx context.Context, id string) (models.EncryptedBlob, error) {
	if id == "" {
		return models.EncryptedBlob{}, fmt.Errorf("%w: empty blob id", ErrBadRequest)
	}

	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.EncryptedBlob{}, err
	}

	var fetched models.FetchBlobResponse
	resp, err := req.
		SetPathParam("id", id).
		SetResult(&fetched).
		Get("/fetch_blob/{id}")
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("fetch blob request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedBlob{}, err
	}
	if fetched.EncBlob.Nonce == "" || fetched.EncBlob.Ciphertext == "" {
		return models.EncryptedBlob{}, fmt.Errorf("%w: blob %q has no nonce or ciphertext", ErrUnexpectedResponse, id)
	}

	blob := fetched.EncBlob
	blob.ID = id

	h.logger.Debug().Str("func", "FetchBlob").Str("blob_id", id).Msg("blob fetched")
	return blob, nil
}

// Search implements [BlobStoreAdapter]. POST /search.
func (h *httpBlobStoreAdapter) Search(ctx context.Context, query string, k int) ([]models.SearchResult, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	var result models.SearchResponse
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.SearchRequest{Query: query, K: k}).
		SetResult(&result).
		Post("/search")
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	if result.Results == nil {
		return []models.SearchResult{}, nil
	}

	return result.Results, nil
}

// WhoAmI implements [BlobStoreAdapter]. GET /whoami.
func (h *httpBlobStoreAdapter) WhoAmI(ctx context.Context) (models.Identity, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Identity{}, err
	}

	var identity models.Identity
	resp, err := req.SetResult(&identity).Get("/whoami")
	if err != nil {
		return models.Identity{}, fmt.Errorf("whoami request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}

	return identity, nil
}

// Health implements [BlobStoreAdapter]. GET /health.
func (h *httpBlobStoreAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		Get("/health")
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthStatus{}, err
	}

	return status, nil
}

// StoreBlob implements [BlobStoreAdapter]. POST /store_blob.
func (h *httpBlobStoreAdapter) StoreBlob(ctx context.Context, storeReq models.StoreBlobRequest) (models.StoreBlobResponse, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.StoreBlobResponse{}, err
	}

	var stored models.StoreBlobResponse
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(storeReq).
		SetResult(&stored).
		Post("/store_blob")
	if err != nil {
		return models.StoreBlobResponse{}, fmt.Errorf("store blob request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StoreBlobResponse{}, err
	}

	return stored, nil
}

// authedRequest returns a request carrying the current bearer token, or
// [ErrNoSession] if there is none.
func (h *httpBlobStoreAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	if h.tokens == nil {
		return nil, ErrNoSession
	}

	token, err := h.tokens.Token()
	if err != nil {
		return nil, errors.Join(ErrNoSession, err)
	}
	if token == "" {
		return nil, ErrNoSession
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
