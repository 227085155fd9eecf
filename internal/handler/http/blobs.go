// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-case-vault/internal/app"
	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/internal/utils"
	"github.com/MKhiriev/go-case-vault/models"
)

func (h *Handler) listBlobs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	caller, _ := utils.GetIdentityFromContext(ctx)

	names, err := h.services.BlobService.ListBlobs(ctx, caller)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listBlobs").Msg("error listing blobs")
		writeServiceError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}

	utils.WriteJSON(w, models.BlobList{Blobs: names}, http.StatusOK)
}

func (h *Handler) fetchBlob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	caller, _ := utils.GetIdentityFromContext(ctx)

	name, err := blobIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchBlob").Msg("invalid blob id in path")
		utils.WriteError(w, app.MsgInvalidBlobName, http.StatusBadRequest)
		return
	}

	blob, err := h.services.BlobService.FetchBlob(ctx, caller, name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetchBlob").Str("blob_id", name).Msg("error fetching blob")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, models.FetchBlobResponse{EncBlob: blob}, http.StatusOK)
}

func (h *Handler) storeBlob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	caller, _ := utils.GetIdentityFromContext(ctx)

	var req models.StoreBlobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.storeBlob").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	resp, err := h.services.BlobService.StoreBlob(ctx, caller, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.storeBlob").Msg("error storing blob")
		writeServiceError(w, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	caller, _ := utils.GetIdentityFromContext(ctx)

	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.search").Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	results, err := h.services.BlobService.Search(ctx, caller, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.search").Msg("error searching blobs")
		writeServiceError(w, err)
		return
	}
	if results == nil {
		results = []models.SearchResult{}
	}

	utils.WriteJSON(w, models.SearchResponse{Results: results}, http.StatusOK)
}

// blobIDFromRequest returns the decoded {id} path parameter. chi matches on
// the escaped path when the request had escaped separators in it.
func blobIDFromRequest(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if r.URL.RawPath == "" {
		return id, nil
	}
	return url.PathUnescape(id)
}
