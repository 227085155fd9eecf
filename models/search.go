// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SearchRequest is the request body of POST /search.
type SearchRequest struct {
	Query string `json:"query"`
	K     int    `json:"k"`
}

// SearchResult is one ranked hit returned by the search endpoint.
type SearchResult struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// SearchResponse is the response body of POST /search.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}
