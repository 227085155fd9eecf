// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-case-vault/internal/service"
	"github.com/MKhiriev/go-case-vault/models"
)

type sessionStartedMsg struct {
	identity models.Identity
	restored bool
	err      error
}

type loggedOutMsg struct {
	err error
}

type blobsLoadedMsg struct {
	ids []string
	err error
}

type searchDoneMsg struct {
	query   string
	results []models.SearchResult
	err     error
}

// caseOpenedMsg answers the open request numbered seq. Only the answer to
// the latest request is shown.
type caseOpenedMsg struct {
	seq    uint64
	blobID string
	view   service.CaseView
	err    error
}

type whoAmIMsg struct {
	identity models.Identity
	err      error
}

// StoreStatusMsg reports blob store reachability. It is sent into a running
// program by [TUI.ReportStoreStatus].
type StoreStatusMsg struct {
	Status models.HealthStatus
	Err    error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
