// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-case-vault/models"
)

// SessionStore is the session holder the client services authorize against.
// It is implemented by *session.Store.
type SessionStore interface {
	Set(ctx context.Context, token models.SessionToken) (models.Identity, error)
	Clear(ctx context.Context) error
	Current() (models.Session, bool)
	Revalidate(ctx context.Context, now time.Time) (models.Identity, error)
	Restore(ctx context.Context) (models.Identity, error)
}

// ClientSessionService manages the session credential of the terminal user.
type ClientSessionService interface {
	// Login validates token and makes it the current session. Invalid or
	// expired tokens leave no session behind and return the credential
	// error.
	Login(ctx context.Context, token string) (models.Identity, error)

	// Logout destroys the current session.
	Logout(ctx context.Context) error

	// Current returns the held session, if any. It has no side effects.
	Current() (models.Session, bool)

	// Restore resumes the session persisted for this terminal.
	Restore(ctx context.Context) (models.Identity, error)

	// WhoAmI asks the blob store which identity it derives from the token.
	WhoAmI(ctx context.Context) (models.Identity, error)
}

// ClientCaseService lists, searches and opens encrypted cases. Every method
// revalidates the session first; a rejected token clears the session.
type ClientCaseService interface {
	// ListBlobs returns the ids of all blobs visible to the user.
	ListBlobs(ctx context.Context) ([]string, error)

	// Search returns up to k ranked blob ids. k <= 0 means the configured
	// default.
	Search(ctx context.Context, query string, k int) ([]models.SearchResult, error)

	// OpenCase fetches blobID, decrypts it with the key in keyPath and
	// returns the masked record. The key and plaintext do not outlive the
	// call.
	OpenCase(ctx context.Context, blobID, keyPath string) (CaseView, error)
}
