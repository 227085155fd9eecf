// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"os"
	"strings"

	"github.com/MKhiriev/go-case-vault/internal/credential"
	"github.com/MKhiriev/go-case-vault/internal/crypto"
	"github.com/MKhiriev/go-case-vault/internal/service"
	"github.com/MKhiriev/go-case-vault/internal/session"
)

var ErrUserQuit = errors.New("user quit")

const msgInvalidToken = "invalid or expired token"

var credentialErrors = []error{
	credential.ErrMalformedToken,
	credential.ErrInvalidClaimsEncoding,
	credential.ErrExpired,
	credential.ErrMalformed,
	credential.ErrInvalidSignature,
}

// isSessionError reports whether err means the user has to paste a new
// token.
func isSessionError(err error) bool {
	if errors.Is(err, session.ErrNoSession) || errors.Is(err, service.ErrSessionRejected) {
		return true
	}
	for _, target := range credentialErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// ordered: the first match wins
var errorMessages = []struct {
	target  error
	message string
}{
	{service.ErrSessionRejected, "The blob store rejected your token. Paste a new one."},
	{session.ErrNoSession, "No active session. Paste a token."},
	{session.ErrPersistSession, "Could not save the session on this machine"},
	{crypto.ErrInvalidKeyMaterial, "Key file is not a valid AES key (16, 24 or 32 bytes)"},
	{crypto.ErrInvalidHexEncoding, "Blob is not valid hex"},
	{crypto.ErrDecryptionFailed, "Decryption failed: wrong key or tampered case"},
	{crypto.ErrInvalidPlaintextEncoding, "Decrypted case is not a JSON object"},
	{service.ErrAccessDenied, "Access denied for your role"},
	{service.ErrBlobNotFound, "Case not found"},
	{service.ErrInvalidBlobID, "Invalid case id"},
	{service.ErrInvalidDataProvided, "The blob store rejected the request"},
	{service.ErrStoreUnavailable, "Blob store unavailable"},
	{service.ErrNoKeyFile, "No key file selected"},
	{service.ErrEmptyQuery, "Enter a search query"},
	{os.ErrNotExist, "Key file not found"},
	{os.ErrPermission, "Key file is not readable"},
}

// humanizeError turns err into the line shown to the user. Credential
// failures all read the same.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, target := range credentialErrors {
		if errors.Is(err, target) {
			return msgInvalidToken
		}
	}
	for _, e := range errorMessages {
		if errors.Is(err, e.target) {
			return e.message
		}
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network unavailable or blob store unreachable"
	}

	return err.Error()
}

var errNoServices = errors.New("tui needs session, case and app info services")
