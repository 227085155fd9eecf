// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential

import "errors"

var (
	// ErrMalformedToken is returned by [Decode] when the token has fewer than
	// two dot-separated segments or its claims segment is not base64url.
	ErrMalformedToken = errors.New("malformed token")

	// ErrInvalidClaimsEncoding is returned by [Decode] when the claims segment
	// decodes to bytes that are not a JSON object of the expected shape.
	ErrInvalidClaimsEncoding = errors.New("invalid claims encoding")

	// ErrExpired is reported for claims whose "exp" lies in the past.
	ErrExpired = errors.New("token expired")

	// ErrMalformed is reported for claims missing "sub" or "role".
	ErrMalformed = errors.New("token claims malformed")

	// ErrInvalidSignature is returned by [Verifier.Verify] when a signing key
	// is configured and the token signature does not check out.
	ErrInvalidSignature = errors.New("invalid token signature")
)
