// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential

import (
	"fmt"

	"github.com/MKhiriev/go-case-vault/models"
	"github.com/golang-jwt/jwt/v5"
)

// Verifier checks the HS256 signature of a token before its claims are
// trusted. A Verifier without a key accepts every token, which keeps the
// client usable against issuers whose key it does not hold.
type Verifier struct {
	key    []byte
	parser *jwt.Parser
}

// NewVerifier returns a Verifier for signKey. An empty signKey disables
// verification.
func NewVerifier(signKey string) *Verifier {
	return &Verifier{
		key: []byte(signKey),
		// exp is judged by Validate so that expiry stays a distinct verdict.
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
		),
	}
}

// Enabled reports whether a signing key is configured.
func (v *Verifier) Enabled() bool {
	return v != nil && len(v.key) > 0
}

// Verify returns nil if verification is disabled or the signature of token
// is valid, and [ErrInvalidSignature] otherwise.
func (v *Verifier) Verify(token string) error {
	if !v.Enabled() {
		return nil
	}

	_, err := v.parser.ParseWithClaims(token, &models.Claims{}, func(t *jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	return nil
}
