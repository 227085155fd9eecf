// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential

import (
	"time"

	"github.com/MKhiriev/go-case-vault/models"
)

// Status is the outcome category of [Validate].
type Status int

const (
	StatusMalformed Status = iota
	StatusExpired
	StatusValid
)

// String returns a lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusExpired:
		return "expired"
	default:
		return "malformed"
	}
}

// Verdict is the result of validating a set of claims.
// Identity is populated only when Status is [StatusValid].
type Verdict struct {
	Status   Status
	Identity models.Identity
}

// Valid reports whether the verdict carries a usable identity.
func (v Verdict) Valid() bool {
	return v.Status == StatusValid
}

// Err maps the verdict to [ErrMalformed], [ErrExpired] or nil.
func (v Verdict) Err() error {
	switch v.Status {
	case StatusValid:
		return nil
	case StatusExpired:
		return ErrExpired
	default:
		return ErrMalformed
	}
}

// Validate checks claims against now.
//
// Missing "sub" or "role" yields [StatusMalformed] regardless of "exp".
// A present "exp" strictly earlier than now, compared in milliseconds,
// yields [StatusExpired]. Anything else is [StatusValid].
func Validate(claims *models.Claims, now time.Time) Verdict {
	if claims == nil || claims.Subject == "" || claims.Role == "" {
		return Verdict{Status: StatusMalformed}
	}

	if exp, ok := claims.ExpiryMillis(); ok && exp < float64(now.UnixMilli()) {
		return Verdict{Status: StatusExpired}
	}

	return Verdict{
		Status:   StatusValid,
		Identity: models.Identity{Subject: claims.Subject, Role: claims.Role},
	}
}

// Check decodes token and validates the resulting claims.
// A decode failure is returned as its decode error with a malformed verdict.
// Otherwise the error is [Verdict.Err].
func Check(token string, now time.Time) (models.Claims, Verdict, error) {
	claims, err := Decode(token)
	if err != nil {
		return models.Claims{}, Verdict{Status: StatusMalformed}, err
	}

	verdict := Validate(&claims, now)
	return claims, verdict, verdict.Err()
}
