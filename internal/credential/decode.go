// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/MKhiriev/go-case-vault/models"
	"github.com/golang-jwt/jwt/v5"
)

// segmentParser decodes base64url segments. Padding is tolerated because
// some issuers emit padded segments.
var segmentParser = jwt.NewParser(jwt.WithPaddingAllowed())

// maxDateSeconds bounds numeric dates that still fit a time.Time with
// millisecond arithmetic.
const maxDateSeconds = 1e15

// Claim names. Lookups are exact: "SUB" or "Role" are unknown claims.
const (
	claimSubject   = "sub"
	claimRole      = "role"
	claimExpiresAt = "exp"
	claimIssuedAt  = "iat"
)

// Decode extracts the claims segment of token without verifying its
// signature.
//
// It fails with [ErrMalformedToken] when the token has fewer than two
// segments or the claims segment is not valid base64url, and with
// [ErrInvalidClaimsEncoding] when the decoded bytes are not a JSON object
// with correctly typed claims. Decode never panics.
func Decode(token string) (models.Claims, error) {
	segments := strings.Split(token, ".")
	if len(segments) < 2 {
		return models.Claims{}, fmt.Errorf("%w: expected at least 2 segments, got %d", ErrMalformedToken, len(segments))
	}

	payload, err := segmentParser.DecodeSegment(segments[1])
	if err != nil {
		return models.Claims{}, fmt.Errorf("%w: claims segment is not base64url", ErrMalformedToken)
	}

	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 || payload[0] != '{' {
		return models.Claims{}, fmt.Errorf("%w: claims are not a JSON object", ErrInvalidClaimsEncoding)
	}

	// encoding/json folds case when filling structs, so claims are read by
	// exact key from a raw map.
	var raw map[string]json.RawMessage
	if err = json.Unmarshal(payload, &raw); err != nil {
		return models.Claims{}, fmt.Errorf("%w: %v", ErrInvalidClaimsEncoding, err)
	}

	var claims models.Claims
	if err = decodeClaim(raw, claimSubject, &claims.Subject); err != nil {
		return models.Claims{}, err
	}
	if err = decodeClaim(raw, claimRole, &claims.Role); err != nil {
		return models.Claims{}, err
	}

	var exp, iat *float64
	if err = decodeClaim(raw, claimExpiresAt, &exp); err != nil {
		return models.Claims{}, err
	}
	if err = decodeClaim(raw, claimIssuedAt, &iat); err != nil {
		return models.Claims{}, err
	}

	claims.ExpSeconds = exp
	claims.ExpiresAt = numericDate(exp)
	claims.IssuedAt = numericDate(iat)

	return claims, nil
}

// decodeClaim unmarshals raw[name] into dst. A missing claim leaves dst
// untouched.
func decodeClaim(raw map[string]json.RawMessage, name string, dst any) error {
	value, ok := raw[name]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(value, dst); err != nil {
		return fmt.Errorf("%w: claim %q: %v", ErrInvalidClaimsEncoding, name, err)
	}
	return nil
}

// numericDate converts seconds to a date without the whole-second
// truncation of jwt.NewNumericDate. Values outside the range of time.Time
// yield nil.
func numericDate(seconds *float64) *jwt.NumericDate {
	if seconds == nil || math.Abs(*seconds) >= maxDateSeconds {
		return nil
	}

	whole, frac := math.Modf(*seconds)
	return &jwt.NumericDate{Time: time.Unix(int64(whole), int64(frac*1e9))}
}
