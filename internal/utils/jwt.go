// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-case-vault/models"
)

// ErrInvalidTokenParams is returned by [GenerateSessionToken] when a required
// argument is missing.
var ErrInvalidTokenParams = errors.New("invalid params for generating session token")

// GenerateSessionToken creates an HS256-signed session token for subject with
// the given role. The token carries sub, role, iat and exp claims.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("dr.smith", models.RoleClinician, time.Hour, "secret")
func GenerateSessionToken(subject string, role models.Role, tokenDuration time.Duration, signKey string) (string, error) {
	if subject == "" || role == "" || tokenDuration <= 0 || signKey == "" {
		return "", ErrInvalidTokenParams
	}

	now := time.Now()
	claims := models.Claims{
		Subject:   subject,
		Role:      role,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing session token: %w", err)
	}

	return signed, nil
}

// ValidateAndParseSessionToken verifies the HS256 signature and expiry of
// tokenString and returns its claims. Tokens without sub or role are
// rejected.
func ValidateAndParseSessionToken(tokenString, tokenSignKey string) (models.Claims, error) {
	var claims models.Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Claims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" || claims.Role == "" {
		return models.Claims{}, errors.New("token is missing sub or role")
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
