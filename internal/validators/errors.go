// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyHospital      = errors.New("hospital is required")
	ErrEmptyCaseID        = errors.New("case id is required")
	ErrInvalidNamePart    = errors.New("hospital and case id must not contain path separators or \"__\"")
	ErrInvalidBlobName    = errors.New("invalid blob name")
	ErrInvalidNonce       = errors.New("nonce must be 12 bytes of hex")
	ErrInvalidCiphertext  = errors.New("ciphertext must be hex and at least 16 bytes long")
	ErrInvalidSearchLimit = errors.New("invalid search limit")
	ErrQueryTooLong       = errors.New("search query is too long")
)
