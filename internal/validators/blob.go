// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-case-vault/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldHospital targets the hospital part of a blob name.
	FieldHospital = "hospital"

	// FieldCaseID targets the case id part of a blob name.
	FieldCaseID = "case_id"

	// FieldEncBlob targets the sealed payload of a store request.
	FieldEncBlob = "enc_blob"

	// FieldNonce targets the hex nonce of an encrypted blob.
	FieldNonce = "nonce"

	// FieldCiphertext targets the hex ciphertext of an encrypted blob.
	FieldCiphertext = "ciphertext"

	// FieldQuery targets the free-text search query.
	FieldQuery = "query"

	// FieldK targets the requested number of search results.
	FieldK = "k"
)

const (
	nonceSize = 12
	tagSize   = 16

	// MaxSearchK caps the number of results one search may ask for.
	MaxSearchK = 100
	// MaxQueryLength caps the search query length in bytes.
	MaxQueryLength = 512
)

// BlobName is a blob identifier as it appears in a fetch path.
type BlobName string

// BlobValidator checks requests reaching the blob store. Ciphertext is only
// checked for shape; it is never opened.
type BlobValidator struct {
}

// NewBlobValidator returns a [Validator] for blob store requests.
func NewBlobValidator() Validator {
	return &BlobValidator{}
}

func (v *BlobValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.StoreBlobRequest:
		return v.validateStoreRequest(ctx, value, fields...)
	case *models.StoreBlobRequest:
		return v.validateStoreRequest(ctx, *value, fields...)

	case models.EncryptedBlob:
		return v.validateEncryptedBlob(ctx, value, fields...)
	case *models.EncryptedBlob:
		return v.validateEncryptedBlob(ctx, *value, fields...)

	case models.SearchRequest:
		return v.validateSearchRequest(ctx, value, fields...)
	case *models.SearchRequest:
		return v.validateSearchRequest(ctx, *value, fields...)

	case BlobName:
		return validateBlobName(string(value))

	default:
		return ErrUnsupportedType
	}
}

func (v *BlobValidator) validateStoreRequest(ctx context.Context, request models.StoreBlobRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldHospital, FieldCaseID, FieldEncBlob}
	}

	for _, f := range fields {
		switch f {
		case FieldHospital:
			if strings.TrimSpace(request.Hospital) == "" {
				return ErrEmptyHospital
			}
			if !isValidNamePart(request.Hospital) {
				return fmt.Errorf("%w: hospital %q", ErrInvalidNamePart, request.Hospital)
			}
		case FieldCaseID:
			if strings.TrimSpace(request.CaseID) == "" {
				return ErrEmptyCaseID
			}
			if !isValidNamePart(request.CaseID) {
				return fmt.Errorf("%w: case id %q", ErrInvalidNamePart, request.CaseID)
			}
		case FieldEncBlob:
			if err := v.validateEncryptedBlob(ctx, request.EncBlob); err != nil {
				return fmt.Errorf("enc_blob: %w", err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BlobValidator) validateEncryptedBlob(_ context.Context, blob models.EncryptedBlob, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNonce, FieldCiphertext}
	}

	for _, f := range fields {
		switch f {
		case FieldNonce:
			nonce, err := hex.DecodeString(blob.Nonce)
			if err != nil || len(nonce) != nonceSize {
				return ErrInvalidNonce
			}
		case FieldCiphertext:
			ciphertext, err := hex.DecodeString(blob.Ciphertext)
			if err != nil || len(ciphertext) < tagSize {
				return ErrInvalidCiphertext
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BlobValidator) validateSearchRequest(_ context.Context, request models.SearchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuery, FieldK}
	}

	for _, f := range fields {
		switch f {
		case FieldQuery:
			if len(request.Query) > MaxQueryLength {
				return ErrQueryTooLong
			}
		case FieldK:
			// 0 asks for the default
			if request.K < 0 || request.K > MaxSearchK {
				return fmt.Errorf("%w: %d", ErrInvalidSearchLimit, request.K)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateBlobName(name string) error {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidBlobName, name)
	}
	return nil
}

func isValidNamePart(part string) bool {
	return !strings.ContainsAny(part, `/\`) && !strings.Contains(part, "__") && part != "." && part != ".."
}
