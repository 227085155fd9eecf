// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"time"

	"github.com/MKhiriev/go-case-vault/internal/masking"
)

// CaseView is the only form in which a decrypted case reaches the display
// layer. Its record has been through the masking policy.
type CaseView struct {
	// BlobID attributes the view to the blob it was decrypted from.
	BlobID string
	// Record is the masked case.
	Record masking.MaskedRecord
	// OpenedAt is the time the case was decrypted.
	OpenedAt time.Time
}
