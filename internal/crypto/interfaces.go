// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-case-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/case_decrypter_mock.go -package=mock

// CaseDecrypter opens encrypted case blobs with a key read from disk.
// The key lives only for the duration of one call.
type CaseDecrypter interface {
	// DecryptBlob reads the key file at keyPath, imports it, decrypts blob and
	// destroys the key. Errors are the sentinels of this package, or a
	// wrapped file system error if keyPath cannot be read.
	DecryptBlob(keyPath string, blob models.EncryptedBlob) (models.DecryptedDocument, error)
}
