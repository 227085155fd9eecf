// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-case-vault/models"
)

// SealRecord encrypts record the way hospital agents do: JSON encoding,
// AES-GCM with a random 12-byte nonce, hex output. It takes raw key bytes
// because a [KeyHandle] is decrypt-only. Used by dev tooling and tests.
func SealRecord(rawKey []byte, record any) (models.EncryptedBlob, error) {
	plaintext, err := json.Marshal(record)
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("marshal record: %w", err)
	}

	return SealBytes(rawKey, plaintext)
}

// SealBytes is SealRecord for an already encoded plaintext.
func SealBytes(rawKey, plaintext []byte) (models.EncryptedBlob, error) {
	block, err := aes.NewCipher(rawKey)
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("generate nonce: %w", err)
	}

	return models.EncryptedBlob{
		Nonce:      hex.EncodeToString(nonce),
		Ciphertext: hex.EncodeToString(aead.Seal(nil, nonce, plaintext, nil)),
	}, nil
}
