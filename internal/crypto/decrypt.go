// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/cipher"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/MKhiriev/go-case-vault/models"
	"github.com/awnumar/memguard"
)

// Decrypt opens an AES-GCM sealed case document.
//
// nonceHex and ciphertextHex are hex strings; the ciphertext carries the
// authentication tag as its last 16 bytes. The nonce may have any non-zero
// length, 12 bytes being the usual one.
//
// Errors: [ErrInvalidHexEncoding] for bad hex, [ErrInvalidKeyMaterial] for a
// nil or destroyed handle, [ErrDecryptionFailed] for any AEAD failure and
// [ErrInvalidPlaintextEncoding] if the plaintext is not well-formed UTF-8
// JSON. Any JSON value is accepted; objects land in Object, the rest in Value.
func Decrypt(h *KeyHandle, nonceHex, ciphertextHex string) (models.DecryptedDocument, error) {
	nonce, err := hex.DecodeString(nonceHex)
	if err != nil {
		return models.DecryptedDocument{}, fmt.Errorf("%w: nonce", ErrInvalidHexEncoding)
	}
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return models.DecryptedDocument{}, fmt.Errorf("%w: ciphertext", ErrInvalidHexEncoding)
	}

	block, err := h.cipherBlock()
	if err != nil {
		return models.DecryptedDocument{}, err
	}

	if len(nonce) == 0 {
		return models.DecryptedDocument{}, ErrDecryptionFailed
	}
	aead, err := cipher.NewGCMWithNonceSize(block, len(nonce))
	if err != nil {
		return models.DecryptedDocument{}, ErrDecryptionFailed
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return models.DecryptedDocument{}, ErrDecryptionFailed
	}
	defer memguard.WipeBytes(plaintext)

	return parseRecord(plaintext)
}

// DecryptBlob is [Decrypt] applied to the hex fields of blob.
func DecryptBlob(h *KeyHandle, blob models.EncryptedBlob) (models.DecryptedDocument, error) {
	return Decrypt(h, blob.Nonce, blob.Ciphertext)
}

func parseRecord(plaintext []byte) (models.DecryptedDocument, error) {
	if !utf8.Valid(plaintext) {
		return models.DecryptedDocument{}, fmt.Errorf("%w: not utf-8", ErrInvalidPlaintextEncoding)
	}

	dec := json.NewDecoder(bytes.NewReader(plaintext))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return models.DecryptedDocument{}, fmt.Errorf("%w: %v", ErrInvalidPlaintextEncoding, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return models.DecryptedDocument{}, fmt.Errorf("%w: trailing data after JSON value", ErrInvalidPlaintextEncoding)
	}

	if obj, ok := value.(map[string]any); ok {
		return models.DecryptedDocument{Object: obj}, nil
	}
	return models.DecryptedDocument{Value: value}, nil
}
