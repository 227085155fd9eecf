// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidKeyMaterial is returned when raw key bytes are not 16, 24 or
	// 32 bytes long, or when a destroyed handle is used.
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrInvalidHexEncoding is returned when a nonce or ciphertext is not
	// valid hex.
	ErrInvalidHexEncoding = errors.New("invalid hex encoding")

	// ErrDecryptionFailed covers every AEAD failure: wrong key, tampered
	// ciphertext or nonce, truncated input. No further detail is exposed.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidPlaintextEncoding is returned when authenticated plaintext is
	// not UTF-8 encoded JSON object text.
	ErrInvalidPlaintextEncoding = errors.New("invalid plaintext encoding")

	// ErrKeyNotExportable is returned by every attempt to serialise a
	// [KeyHandle].
	ErrKeyNotExportable = errors.New("key is not exportable")
)
