// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"sync"
)

// KeyHandle is an imported AES key usable only for decryption.
//
// The raw key bytes are not retained: the handle holds the expanded cipher
// block only. It cannot be serialised and prints as a redacted placeholder.
type KeyHandle struct {
	mu    sync.Mutex
	block cipher.Block
	size  int
}

// ImportKey turns raw key material into a [KeyHandle].
// raw must be exactly 16, 24 or 32 bytes; any other length fails with
// [ErrInvalidKeyMaterial]. raw is not modified and may be wiped by the
// caller as soon as ImportKey returns.
func ImportKey(raw []byte) (*KeyHandle, error) {
	switch len(raw) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: got %d bytes, want 16, 24 or 32", ErrInvalidKeyMaterial, len(raw))
	}

	block, err := aes.NewCipher(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyMaterial, err)
	}

	return &KeyHandle{block: block, size: len(raw)}, nil
}

// Bits returns the key size in bits, or 0 for a destroyed handle.
func (h *KeyHandle) Bits() int {
	if h == nil {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.size * 8
}

// Destroy drops the cipher block. Later use of the handle fails with
// [ErrInvalidKeyMaterial].
func (h *KeyHandle) Destroy() {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.block = nil
	h.size = 0
}

func (h *KeyHandle) cipherBlock() (cipher.Block, error) {
	if h == nil {
		return nil, ErrInvalidKeyMaterial
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.block == nil {
		return nil, fmt.Errorf("%w: key handle destroyed", ErrInvalidKeyMaterial)
	}
	return h.block, nil
}

// String implements [fmt.Stringer] without revealing key material.
func (h *KeyHandle) String() string {
	return fmt.Sprintf("KeyHandle(AES-%d, redacted)", h.Bits())
}

// GoString implements [fmt.GoStringer] for %#v.
func (h *KeyHandle) GoString() string {
	return h.String()
}

// MarshalJSON always fails with [ErrKeyNotExportable].
func (h *KeyHandle) MarshalJSON() ([]byte, error) {
	return nil, ErrKeyNotExportable
}

// MarshalText always fails with [ErrKeyNotExportable].
func (h *KeyHandle) MarshalText() ([]byte, error) {
	return nil, ErrKeyNotExportable
}

// MarshalBinary always fails with [ErrKeyNotExportable].
func (h *KeyHandle) MarshalBinary() ([]byte, error) {
	return nil, ErrKeyNotExportable
}
