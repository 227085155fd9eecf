// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto imports user supplied AES keys and opens AES-GCM sealed
// case records.
//
// Key bytes read from disk are held in memguard locked buffers and wiped
// right after [ImportKey]; the resulting [KeyHandle] can only decrypt.
package crypto
