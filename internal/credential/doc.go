// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package credential decodes and validates session tokens.
//
// [Decode] reads the claims segment of a compact token without checking its
// signature. [Validate] turns decoded claims into a [Verdict] (valid,
// expired or malformed). [Verifier] is an optional signature check that runs
// before claims are trusted when a signing key is configured.
package credential
