// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the credential of the current terminal session.
//
// A [Store] is created once per process and injected into every component
// that performs authorized actions. Its lifecycle is
// Set (create) → Token (attach to requests) → Clear or a failed Revalidate
// (invalidate). The token is persisted per scope so that it survives a
// restart of the client in the same shell, but never leaks into another
// shell's scope.
package session
