// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HealthStatus is the response body of GET /health.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// AuditEntry is one line of the blob store audit trail.
type AuditEntry struct {
	Actor    string `json:"actor"`
	Role     Role   `json:"role"`
	Action   string `json:"action"`
	Filename string `json:"filename"`
}
