// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/go-case-vault/models"
)

// Worker is the interface that must be implemented by any background worker.
// Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// HealthChecker is the part of the blob store adapter the health probe
// needs.
type HealthChecker interface {
	Health(ctx context.Context) (models.HealthStatus, error)
}

// StatusReporter receives every probe result.
type StatusReporter func(status models.HealthStatus, err error)
