// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/internal/store"
	"github.com/MKhiriev/go-case-vault/models"
)

// Services groups the services of the dev blob server.
type Services struct {
	AppInfoService AppInfoService
	BlobService    BlobService
}

func NewServices(storages *store.Storages, audit AuditTrail, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	blobs := NewBlobValidationService().Wrap(NewBlobService(storages.BlobRepository, audit, logger))

	return &Services{
		AppInfoService: appInfo,
		BlobService:    blobs,
	}, nil
}
