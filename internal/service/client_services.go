// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-case-vault/internal/adapter"
	"github.com/MKhiriev/go-case-vault/internal/crypto"
	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/models"
)

// ClientServices groups the services the terminal client is built from.
type ClientServices struct {
	SessionService ClientSessionService
	CaseService    ClientCaseService
	AppInfoService AppInfoService
}

func NewClientServices(
	sessions SessionStore,
	blobStore adapter.BlobStoreAdapter,
	searchK int,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*ClientServices, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &ClientServices{
		SessionService: NewClientSessionService(sessions, blobStore, logger),
		CaseService:    NewClientCaseService(sessions, blobStore, crypto.NewCaseDecrypter(), searchK, logger),
		AppInfoService: appInfo,
	}, nil
}
