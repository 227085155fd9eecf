// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"cmp"
	"fmt"

	"github.com/MKhiriev/go-case-vault/internal/audit"
	"github.com/MKhiriev/go-case-vault/internal/config"
	"github.com/MKhiriev/go-case-vault/internal/handler"
	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/internal/server"
	"github.com/MKhiriev/go-case-vault/internal/service"
	"github.com/MKhiriev/go-case-vault/internal/store"
	"github.com/MKhiriev/go-case-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("case-vault-server")
	log.Info().Str("build", appBuildInfo().Summary()).Msg("starting case vault server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.HTTPAddress).
		Str("blob_dir", cfg.BlobDir).
		Str("audit_log", cfg.AuditLog).
		Msg("received configs")

	storages, err := store.NewStorages(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	trail := audit.Open(cfg.AuditLog, log)
	defer trail.Close()

	services, err := service.NewServices(storages, trail, appBuildInfo(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// appBuildInfo falls back to [models.BuildValueUnknown] for the version so
// that dev builds still start.
func appBuildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(cmp.Or(buildVersion, models.BuildValueUnknown), buildDate, buildCommit)
}

func printBuildInfo() {
	fmt.Printf("Build: %s\n", appBuildInfo().Summary())
}
