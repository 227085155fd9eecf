// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"cmp"
	"fmt"
	"os"

	"github.com/awnumar/memguard"

	"github.com/MKhiriev/go-case-vault/internal/adapter"
	"github.com/MKhiriev/go-case-vault/internal/client"
	"github.com/MKhiriev/go-case-vault/internal/config"
	"github.com/MKhiriev/go-case-vault/internal/credential"
	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/internal/service"
	"github.com/MKhiriev/go-case-vault/internal/session"
	"github.com/MKhiriev/go-case-vault/internal/store"
	"github.com/MKhiriev/go-case-vault/internal/tui"
	"github.com/MKhiriev/go-case-vault/internal/workers"
	"github.com/MKhiriev/go-case-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		memguard.Purge()
		os.Exit(1)
	}
	memguard.Purge()
}

func run() error {
	log := logger.NewClientLogger("case-vault-client", "")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return fmt.Errorf("config: %w", err)
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("create local storage")
		return fmt.Errorf("local storage: %w", err)
	}

	scope := session.ResolveScope(cfg.App.SessionID)
	verifier := credential.NewVerifier(cfg.App.TokenSignKey)
	log.Info().Str("scope", scope).Bool("verify_signature", verifier.Enabled()).Msg("session store ready")

	sessions := session.NewStore(localStorage.SessionRepository, scope, log, session.WithVerifier(verifier))

	blobStore, err := adapter.NewHTTPBlobStoreAdapter(cfg.Adapter, sessions, log)
	if err != nil {
		_ = localStorage.Close()
		log.Err(err).Msg("create blob store adapter")
		return fmt.Errorf("blob store adapter: %w", err)
	}

	services, err := service.NewClientServices(
		sessions,
		blobStore,
		cfg.App.SearchK,
		appBuildInfo(),
		log,
	)
	if err != nil {
		_ = localStorage.Close()
		log.Err(err).Msg("create client services")
		return fmt.Errorf("client services: %w", err)
	}

	ui, err := tui.New(services, cfg.App.KeyFile, log)
	if err != nil {
		_ = localStorage.Close()
		log.Err(err).Msg("error creating ui")
		return fmt.Errorf("ui: %w", err)
	}

	background := workers.NewWorkers(
		workers.NewHealthProbe(blobStore, ui.ReportStoreStatus, workers.DefaultProbeInterval, log),
	)

	app, err := client.NewApp(ui, background, localStorage, log)
	if err != nil {
		_ = localStorage.Close()
		log.Err(err).Msg("init client app error")
		return fmt.Errorf("client app: %w", err)
	}

	return app.Run()
}

// appBuildInfo falls back to [models.BuildValueUnknown] for the version so
// that dev builds still start.
func appBuildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(cmp.Or(buildVersion, models.BuildValueUnknown), buildDate, buildCommit)
}

func printBuildInfo() {
	fmt.Printf("Build: %s\n", appBuildInfo().Summary())
}
