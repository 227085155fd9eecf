// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command devtool prepares a local case vault setup: it mints session
// tokens, generates case keys, seals and uploads cases, issues session scopes
// and summarizes the audit trail.
//
// Usage:
//
//	devtool token   -sub dr.smith -role clinician [-exp 1h]
//	devtool keygen  -out keys/general.key
//	devtool seal    -key keys/general.key -in case.json -hospital General -case-id 001 [-upload -token T]
//	devtool session
//	devtool audit   [-log data/audit.log]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-case-vault/internal/config"
	"github.com/MKhiriev/go-case-vault/internal/logger"
)

func main() {
	log := logger.NewClientLogger("case-vault-devtool", "")

	cfg, err := config.GetDevToolConfig()
	if err != nil {
		log.Err(err).Msg("error getting configs")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	env := &devtoolEnv{cfg: cfg, out: os.Stdout, in: os.Stdin, logger: log}
	if err = dispatch(context.Background(), os.Args[1:], env); err != nil {
		log.Err(err).Msg("devtool command failed")
		fmt.Fprintln(os.Stderr, "devtool:", err)
		os.Exit(1)
	}
}
