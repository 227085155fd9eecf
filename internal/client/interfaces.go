// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive surface the client runs. It is implemented by
// *tui.TUI.
type UI interface {
	Run(ctx context.Context) error
}

// BackgroundWorkers run next to the UI until it exits.
type BackgroundWorkers interface {
	Run(ctx context.Context)
}
