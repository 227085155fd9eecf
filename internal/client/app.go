// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/internal/tui"
)

type App struct {
	ui      UI
	workers BackgroundWorkers
	closer  io.Closer

	logger *logger.Logger
}

// NewApp returns the client runtime. workers and closer may be nil.
func NewApp(ui UI, workers BackgroundWorkers, closer io.Closer, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{ui: ui, workers: workers, closer: closer, logger: logger}, nil
}

// Run blocks until the UI exits or the process is asked to stop.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		if a.workers != nil {
			a.workers.Run(ctx)
		}
	}()

	uiErr := a.ui.Run(ctx)

	cancel()
	<-workersDone

	var closeErr error
	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			a.logger.Err(err).Str("func", "*App.run").Msg("failed to close local storage")
			closeErr = fmt.Errorf("close local storage: %w", err)
		}
	}

	if errors.Is(uiErr, tui.ErrUserQuit) {
		uiErr = nil
	}
	if uiErr != nil {
		a.logger.Err(uiErr).Str("func", "*App.run").Msg("ui stopped with error")
	}

	return errors.Join(uiErr, closeErr)
}
