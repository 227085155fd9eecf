// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal display surface of the case vault client.
// Decrypted cases reach it only as masked views.
package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/internal/service"
	"github.com/MKhiriev/go-case-vault/models"
)

type TUI struct {
	services *service.ClientServices
	keyPath  string

	mu      sync.Mutex
	program *tea.Program

	logger *logger.Logger
}

// New returns a TUI over services. keyPath pre-fills the key file prompt.
func New(services *service.ClientServices, keyPath string, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.SessionService == nil || services.CaseService == nil || services.AppInfoService == nil {
		return nil, errNoServices
	}
	return &TUI{services: services, keyPath: keyPath, logger: logger}, nil
}

// Run shows the UI until the user quits. Leaving with ctrl+c returns
// [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(newAppModel(ctx, t.services, t.keyPath), tea.WithAltScreen(), tea.WithContext(ctx))

	t.mu.Lock()
	t.program = program
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	finalModel, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("tui stopped with error")
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	return result.err
}

// ReportStoreStatus updates the blob store line of a running UI. It is a
// no-op when the UI is not running.
func (t *TUI) ReportStoreStatus(status models.HealthStatus, err error) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(StoreStatusMsg{Status: status, Err: err})
	}
}
