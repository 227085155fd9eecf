// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-case-vault/internal/service"
)

// keyPromptModel asks for the path of a raw AES key file. Only the path is
// kept; the file is read when a case is opened.
type keyPromptModel struct {
	input textinput.Model
}

func newKeyPromptModel(keyPath string) keyPromptModel {
	input := textinput.New()
	input.Placeholder = "/path/to/case.key"
	input.CharLimit = 4096
	input.Width = 48
	input.SetValue(keyPath)

	return keyPromptModel{input: input}
}

func (m *keyPromptModel) focus(keyPath string) {
	m.input.SetValue(keyPath)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m keyPromptModel) View(pendingBlob string) string {
	var b strings.Builder
	if pendingBlob != "" {
		b.WriteString("Opening ")
		b.WriteString(pendingBlob)
		b.WriteString("\n\n")
	}
	b.WriteString("Key file │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n\n")
	b.WriteString(helpStyle.Render("16, 24 or 32 raw bytes (AES-128/192/256)"))

	return renderPage("KEY FILE", b.String(), "enter: use key │ esc: back")
}

func (m appModel) updateKeyPrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.pendingBlob = ""
			m.keyPrompt.input.Blur()
			m.currentScreen = screenBlobs
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			path := strings.TrimSpace(m.keyPrompt.input.Value())
			if path == "" {
				m.showErrorf(humanizeError(service.ErrNoKeyFile))
				return m, nil
			}
			m.keyPath = path
			m.keyPrompt.input.Blur()
			m.currentScreen = screenBlobs

			pending := m.pendingBlob
			m.pendingBlob = ""
			if pending == "" {
				m.blobs.status = "Key file set"
				return m, cmdClearStatus()
			}
			return m.openBlob(pending)
		}
	}

	var cmd tea.Cmd
	m.keyPrompt.input, cmd = m.keyPrompt.input.Update(msg)
	return m, cmd
}
