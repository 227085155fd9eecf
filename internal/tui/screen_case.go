// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-case-vault/internal/service"
)

const openedAtLayout = "15:04:05"

// caseModel shows one masked case. It holds nothing but the masked view.
type caseModel struct {
	view   service.CaseView
	body   string
	status string
}

func newCaseModel(view service.CaseView) caseModel {
	body, err := view.Record.Indent()
	if err != nil {
		body = "(case cannot be rendered: " + err.Error() + ")"
	}
	return caseModel{view: view, body: body}
}

func (m caseModel) View(header string) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(m.view.BlobID))
	if !m.view.OpenedAt.IsZero() {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render("decrypted at " + m.view.OpenedAt.Local().Format(openedAtLayout)))
	}
	b.WriteString("\n\n")
	b.WriteString(m.body)

	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}

	return renderPage("CASE", b.String(), "c: copy masked JSON │ esc: close")
}

func (m appModel) updateCase(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.caseView = caseModel{}
		m.currentScreen = screenBlobs
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.caseView.body)
	}

	return m, nil
}
