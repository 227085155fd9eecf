// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type blobListModel struct {
	ids     []string
	idx     int
	loading bool
	status  string
}

func newBlobListModel() blobListModel {
	return blobListModel{}
}

func (m *blobListModel) setIDs(ids []string) {
	m.ids = ids
	if m.idx >= len(m.ids) {
		m.idx = len(m.ids) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m blobListModel) current() (string, bool) {
	if len(m.ids) == 0 || m.idx < 0 || m.idx >= len(m.ids) {
		return "", false
	}
	return m.ids[m.idx], true
}

func (m blobListModel) View(header, busy string) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading cases...\n")
	case len(m.ids) == 0:
		b.WriteString("No cases\n")
	default:
		for i, id := range m.ids {
			line := cursor(i == m.idx) + fitText(id, 64)
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if busy != "" {
		b.WriteString("\n")
		b.WriteString(busy)
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("CASES", strings.TrimRight(b.String(), "\n"),
		"enter: open │ /: search │ r: refresh │ f: key file │ w: whoami │ v: about │ l: logout │ q: quit")
}

func (m appModel) updateBlobs(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.blobs.idx > 0 {
			m.blobs.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.blobs.idx < len(m.blobs.ids)-1 {
			m.blobs.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		id, ok := m.blobs.current()
		if !ok {
			return m, nil
		}
		return m.openBlob(id)
	case key.Matches(keyMsg, keys.search):
		m.search.focusInput()
		m.currentScreen = screenSearch
	case key.Matches(keyMsg, keys.refresh):
		if m.blobs.loading {
			return m, nil
		}
		m.blobs.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadBlobs())
	case key.Matches(keyMsg, keys.keyFile):
		m.pendingBlob = ""
		m.keyPrompt.focus(m.keyPath)
		m.currentScreen = screenKeyPrompt
	case key.Matches(keyMsg, keys.whoAmI):
		return m, m.cmdWhoAmI()
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}
