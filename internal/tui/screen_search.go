// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-case-vault/internal/service"
	"github.com/MKhiriev/go-case-vault/models"
)

type searchModel struct {
	input     textinput.Model
	results   []models.SearchResult
	query     string
	idx       int
	searching bool
	// inResults is true while the cursor is in the results table
	inResults bool
}

func newSearchModel() searchModel {
	input := textinput.New()
	input.Placeholder = "fever, General__case-001, ..."
	input.CharLimit = 512
	input.Width = 48

	return searchModel{input: input}
}

func (m *searchModel) focusInput() {
	m.inResults = false
	m.input.Focus()
}

func (m *searchModel) setResults(query string, results []models.SearchResult) {
	m.query = query
	m.results = results
	m.idx = 0
	if len(results) > 0 {
		m.inResults = true
		m.input.Blur()
	}
}

func (m searchModel) current() (string, bool) {
	if len(m.results) == 0 || m.idx < 0 || m.idx >= len(m.results) {
		return "", false
	}
	return m.results[m.idx].ID, true
}

func (m searchModel) View(header, busy string) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString("Query │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n\n")

	if m.query != "" {
		if len(m.results) == 0 {
			b.WriteString("No matches for ")
			b.WriteString(fmt.Sprintf("%q", m.query))
			b.WriteString("\n")
		} else {
			b.WriteString(fmt.Sprintf("  %-48s │ %s\n", "Case", "Score"))
			b.WriteString("  ─────────────────────────────────────────────────┼──────\n")
			for i, r := range m.results {
				selected := m.inResults && i == m.idx
				line := fmt.Sprintf("%s%-48s │ %.3f", cursor(selected), fitText(r.ID, 48), r.Score)
				if selected {
					line = selectedStyle.Render(line)
				}
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
	}

	if busy != "" {
		b.WriteString("\n")
		b.WriteString(busy)
		b.WriteString("\n")
	}

	return renderPage("SEARCH", strings.TrimRight(b.String(), "\n"),
		"enter: search / open │ tab: query ⇄ results │ esc: back")
}

func (m appModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenBlobs
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			if m.search.inResults || len(m.search.results) == 0 {
				m.search.focusInput()
			} else {
				m.search.inResults = true
				m.search.input.Blur()
			}
			return m, nil
		}

		if m.search.inResults {
			switch {
			case key.Matches(keyMsg, keys.up):
				if m.search.idx > 0 {
					m.search.idx--
				}
			case key.Matches(keyMsg, keys.down):
				if m.search.idx < len(m.search.results)-1 {
					m.search.idx++
				}
			case key.Matches(keyMsg, keys.enter):
				id, ok := m.search.current()
				if !ok {
					return m, nil
				}
				return m.openBlob(id)
			}
			return m, nil
		}

		if key.Matches(keyMsg, keys.enter) {
			if m.search.searching {
				return m, nil
			}
			query := strings.TrimSpace(m.search.input.Value())
			if query == "" {
				m.showErrorf(humanizeError(service.ErrEmptyQuery))
				return m, nil
			}
			m.search.searching = true
			return m, tea.Batch(m.spinner.Tick, m.cmdSearch(query))
		}
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	return m, cmd
}
