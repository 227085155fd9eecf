// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type loginModel struct {
	input      textinput.Model
	submitting bool
	notice     string
}

func newLoginModel() loginModel {
	input := textinput.New()
	input.Placeholder = "paste session token"
	input.CharLimit = 8192
	input.Width = 48
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.Focus()

	return loginModel{input: input}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

// reset clears the pasted token. The notice is kept.
func (m *loginModel) reset() {
	m.input.Reset()
	m.input.Focus()
	m.submitting = false
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Token │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: "))
		b.WriteString(m.notice)
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "enter: sign in")
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.enter) {
		if m.login.submitting {
			return m, nil
		}

		token := strings.TrimSpace(m.login.input.Value())
		if token == "" {
			m.login.notice = "Paste a session token first"
			return m, nil
		}

		m.login.notice = ""
		m.login.submitting = true
		return m, m.cmdLogin(token)
	}

	var cmd tea.Cmd
	m.login.input, cmd = m.login.input.Update(msg)
	return m, cmd
}
