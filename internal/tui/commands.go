// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) cmdRestore() tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	return func() tea.Msg {
		identity, err := sessions.Restore(ctx)
		return sessionStartedMsg{identity: identity, restored: true, err: err}
	}
}

func (m appModel) cmdLogin(token string) tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	return func() tea.Msg {
		identity, err := sessions.Login(ctx, token)
		return sessionStartedMsg{identity: identity, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	return func() tea.Msg {
		return loggedOutMsg{err: sessions.Logout(ctx)}
	}
}

func (m appModel) cmdWhoAmI() tea.Cmd {
	ctx := m.ctx
	sessions := m.sessions
	return func() tea.Msg {
		identity, err := sessions.WhoAmI(ctx)
		return whoAmIMsg{identity: identity, err: err}
	}
}

func (m appModel) cmdLoadBlobs() tea.Cmd {
	ctx := m.ctx
	cases := m.cases
	return func() tea.Msg {
		ids, err := cases.ListBlobs(ctx)
		return blobsLoadedMsg{ids: ids, err: err}
	}
}

func (m appModel) cmdSearch(query string) tea.Cmd {
	ctx := m.ctx
	cases := m.cases
	return func() tea.Msg {
		results, err := cases.Search(ctx, query, 0)
		return searchDoneMsg{query: query, results: results, err: err}
	}
}

func (m appModel) cmdOpenCase(seq uint64, blobID, keyPath string) tea.Cmd {
	ctx := m.ctx
	cases := m.cases
	return func() tea.Msg {
		view, err := cases.OpenCase(ctx, blobID, keyPath)
		return caseOpenedMsg{seq: seq, blobID: blobID, view: view, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
