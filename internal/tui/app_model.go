// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-case-vault/internal/service"
	"github.com/MKhiriev/go-case-vault/internal/session"
	"github.com/MKhiriev/go-case-vault/models"
)

type screen int

const (
	screenLogin screen = iota
	screenBlobs
	screenSearch
	screenKeyPrompt
	screenCase
)

type appModel struct {
	ctx       context.Context
	sessions  service.ClientSessionService
	cases     service.ClientCaseService
	buildInfo models.AppBuildInfo
	now       func() time.Time

	currentScreen screen

	login     loginModel
	blobs     blobListModel
	search    searchModel
	keyPrompt keyPromptModel
	caseView  caseModel
	spinner   spinner.Model

	identity    models.Identity
	expiresAt   time.Time
	storeStatus string

	keyPath string
	// blob waiting for a key file to be chosen
	pendingBlob string

	// openSeq numbers open requests; answers to older ones are dropped
	openSeq     uint64
	opening     bool
	openingBlob string

	showError     bool
	errorOverlay  errorOverlayModel
	showBuildInfo bool

	err error
}

func newAppModel(ctx context.Context, services *service.ClientServices, keyPath string) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:           ctx,
		sessions:      services.SessionService,
		cases:         services.CaseService,
		buildInfo:     services.AppInfoService.GetBuildInfo(ctx),
		now:           time.Now,
		currentScreen: screenLogin,
		login:         newLoginModel(),
		blobs:         newBlobListModel(),
		search:        newSearchModel(),
		keyPrompt:     newKeyPromptModel(keyPath),
		spinner:       s,
		keyPath:       keyPath,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.login.Init(), m.cmdRestore())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case sessionStartedMsg:
		return m.onSessionStarted(msg)
	case loggedOutMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		m.resetSession("")
		return m, nil
	case blobsLoadedMsg:
		m.blobs.loading = false
		if msg.err != nil {
			return m.onError(msg.err)
		}
		m.blobs.setIDs(msg.ids)
		return m, nil
	case searchDoneMsg:
		m.search.searching = false
		if msg.err != nil {
			return m.onError(msg.err)
		}
		m.search.setResults(msg.query, msg.results)
		return m, nil
	case caseOpenedMsg:
		return m.onCaseOpened(msg)
	case whoAmIMsg:
		if msg.err != nil {
			return m.onError(msg.err)
		}
		m.blobs.status = "Blob store sees " + describeIdentity(msg.identity)
		return m, cmdClearStatus()
	case StoreStatusMsg:
		m.storeStatus = storeStatusLine(msg)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf("Copy to clipboard failed: " + msg.err.Error())
			return m, nil
		}
		m.caseView.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.caseView.status = ""
		m.blobs.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenBlobs:
		return m.updateBlobs(msg)
	case screenSearch:
		return m.updateSearch(msg)
	case screenKeyPrompt:
		return m.updateKeyPrompt(msg)
	case screenCase:
		return m.updateCase(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showError {
		return appStyle.Render(m.errorOverlay.View())
	}
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	switch m.currentScreen {
	case screenLogin:
		return appStyle.Render(m.login.View())
	case screenBlobs:
		return appStyle.Render(m.blobs.View(m.header(), m.busyLine()))
	case screenSearch:
		return appStyle.Render(m.search.View(m.header(), m.busyLine()))
	case screenKeyPrompt:
		return appStyle.Render(m.keyPrompt.View(m.pendingBlob))
	case screenCase:
		return appStyle.Render(m.caseView.View(m.header()))
	}

	return ""
}

func (m appModel) onSessionStarted(msg sessionStartedMsg) (tea.Model, tea.Cmd) {
	m.login.submitting = false
	if msg.err != nil {
		// nothing persisted is not worth a message
		if !msg.restored || !errors.Is(msg.err, session.ErrNoSession) {
			m.login.notice = humanizeError(msg.err)
		}
		return m, nil
	}

	m.identity = msg.identity
	m.expiresAt = time.Time{}
	if current, ok := m.sessions.Current(); ok {
		m.expiresAt = current.ExpiresAt
	}
	m.login.reset()
	m.currentScreen = screenBlobs
	m.blobs.loading = true
	return m, tea.Batch(m.spinner.Tick, m.cmdLoadBlobs())
}

func (m appModel) onCaseOpened(msg caseOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.openSeq {
		return m, nil
	}
	m.opening = false
	m.openingBlob = ""

	if msg.err != nil {
		return m.onError(msg.err)
	}

	m.caseView = newCaseModel(msg.view)
	m.currentScreen = screenCase
	return m, nil
}

// onError routes session failures back to the login screen and shows
// everything else in the error overlay.
func (m appModel) onError(err error) (tea.Model, tea.Cmd) {
	if isSessionError(err) {
		m.resetSession(humanizeError(err))
		return m, nil
	}
	m.showErrorf(humanizeError(err))
	return m, nil
}

// resetSession drops every piece of state tied to the session, including a
// decrypted case on screen.
func (m *appModel) resetSession(notice string) {
	m.identity = models.Identity{}
	m.expiresAt = time.Time{}
	m.blobs = newBlobListModel()
	m.search = newSearchModel()
	m.caseView = caseModel{}
	m.pendingBlob = ""
	m.openSeq++
	m.opening = false
	m.openingBlob = ""
	m.login.reset()
	m.login.notice = notice
	m.currentScreen = screenLogin
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// openBlob starts decrypting id, or asks for a key file first.
func (m appModel) openBlob(id string) (tea.Model, tea.Cmd) {
	if m.keyPath == "" {
		m.pendingBlob = id
		m.keyPrompt.focus(m.keyPath)
		m.currentScreen = screenKeyPrompt
		return m, nil
	}

	m.openSeq++
	m.opening = true
	m.openingBlob = id
	return m, tea.Batch(m.spinner.Tick, m.cmdOpenCase(m.openSeq, id, m.keyPath))
}

func (m appModel) busy() bool {
	return m.opening || m.blobs.loading || m.search.searching || m.login.submitting
}

func (m appModel) busyLine() string {
	switch {
	case m.opening:
		return m.spinner.View() + " Decrypting " + m.openingBlob + "..."
	case m.blobs.loading, m.search.searching:
		return m.spinner.View() + " Loading..."
	}
	return ""
}
