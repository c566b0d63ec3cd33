package tui

import (
	"context"

	"github.com/MKhiriev/fleet-notify/internal/service"
	"github.com/MKhiriev/fleet-notify/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenLogin screen = iota
	screenNotifications
)

// Model is the root of the driver app:
// 1) routes messages to the login or the notifications screen
// 2) activates the sync session after login and deactivates it on logout
// 3) renders snapshots published by the sync client
// 4) handles the global quit and about hotkeys
type Model struct {
	ctx     context.Context
	sync    service.NotificationSync
	updates <-chan models.NotificationView

	screen     screen
	login      *loginModel
	list       listModel
	session    *service.SyncSession
	activation uint64

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	quitting      bool
}

// NewModel builds the root model. updates carries snapshots forwarded from
// sync's observer; see [forwardViews].
func NewModel(ctx context.Context, services *service.ClientServices, updates <-chan models.NotificationView, buildInfo models.AppBuildInfo) Model {
	return Model{
		ctx:       ctx,
		sync:      services.Sync,
		updates:   updates,
		screen:    screenLogin,
		login:     newLoginModel(ctx, services.LoginService),
		list:      newListModel(),
		buildInfo: buildInfo,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.login.Init(), waitForView(m.updates))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, keys.forceQ) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(keyMsg, keys.esc, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if key.Matches(keyMsg, keys.info) {
			m.showBuildInfo = true
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case viewMsg:
		var cmd tea.Cmd
		if m.list.apply(msg.view) {
			cmd = m.list.spinner.Tick
		}
		return m, tea.Batch(cmd, waitForView(m.updates))

	case spinner.TickMsg:
		if !m.list.spinning {
			return m, nil
		}
		if !m.list.view.Loading {
			m.list.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		return m, cmd

	case loginResultMsg:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		if msg.err != nil {
			return m, cmd
		}
		m.screen = screenNotifications
		m.list.clear()
		m.list.driver = msg.driver
		m.activation++
		return m, tea.Batch(cmd, m.cmdActivate(msg.driver, m.activation))

	case activatedMsg:
		if m.screen != screenNotifications {
			// logged out while activating
			return m, m.cmdDiscard(msg.session, true)
		}
		if msg.seq != m.activation {
			// superseded by a later login; its Activate may have replaced ours
			cmd := m.cmdDiscard(msg.session, false)
			if m.session != nil && !m.session.Mounted() {
				m.session = nil
				m.activation++
				cmd = tea.Batch(cmd, m.cmdActivate(m.list.driver, m.activation))
			}
			return m, cmd
		}
		if msg.session != nil && !msg.session.Mounted() {
			m.activation++
			return m, m.cmdActivate(m.list.driver, m.activation)
		}
		m.session = msg.session
		m.list.configured = msg.session != nil
		return m, nil

	case loggedOutMsg:
		m.screen = screenLogin
		m.session = nil
		m.list.clear()
		m.login.reset()
		return m, m.login.cmdLoadRemembered()
	}

	switch m.screen {
	case screenNotifications:
		return m.updateNotifications(msg)
	default:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		return m, cmd
	}
}

func (m Model) updateNotifications(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		m.list.moveUp()
	case key.Matches(keyMsg, keys.down):
		m.list.moveDown()
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdRefresh()
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout(m.session)
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}
	if m.screen == screenNotifications {
		return m.list.View()
	}
	return m.login.View()
}

// The sync client publishes synchronously, so every call into it runs inside
// a command and never on the update loop.

func (m Model) cmdActivate(driver string, seq uint64) tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		return activatedMsg{session: sync.Activate(ctx, driver), seq: seq}
	}
}

// cmdDiscard deactivates a session nobody shows. reset also clears the view
// it may have filled.
func (m Model) cmdDiscard(session *service.SyncSession, reset bool) tea.Cmd {
	sync := m.sync
	return func() tea.Msg {
		sync.Deactivate(session)
		if reset {
			sync.Reset()
		}
		return nil
	}
}

func (m Model) cmdRefresh() tea.Cmd {
	if m.session == nil {
		return nil
	}
	ctx, sync, driver := m.ctx, m.sync, m.list.driver
	return func() tea.Msg {
		sync.Fetch(ctx, driver)
		return nil
	}
}

func (m Model) cmdLogout(session *service.SyncSession) tea.Cmd {
	sync := m.sync
	return func() tea.Msg {
		sync.Deactivate(session)
		sync.Reset()
		return loggedOutMsg{}
	}
}

func waitForView(updates <-chan models.NotificationView) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		view, ok := <-updates
		if !ok {
			return nil
		}
		return viewMsg{view: view}
	}
}
