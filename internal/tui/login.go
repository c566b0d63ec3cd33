// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/fleet-notify/internal/service"
	"github.com/MKhiriev/fleet-notify/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	focusUsername = iota
	focusPassword
	focusRemember
	focusCount
)

// loginModel is the login screen. It renders the username and password
// inputs plus a "remember me" toggle and dispatches an async login command on
// submission. The result arrives as a [loginResultMsg] handled by [Model].
type loginModel struct {
	ctx   context.Context
	login service.LoginService

	username   textinput.Model
	password   textinput.Model
	remember   bool
	focus      int
	submitting bool
	errMsg     string
}

// newLoginModel creates the form with focus on the username and remember on.
func newLoginModel(ctx context.Context, login service.LoginService) *loginModel {
	username := textinput.New()
	username.Placeholder = "driver name"
	username.CharLimit = 64
	username.Width = 40
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	return &loginModel{
		ctx:      ctx,
		login:    login,
		username: username,
		password: password,
		remember: true,
	}
}

func (m *loginModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.cmdLoadRemembered())
}

// prefill puts the remembered driver into the username field and moves focus
// to the password. An empty driver leaves the form as it is.
func (m *loginModel) prefill(driver string) {
	if driver == "" || m.username.Value() != "" {
		return
	}
	m.username.SetValue(driver)
	m.username.CursorEnd()
	m.setFocus(focusPassword)
}

// reset clears the secret and the status of the form after logout.
func (m *loginModel) reset() {
	m.password.Reset()
	m.submitting = false
	m.errMsg = ""
	m.setFocus(focusUsername)
}

func (m *loginModel) Update(msg tea.Msg) (*loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case rememberedMsg:
		// a broken preference store must not block logging in
		if msg.err == nil {
			m.prefill(msg.driver)
		}
		return m, nil
	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = loginErrorText(msg.err)
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		case key.Matches(msg, keys.tab):
			m.setFocus((m.focus + 1) % focusCount)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus((m.focus - 1 + focusCount) % focusCount)
			return m, nil
		case m.focus == focusRemember && key.Matches(msg, keys.toggle):
			m.remember = !m.remember
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusUsername:
		m.username, cmd = m.username.Update(msg)
	case focusPassword:
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m *loginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	form := models.LoginForm{
		Username: strings.TrimSpace(m.username.Value()),
		Password: m.password.Value(),
		Remember: m.remember,
	}
	if form.Username == "" || form.Password == "" {
		m.errMsg = loginErrorText(service.ErrEmptyCredentials)
		return nil
	}

	m.errMsg = ""
	m.submitting = true
	return m.cmdLogin(form)
}

func (m *loginModel) View() string {
	var b strings.Builder
	b.WriteString("Driver   │ [")
	b.WriteString(m.username.View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.password.View())
	b.WriteString("]\n")

	check := "[ ]"
	if m.remember {
		check = "[x]"
	}
	line := check + " Remember me"
	if m.focus == focusRemember {
		line = cursorStyle.Render("> " + line)
	} else {
		line = "  " + line
	}
	b.WriteString("\n")
	b.WriteString(line)
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("DRIVER LOGIN", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ space: toggle │ enter: sign in │ ?: about")
}

func (m *loginModel) cmdLogin(form models.LoginForm) tea.Cmd {
	ctx := m.ctx
	login := m.login

	return func() tea.Msg {
		driver, err := login.Login(ctx, form)
		return loginResultMsg{driver: driver, err: err}
	}
}

func (m *loginModel) cmdLoadRemembered() tea.Cmd {
	ctx := m.ctx
	login := m.login

	return func() tea.Msg {
		driver, err := login.RememberedDriver(ctx)
		return rememberedMsg{driver: driver, err: err}
	}
}

func (m *loginModel) setFocus(i int) {
	m.focus = i
	m.username.Blur()
	m.password.Blur()
	switch i {
	case focusUsername:
		m.username.Focus()
	case focusPassword:
		m.password.Focus()
	}
}

func loginErrorText(err error) string {
	if errors.Is(err, service.ErrEmptyCredentials) {
		return "driver name and password are required"
	}
	return err.Error()
}
