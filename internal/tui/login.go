package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
)

const (
	loginEmail = iota
	loginPassword
)

// loginModel handles the operator email and master password prompt.
type loginModel struct {
	inputs     [2]textinput.Model
	focus      int
	firstRun   bool
	confirming bool
	firstPass  string
	errMsg     string
}

// loginSubmitMsg is sent when the operator submits the login form.
type loginSubmitMsg struct {
	email    string
	password string
}

// loginErrMsg is sent when the store could not be unlocked.
type loginErrMsg struct {
	err error
}

func newLoginModel(firstRun bool) loginModel {
	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 128
	email.Width = 40
	email.Focus()

	pass := textinput.New()
	pass.Placeholder = "Password"
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '*'
	pass.CharLimit = 128
	pass.Width = 40

	return loginModel{
		inputs:   [2]textinput.Model{email, pass},
		firstRun: firstRun,
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyTab) || msg.Type == tea.KeyShiftTab {
			return m.setFocus(1 - m.focus), nil
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			if m.focus == loginEmail {
				return m.setFocus(loginPassword), nil
			}
			return m.handleSubmit()
		}

	case loginErrMsg:
		m.errMsg = msg.err.Error()
		m.inputs[loginPassword].SetValue("")
		m.confirming = false
		m.firstPass = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) setFocus(i int) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

func (m loginModel) handleSubmit() (loginModel, tea.Cmd) {
	val := m.inputs[loginPassword].Value()
	if val == "" {
		return m, nil
	}

	// first run: need to confirm password
	if m.firstRun && !m.confirming {
		m.firstPass = val
		m.confirming = true
		m.inputs[loginPassword].SetValue("")
		m.errMsg = ""
		return m, nil
	}

	if m.firstRun && m.confirming && val != m.firstPass {
		m.errMsg = "passwords do not match"
		m.confirming = false
		m.firstPass = ""
		m.inputs[loginPassword].SetValue("")
		return m, nil
	}

	email := strings.TrimSpace(m.inputs[loginEmail].Value())
	m.errMsg = ""
	return m, func() tea.Msg {
		return loginSubmitMsg{email: email, password: val}
	}
}

func (m loginModel) View() string {
	indent := lipgloss.NewStyle().MarginLeft(2)
	logo := indent.Render(
		zstyle.StyledLogo(lipgloss.NewStyle().Foreground(accent)),
	)
	toolName := indent.Render(zstyle.MutedText.Render("zlend"))

	heading := zstyle.Title.Render("Welcome!")
	sub := zstyle.MutedText.Render("Enter details to login.")

	var prompt string
	switch {
	case m.firstRun && m.confirming:
		prompt = "confirm password:"
	case m.firstRun:
		prompt = "create master password:"
	default:
		prompt = "password:"
	}

	s := fmt.Sprintf("\n%s\n%s\n\n  %s\n  %s\n\n", logo, toolName, heading, sub)
	s += fmt.Sprintf("  %s\n  %s\n\n", "email:", m.inputs[loginEmail].View())
	s += fmt.Sprintf("  %s\n  %s\n", prompt, m.inputs[loginPassword].View())

	if m.errMsg != "" {
		s += "\n  " + zstyle.StatusErr.Render(m.errMsg)
	}

	s += "\n"
	return s
}
