package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zlend/internal/audit"
	"github.com/zarlcorp/zlend/internal/userdata"
)

// auditModel lists recorded row actions, newest first.
type auditModel struct {
	entries []audit.Entry
	cursor  int
	flash   string
}

func newAuditModel(entries []audit.Entry) auditModel {
	return auditModel{entries: entries}
}

func (m auditModel) Init() tea.Cmd {
	return nil
}

func (m auditModel) Update(msg tea.Msg) (auditModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m auditModel) handleKey(msg tea.KeyMsg) (auditModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewDashboard} }
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil
	}

	return m, nil
}

func (m auditModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	s := "\n"

	if len(m.entries) == 0 {
		s += "  " + zstyle.MutedText.Render("no actions recorded") + "\n"
	}

	for i, e := range m.entries {
		line := fmt.Sprintf("%-22s %-10s %-14s %s",
			userdata.FormatDate(e.At), e.Action, e.UserID, e.Operator)
		if i == m.cursor {
			s += "  " + accentStyle.Render("▸") + " " + line + "\n"
		} else {
			s += "    " + line + "\n"
		}
	}

	s += "\n"

	if m.flash != "" {
		s += "  " + zstyle.StatusErr.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
