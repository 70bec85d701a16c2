package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zlend/internal/userdata"
)

type menuChoice int

const (
	menuUsers menuChoice = iota
	menuAudit
	menuQuit
)

var menuItems = []string{
	"Users",
	"Audit log",
	"Quit",
}

// dashboardModel shows the headline counts and the main menu.
type dashboardModel struct {
	cursor  int
	version string
	stats   userdata.Stats
}

// navigateMsg tells the root model to switch views.
type navigateMsg struct {
	view viewID
}

func newDashboardModel(version string, stats userdata.Stats) dashboardModel {
	return dashboardModel{version: version, stats: stats}
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyUp) {
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyDown) {
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
			return m, nil
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m, m.selectItem()
		}
	}

	return m, nil
}

func (m dashboardModel) selectItem() tea.Cmd {
	switch menuChoice(m.cursor) {
	case menuUsers:
		return func() tea.Msg { return navigateMsg{view: viewUsers} }
	case menuAudit:
		return func() tea.Msg { return navigateMsg{view: viewAudit} }
	case menuQuit:
		return tea.Quit
	}
	return nil
}

var statCard = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 2).
	MarginRight(1)

func (m dashboardModel) cards() string {
	cards := []struct {
		label string
		value int
	}{
		{"USERS", m.stats.Users},
		{"ACTIVE USERS", m.stats.ActiveUsers},
		{"USERS WITH LOANS", m.stats.UsersWithLoans},
		{"USERS WITH SAVINGS", m.stats.UsersWithSavings},
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := zstyle.MutedText.Render(c.label) + "\n" + zstyle.Title.Render(strconv.Itoa(c.value))
		rendered = append(rendered, statCard.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m dashboardModel) View() string {
	title := zstyle.Title.Render("zlend")
	ver := zstyle.MutedText.Render(m.version)

	s := fmt.Sprintf("\n  %s %s\n\n", title, ver)
	s += lipgloss.NewStyle().MarginLeft(2).Render(m.cards()) + "\n\n"

	for i, item := range menuItems {
		if m.cursor == i {
			s += zstyle.Highlight.Render(fmt.Sprintf("  > %s", item)) + "\n"
		} else {
			s += fmt.Sprintf("    %s\n", item)
		}
	}

	s += "\n  " + zstyle.MutedText.Render("j/k navigate  enter select  q quit") + "\n\n"
	return s
}
