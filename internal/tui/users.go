package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zlend/internal/audit"
	"github.com/zarlcorp/zlend/internal/query"
	"github.com/zarlcorp/zlend/internal/userdata"
)

var userColumns = []table.Column{
	{Title: "ORGANIZATION", Width: 14},
	{Title: "USERNAME", Width: 14},
	{Title: "EMAIL", Width: 28},
	{Title: "PHONE NUMBER", Width: 13},
	{Title: "DATE JOINED", Width: 22},
	{Title: "STATUS", Width: 11},
}

var (
	prevPageKey = key.NewBinding(key.WithKeys("h", "left"))
	nextPageKey = key.NewBinding(key.WithKeys("l", "right"))
)

type actionChoice int

const (
	actionView actionChoice = iota
	actionBlacklist
	actionActivate
)

var actionItems = []string{
	"View Details",
	"Blacklist User",
	"Activate User",
}

// actionsMenu is the per-row menu opened with m.
type actionsMenu struct {
	open   bool
	cursor int
}

// usersModel displays one page of the filtered users.
type usersModel struct {
	table   *query.Table
	grid    table.Model
	pager   paginator.Model
	cursor  int
	actions actionsMenu
	flash   string
}

// viewUserMsg requests the detail view for a user.
type viewUserMsg struct {
	user userdata.User
}

// userActionMsg requests a blacklist or activate record for a user.
type userActionMsg struct {
	action audit.Action
	user   userdata.User
}

// pageSizeChangedMsg tells the root to persist the new page size.
type pageSizeChangedMsg struct{}

func newUsersModel(t *query.Table) usersModel {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(accent)
	styles.Selected = styles.Selected.Foreground(accent)

	grid := table.New(
		table.WithColumns(userColumns),
		table.WithFocused(true),
		table.WithStyles(styles),
	)

	pager := paginator.New()
	pager.Type = paginator.Arabic

	m := usersModel{table: t, grid: grid, pager: pager}
	return m.refresh()
}

// refresh rebuilds the grid and pager from the table's current result.
func (m usersModel) refresh() usersModel {
	res := m.table.Result()
	page := m.table.Page()

	rows := make([]table.Row, 0, len(res.Users))
	for _, u := range res.Users {
		rows = append(rows, table.Row{
			u.Organization,
			u.Username,
			u.Email,
			u.Phone,
			u.DateJoined,
			string(u.Status),
		})
	}

	m.grid.SetHeight(page.Size + 1)
	m.grid.SetRows(rows)
	if m.cursor > len(rows)-1 {
		m.cursor = max(len(rows)-1, 0)
	}
	m.grid.SetCursor(m.cursor)

	m.pager.PerPage = page.Size
	m.pager.TotalPages = res.TotalPages
	m.pager.Page = page.Current - 1
	return m
}

func (m usersModel) Init() tea.Cmd {
	return nil
}

func (m usersModel) Update(msg tea.Msg) (usersModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.actions.open {
			return m.handleActionsKey(msg)
		}
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m usersModel) selected() (userdata.User, bool) {
	res := m.table.Result()
	if m.cursor < 0 || m.cursor >= len(res.Users) {
		return userdata.User{}, false
	}
	return res.Users[m.cursor], true
}

func (m usersModel) handleKey(msg tea.KeyMsg) (usersModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewDashboard} }
	}

	switch {
	case key.Matches(msg, zstyle.KeyUp):
		if m.cursor > 0 {
			m.cursor--
			m.grid.SetCursor(m.cursor)
		}
		return m, nil

	case key.Matches(msg, zstyle.KeyDown):
		if m.cursor < len(m.table.Result().Users)-1 {
			m.cursor++
			m.grid.SetCursor(m.cursor)
		}
		return m, nil

	case key.Matches(msg, prevPageKey):
		if m.table.Prev() {
			m.cursor = 0
			return m.refresh(), nil
		}
		return m, nil

	case key.Matches(msg, nextPageKey):
		if m.table.Next() {
			m.cursor = 0
			return m.refresh(), nil
		}
		return m, nil
	}

	switch msg.String() {
	case "+":
		size := m.table.CyclePageSize()
		m.cursor = 0
		m = m.refresh()
		m.flash = fmt.Sprintf("showing %d per page", size)
		return m, tea.Batch(
			func() tea.Msg { return pageSizeChangedMsg{} },
			clearFlashAfter(),
		)

	case "f":
		return m, func() tea.Msg { return navigateMsg{view: viewFilter} }

	case "r":
		m.table.ResetFilters()
		m.cursor = 0
		m = m.refresh()
		m.flash = "filters cleared"
		return m, tea.Batch(
			func() tea.Msg { return applyFilterMsg{filter: query.Filter{}} },
			clearFlashAfter(),
		)
	}

	u, ok := m.selected()
	if !ok {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m, func() tea.Msg { return viewUserMsg{user: u} }
	}

	if msg.String() == "m" {
		m.actions = actionsMenu{open: true}
		return m, nil
	}

	return m, nil
}

func (m usersModel) handleActionsKey(msg tea.KeyMsg) (usersModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, zstyle.KeyBack):
		m.actions.open = false
		return m, nil

	case key.Matches(msg, zstyle.KeyUp):
		if m.actions.cursor > 0 {
			m.actions.cursor--
		}
		return m, nil

	case key.Matches(msg, zstyle.KeyDown):
		if m.actions.cursor < len(actionItems)-1 {
			m.actions.cursor++
		}
		return m, nil

	case key.Matches(msg, zstyle.KeyEnter):
		m.actions.open = false
		u, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, selectAction(actionChoice(m.actions.cursor), u)
	}

	return m, nil
}

func selectAction(c actionChoice, u userdata.User) tea.Cmd {
	switch c {
	case actionView:
		return func() tea.Msg { return viewUserMsg{user: u} }
	case actionBlacklist:
		return func() tea.Msg { return userActionMsg{action: audit.ActionBlacklist, user: u} }
	case actionActivate:
		return func() tea.Msg { return userActionMsg{action: audit.ActionActivate, user: u} }
	}
	return nil
}

func (m usersModel) View() string {
	res := m.table.Result()
	page := m.table.Page()

	s := "\n"

	if !m.table.Filter().Empty() {
		s += "  " + zstyle.MutedText.Render("filtered: "+describeFilter(m.table.Filter())) + "\n\n"
	}

	if res.TotalMatching == 0 {
		s += "  " + zstyle.MutedText.Render("no users match the current filters") + "\n"
	} else {
		s += lipgloss.NewStyle().MarginLeft(2).Render(m.grid.View()) + "\n"
	}

	if m.actions.open {
		s += "\n" + m.actionsView()
	}

	s += "\n"
	s += fmt.Sprintf("  Showing %d out of %d", len(res.Users), res.TotalMatching)
	s += "    " + zstyle.MutedText.Render(fmt.Sprintf("%d per page", page.Size))
	s += "    " + m.pager.View() + "\n"

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}

func (m usersModel) actionsView() string {
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	var s string
	for i, item := range actionItems {
		if i == m.actions.cursor {
			s += "    " + accentStyle.Render("▸") + " " + item + "\n"
		} else {
			s += "      " + item + "\n"
		}
	}
	return s
}

// describeFilter renders the non-empty filter fields as field=value pairs.
func describeFilter(flt query.Filter) string {
	var s string
	for _, f := range query.Fields {
		v := flt.Get(f)
		if v == "" {
			continue
		}
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("%s=%q", f, v)
	}
	return s
}
