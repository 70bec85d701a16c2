// Package tui implements the root Bubble Tea model for zlend.
package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zlend/internal/audit"
	"github.com/zarlcorp/zlend/internal/query"
	"github.com/zarlcorp/zlend/internal/store"
	"github.com/zarlcorp/zlend/internal/userdata"
)

type viewID int

const (
	viewLogin viewID = iota
	viewDashboard
	viewUsers
	viewFilter
	viewDetail
	viewAudit
)

// accent is the highlight colour used across views.
var accent = zstyle.ZburnAccent

// Model is the root TUI model.
type Model struct {
	version  string
	dataDir  string
	records  []userdata.User
	pageSize int
	firstRun bool
	logger   *slog.Logger

	store    *store.Store
	audit    *audit.Log
	operator string
	table    *query.Table

	active    viewID
	login     loginModel
	dashboard dashboardModel
	users     usersModel
	filter    filterModel
	detail    detailModel
	auditLog  auditModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model over a generated record set. The records
// are shared read-only by every view.
func New(version, dataDir string, records []userdata.User, pageSize int, firstRun bool, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	return Model{
		version:  version,
		dataDir:  dataDir,
		records:  records,
		pageSize: pageSize,
		firstRun: firstRun,
		logger:   logger,
		active:   viewLogin,
		login:    newLoginModel(firstRun),
	}
}

func (m Model) Init() tea.Cmd {
	return m.login.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loginSubmitMsg:
		return m.openStore(msg.email, msg.password)

	case navigateMsg:
		return m.navigate(msg.view)

	case viewUserMsg:
		m.detail = newDetailModel(msg.user)
		m.active = viewDetail
		return m, tea.ClearScreen

	case userActionMsg:
		return m.handleAction(msg.action, msg.user)

	case applyFilterMsg:
		m.table.ApplyFilter(msg.filter)
		m.savePreferences()
		m.users = m.users.refresh()
		m.active = viewUsers
		return m, tea.ClearScreen

	case pageSizeChangedMsg:
		m.savePreferences()
		return m, nil
	}

	return m.updateActive(msg)
}

func (m Model) View() string {
	// login and dashboard render their own header
	switch m.active {
	case viewLogin:
		return m.login.View()
	case viewDashboard:
		return m.dashboard.View()
	}

	var content string
	switch m.active {
	case viewUsers:
		content = m.users.View()
	case viewFilter:
		content = m.filter.View()
	case viewDetail:
		content = m.detail.View()
	case viewAudit:
		content = m.auditLog.View()
	}

	header := zstyle.RenderHeader("zlend", viewTitle(m.active), accent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active, m))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewUsers:
		return "Users"
	case viewFilter:
		return "Filter Users"
	case viewDetail:
		return "User Details"
	case viewAudit:
		return "Audit Log"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID, m Model) []zstyle.HelpPair {
	switch id {
	case viewUsers:
		if m.users.actions.open {
			return []zstyle.HelpPair{
				{Key: "j/k", Desc: "navigate"},
				{Key: "enter", Desc: "select"},
				{Key: "esc", Desc: "close"},
			}
		}
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "h/l", Desc: "page"},
			{Key: "enter", Desc: "view"},
			{Key: "m", Desc: "actions"},
			{Key: "f", Desc: "filter"},
			{Key: "r", Desc: "reset"},
			{Key: "+", Desc: "page size"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewFilter:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "shift+tab", Desc: "prev"},
			{Key: "space", Desc: "cycle"},
			{Key: "enter", Desc: "filter"},
			{Key: "ctrl+r", Desc: "reset"},
			{Key: "esc", Desc: "cancel"},
		}
	case viewDetail:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next tab"},
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "copy field"},
			{Key: "c", Desc: "copy all"},
			{Key: "b", Desc: "blacklist"},
			{Key: "a", Desc: "activate"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	case viewAudit:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewLogin:
		m.login, cmd = m.login.Update(msg)
	case viewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case viewUsers:
		m.users, cmd = m.users.Update(msg)
	case viewFilter:
		m.filter, cmd = m.filter.Update(msg)
	case viewDetail:
		m.detail, cmd = m.detail.Update(msg)
	case viewAudit:
		m.auditLog, cmd = m.auditLog.Update(msg)
	}

	return m, cmd
}

func (m Model) openStore(email, password string) (tea.Model, tea.Cmd) {
	s, err := store.OpenDir(m.dataDir, []byte(password))
	if err != nil {
		m.logger.Warn("unlock store", "err", err)
		m.login, _ = m.login.Update(loginErrMsg{err: err})
		return m, nil
	}

	m.store = s
	m.audit = audit.New(s.Audit(), m.logger)
	m.operator = email

	prefs := s.Preferences()
	size := m.pageSize
	if prefs.PageSize > 0 {
		size = prefs.PageSize
	}
	m.table = query.NewTable(m.records, size)
	m.table.ApplyFilter(prefs.Filter)

	m.logger.Info("store unlocked", "operator", email, "users", len(m.records))
	return m.navigate(viewDashboard)
}

func (m Model) navigate(view viewID) (tea.Model, tea.Cmd) {
	switch view {
	case viewDashboard:
		m.dashboard = newDashboardModel(m.version, userdata.Summarize(m.records))
		m.active = viewDashboard
		return m, tea.ClearScreen

	case viewUsers:
		m.users = newUsersModel(m.table)
		m.active = viewUsers
		return m, tea.ClearScreen

	case viewFilter:
		m.filter = newFilterModel(m.table.Filter(), userdata.Organizations(m.records))
		m.active = viewFilter
		return m, tea.Batch(tea.ClearScreen, m.filter.Init())

	case viewAudit:
		return m.loadAudit()
	}

	return m, nil
}

func (m Model) loadAudit() (tea.Model, tea.Cmd) {
	entries, err := m.audit.List()
	if err != nil {
		m.auditLog = newAuditModel(nil)
		m.auditLog.flash = "load: " + err.Error()
		m.active = viewAudit
		return m, clearFlashAfter()
	}

	m.auditLog = newAuditModel(entries)
	m.active = viewAudit
	return m, tea.ClearScreen
}

func (m Model) handleAction(action audit.Action, u userdata.User) (tea.Model, tea.Cmd) {
	flash := string(action) + " recorded for " + u.ID
	if _, err := m.audit.Record(action, u.ID, m.operator); err != nil {
		m.logger.Error("record action", "action", string(action), "user", u.ID, "err", err)
		flash = string(action) + ": " + err.Error()
	}

	switch m.active {
	case viewDetail:
		m.detail.flash = flash
	default:
		m.users.flash = flash
	}
	return m, clearFlashAfter()
}

// savePreferences persists the table's page size and filter. Failures are
// logged; the table keeps working from memory.
func (m Model) savePreferences() {
	if m.store == nil || m.table == nil {
		return
	}
	prefs := store.Preferences{
		PageSize: m.table.Page().Size,
		Filter:   m.table.Filter(),
	}
	if err := m.store.SavePreferences(prefs); err != nil {
		m.logger.Error("save preferences", "err", err)
	}
}

// Close cleans up resources. Call after the program exits.
func (m Model) Close() {
	if m.store != nil {
		m.store.Close()
	}
}
