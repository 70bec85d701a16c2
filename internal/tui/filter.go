package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zlend/internal/query"
	"github.com/zarlcorp/zlend/internal/userdata"
)

var filterLabels = map[query.Field]string{
	query.FieldOrganization: "Organization",
	query.FieldUsername:     "Username",
	query.FieldEmail:        "Email",
	query.FieldDate:         "Date",
	query.FieldPhone:        "Phone Number",
	query.FieldStatus:       "Status",
}

var filterPlaceholders = map[query.Field]string{
	query.FieldOrganization: "Select",
	query.FieldUsername:     "User",
	query.FieldEmail:        "Email",
	query.FieldDate:         "Date",
	query.FieldPhone:        "Phone Number",
	query.FieldStatus:       "Select",
}

// filterModel is the filter form over the users table.
type filterModel struct {
	inputs  []textinput.Model
	focus   int
	options map[int][]string // cycle options for select-style fields
	chosen  map[int]int
	flash   string
}

// applyFilterMsg replaces the table filter and returns to the users view.
type applyFilterMsg struct {
	filter query.Filter
}

func newFilterModel(current query.Filter, orgs []string) filterModel {
	statuses := make([]string, 0, len(userdata.Statuses)+1)
	statuses = append(statuses, "")
	for _, st := range userdata.Statuses {
		statuses = append(statuses, string(st))
	}

	m := filterModel{
		inputs:  make([]textinput.Model, len(query.Fields)),
		options: make(map[int][]string),
		chosen:  make(map[int]int),
	}

	for i, f := range query.Fields {
		ti := textinput.New()
		ti.Placeholder = filterPlaceholders[f]
		ti.CharLimit = 64
		ti.Width = 30
		ti.SetValue(current.Get(f))
		m.inputs[i] = ti

		switch f {
		case query.FieldOrganization:
			m.options[i] = append([]string{""}, orgs...)
		case query.FieldStatus:
			m.options[i] = statuses
		}
	}

	for i, opts := range m.options {
		m.chosen[i] = indexOf(opts, m.inputs[i].Value())
	}

	m.inputs[0].Focus()
	return m
}

func indexOf(opts []string, v string) int {
	for i, o := range opts {
		if o == v {
			return i
		}
	}
	return 0
}

func (m filterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m filterModel) Update(msg tea.Msg) (filterModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m.updateInput(msg)
}

func (m filterModel) handleKey(msg tea.KeyMsg) (filterModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewUsers} }
	}

	n := len(m.inputs)
	switch msg.String() {
	case "tab":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % n
		m.inputs[m.focus].Focus()
		return m, textinput.Blink

	case "shift+tab":
		m.inputs[m.focus].Blur()
		m.focus = (m.focus - 1 + n) % n
		m.inputs[m.focus].Focus()
		return m, textinput.Blink

	case "ctrl+r":
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		for i := range m.chosen {
			m.chosen[i] = 0
		}
		return m, func() tea.Msg { return applyFilterMsg{} }
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.submit()
	}

	// select-style fields cycle through their options on space
	if opts, ok := m.options[m.focus]; ok && msg.String() == " " {
		next := (m.chosen[m.focus] + 1) % len(opts)
		m.chosen[m.focus] = next
		m.inputs[m.focus].SetValue(opts[next])
		return m, nil
	}

	return m.updateInput(msg)
}

func (m filterModel) updateInput(msg tea.Msg) (filterModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m filterModel) submit() (filterModel, tea.Cmd) {
	var flt query.Filter
	for i, f := range query.Fields {
		v := strings.TrimSpace(m.inputs[i].Value())
		if f == query.FieldStatus && v != "" {
			st, ok := userdata.ParseStatus(v)
			if !ok {
				m.flash = fmt.Sprintf("unknown status %q", v)
				return m, clearFlashAfter()
			}
			v = string(st)
		}

		var err error
		flt, err = flt.Set(f, v)
		if err != nil {
			m.flash = err.Error()
			return m, clearFlashAfter()
		}
	}

	return m, func() tea.Msg { return applyFilterMsg{filter: flt} }
}

func (m filterModel) View() string {
	s := "\n"

	for i, f := range query.Fields {
		label := zstyle.MutedText.Render(fmt.Sprintf("  %-14s", filterLabels[f]))
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}

		fieldView := m.inputs[i].View()
		if _, ok := m.options[i]; ok {
			fieldView += " " + zstyle.MutedText.Render("[space to cycle]")
		}

		s += fmt.Sprintf("  %s%s %s\n", cursor, label, fieldView)
	}

	s += "\n"

	if m.flash != "" {
		s += "  " + zstyle.StatusErr.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}
