package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zlend/internal/audit"
	"github.com/zarlcorp/zlend/internal/userdata"
)

var detailTabs = []string{
	"General Details",
	"Documents",
	"Bank Details",
	"Loans",
	"Savings",
	"App and System",
}

// detailField is one labeled value; section starts a new block when set.
type detailField struct {
	section string
	label   string
	value   string
}

// detailModel shows one user's full record across tabs.
type detailModel struct {
	user   userdata.User
	tab    int
	fields []detailField
	cursor int
	flash  string
}

func newDetailModel(u userdata.User) detailModel {
	m := detailModel{user: u}
	m.fields = tabFields(u, m.tab)
	return m
}

// tabFields returns the fields shown on tab i. Tabs without data return nil.
func tabFields(u userdata.User, i int) []detailField {
	switch detailTabs[i] {
	case "General Details":
		return []detailField{
			{"Personal Information", "FULL NAME", u.Personal.FullName},
			{"", "PHONE NUMBER", u.Personal.Phone},
			{"", "EMAIL ADDRESS", u.Personal.Email},
			{"", "BVN", u.Personal.BVN},
			{"", "GENDER", string(u.Personal.Gender)},
			{"", "MARITAL STATUS", string(u.Personal.MaritalStatus)},
			{"", "CHILDREN", userdata.ChildrenLabel(u.Personal.Children)},
			{"", "TYPE OF RESIDENCE", string(u.Personal.Residence)},
			{"Education and Employment", "LEVEL OF EDUCATION", string(u.Employment.Education)},
			{"", "EMPLOYMENT STATUS", string(u.Employment.Status)},
			{"", "SECTOR OF EMPLOYMENT", string(u.Employment.Sector)},
			{"", "DURATION OF EMPLOYMENT", u.Employment.Duration},
			{"", "OFFICE EMAIL", u.Employment.OfficeEmail},
			{"", "MONTHLY INCOME", userdata.FormatIncome(u.Employment.MonthlyIncome)},
			{"", "LOAN REPAYMENT", userdata.FormatNaira(u.Employment.LoanRepayment)},
			{"Socials", "TWITTER", userdata.HandleOrNA(u.Socials.Twitter)},
			{"", "FACEBOOK", userdata.HandleOrNA(u.Socials.Facebook)},
			{"", "INSTAGRAM", userdata.HandleOrNA(u.Socials.Instagram)},
			{"Guarantor", "FULL NAME", u.Guarantor.FullName},
			{"", "PHONE NUMBER", u.Guarantor.Phone},
			{"", "EMAIL ADDRESS", u.Guarantor.Email},
			{"", "RELATIONSHIP", string(u.Guarantor.Relationship)},
		}

	case "Bank Details":
		return []detailField{
			{"Account", "BANK", u.BankName},
			{"", "ACCOUNT NUMBER", u.BankAccount},
			{"", "ACCOUNT BALANCE", userdata.FormatNaira(u.AccountBalance)},
		}

	case "App and System":
		lastLogin := "never"
		if u.LastLogin != nil {
			lastLogin = userdata.FormatDate(*u.LastLogin)
		}
		return []detailField{
			{"Account", "USER ID", u.ID},
			{"", "ORGANIZATION", u.Organization},
			{"", "USERNAME", u.Username},
			{"", "STATUS", string(u.Status)},
			{"", "DATE JOINED", u.DateJoined},
			{"Activity", "CREATED", userdata.FormatDate(u.CreatedAt)},
			{"", "UPDATED", userdata.FormatDate(u.UpdatedAt)},
			{"", "LAST LOGIN", lastLogin},
			{"Verification", "EMAIL VERIFIED", strconv.FormatBool(u.EmailVerified)},
			{"", "PHONE VERIFIED", strconv.FormatBool(u.PhoneVerified)},
			{"", "BVN VERIFIED", strconv.FormatBool(u.BVNVerified)},
		}
	}
	return nil
}

func (m detailModel) Init() tea.Cmd {
	return nil
}

func (m detailModel) Update(msg tea.Msg) (detailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m detailModel) setTab(i int) detailModel {
	m.tab = (i + len(detailTabs)) % len(detailTabs)
	m.fields = tabFields(m.user, m.tab)
	m.cursor = 0
	return m
}

func (m detailModel) handleKey(msg tea.KeyMsg) (detailModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewUsers} }
	}

	switch msg.String() {
	case "tab", "right", "l":
		return m.setTab(m.tab + 1), nil
	case "shift+tab", "left", "h":
		return m.setTab(m.tab - 1), nil
	case "b":
		u := m.user
		return m, func() tea.Msg { return userActionMsg{action: audit.ActionBlacklist, user: u} }
	case "a":
		u := m.user
		return m, func() tea.Msg { return userActionMsg{action: audit.ActionActivate, user: u} }
	}

	if len(m.fields) == 0 {
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < len(m.fields)-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		if err := copyToClipboard(m.fields[m.cursor].value); err != nil {
			m.flash = "copy: " + err.Error()
			return m, clearFlashAfter()
		}
		m.flash = "copied!"
		return m, clearFlashAfter()
	}

	if msg.String() == "c" {
		if err := copyToClipboard(m.allFieldsText()); err != nil {
			m.flash = "copy: " + err.Error()
			return m, clearFlashAfter()
		}
		m.flash = "copied all!"
		return m, clearFlashAfter()
	}

	return m, nil
}

func (m detailModel) allFieldsText() string {
	var b strings.Builder
	for _, f := range m.fields {
		if f.section != "" {
			fmt.Fprintf(&b, "%s\n", f.section)
		}
		fmt.Fprintf(&b, "%s: %s\n", f.label, f.value)
	}
	return b.String()
}

func (m detailModel) summary() string {
	u := m.user
	name := zstyle.Subtitle.Render(u.Personal.FullName)
	id := zstyle.MutedText.Render(u.ID)
	tier := zstyle.MutedText.Render("User's Tier ") + userdata.TierStars(u.Tier)
	balance := zstyle.Title.Render(userdata.FormatNaira(u.AccountBalance))
	bank := zstyle.MutedText.Render(u.BankAccount + "/" + u.BankName)

	return fmt.Sprintf("  %s  %s  %s\n  %s  %s  %s\n",
		name, id, statusBadge(u.Status), tier, balance, bank)
}

func (m detailModel) tabsView() string {
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true).Underline(true)

	parts := make([]string, len(detailTabs))
	for i, t := range detailTabs {
		if i == m.tab {
			parts[i] = accentStyle.Render(t)
		} else {
			parts[i] = zstyle.MutedText.Render(t)
		}
	}
	return "  " + strings.Join(parts, "   ") + "\n"
}

func (m detailModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	s := "\n" + m.summary() + "\n" + m.tabsView() + "\n"

	if len(m.fields) == 0 {
		s += "  " + zstyle.MutedText.Render("nothing on file for "+strings.ToLower(detailTabs[m.tab])) + "\n"
	}

	for i, f := range m.fields {
		if f.section != "" {
			if i > 0 {
				s += "\n"
			}
			s += "  " + zstyle.Subtitle.Render(f.section) + "\n"
		}
		label := zstyle.MutedText.Render(fmt.Sprintf("%-24s", f.label))
		if i == m.cursor {
			s += "  " + accentStyle.Render("▸") + " " + label + " " + f.value + "\n"
		} else {
			s += "    " + label + " " + f.value + "\n"
		}
	}

	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}

// statusBadge colours a status label.
func statusBadge(st userdata.Status) string {
	switch st {
	case userdata.StatusActive:
		return zstyle.StatusOK.Render(string(st))
	case userdata.StatusBlacklisted:
		return zstyle.StatusErr.Render(string(st))
	case userdata.StatusPending:
		return zstyle.StatusWarn.Render(string(st))
	}
	return zstyle.MutedText.Render(string(st))
}
