package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/zarlcorp/zlend/internal/audit"
	"github.com/zarlcorp/zlend/internal/userdata"
)

func testUsers(t *testing.T, n int) []userdata.User {
	t.Helper()
	g := userdata.New(userdata.WithNow(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)))
	users, err := g.Generate(n, userdata.DefaultSeed)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return users
}

type memCollection struct {
	entries []audit.Entry
}

func (c *memCollection) Put(_ string, e audit.Entry) error {
	c.entries = append(c.entries, e)
	return nil
}

func (c *memCollection) List() ([]audit.Entry, error) {
	return append([]audit.Entry(nil), c.entries...), nil
}

func TestCmdUsersFirstPage(t *testing.T) {
	users := testUsers(t, 25)
	var buf bytes.Buffer

	if err := CmdUsers(&buf, users, 10, nil); err != nil {
		t.Fatalf("users: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "ORGANIZATION") {
		t.Error("missing header")
	}
	if !strings.Contains(out, users[0].ID) || !strings.Contains(out, users[9].ID) {
		t.Error("first page should list users 0..9")
	}
	if strings.Contains(out, users[10].ID) {
		t.Error("first page should not list user 10")
	}
	if !strings.Contains(out, "showing 10 out of 25  page 1/3") {
		t.Errorf("unexpected footer in:\n%s", out)
	}
}

func TestCmdUsersJSONFilterAndPage(t *testing.T) {
	users := testUsers(t, 100)
	var buf bytes.Buffer

	args := []string{"--status", "Active", "--page", "2", "--per-page", "5", "--json"}
	if err := CmdUsers(&buf, users, 10, args); err != nil {
		t.Fatalf("users: %v", err)
	}

	var got struct {
		Users []userdata.User `json:"users"`
		Page  struct {
			Current int `json:"current"`
			Size    int `json:"size"`
		} `json:"page"`
		TotalMatching int `json:"total_matching"`
		TotalPages    int `json:"total_pages"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	var active int
	for _, u := range users {
		if u.Status == userdata.StatusActive {
			active++
		}
	}
	if got.TotalMatching != active {
		t.Errorf("total matching = %d, want %d", got.TotalMatching, active)
	}
	if got.Page.Current != 2 || got.Page.Size != 5 {
		t.Errorf("page = %+v", got.Page)
	}
	for _, u := range got.Users {
		if u.Status != userdata.StatusActive {
			t.Errorf("user %s has status %s", u.ID, u.Status)
		}
	}
}

func TestCmdUsersPageOutOfRangeShowsFirst(t *testing.T) {
	users := testUsers(t, 15)
	var buf bytes.Buffer

	if err := CmdUsers(&buf, users, 10, []string{"--page", "9"}); err != nil {
		t.Fatalf("users: %v", err)
	}
	if !strings.Contains(buf.String(), "page 1/2") {
		t.Errorf("expected page 1, got:\n%s", buf.String())
	}
}

func TestCmdUsersNoMatches(t *testing.T) {
	var buf bytes.Buffer
	if err := CmdUsers(&buf, testUsers(t, 10), 10, []string{"--username", "zzzz"}); err != nil {
		t.Fatalf("users: %v", err)
	}
	if !strings.Contains(buf.String(), "no matching users") {
		t.Errorf("got %q", buf.String())
	}
}

func TestCmdUsersBadStatus(t *testing.T) {
	err := CmdUsers(&bytes.Buffer{}, testUsers(t, 5), 10, []string{"--status", "active"})
	if err == nil {
		t.Fatal("expected error for lowercase status")
	}
}

func TestCmdUsersBadFlag(t *testing.T) {
	err := CmdUsers(&bytes.Buffer{}, testUsers(t, 5), 10, []string{"--bvn", "1"})
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestCmdUser(t *testing.T) {
	users := testUsers(t, 5)
	var buf bytes.Buffer

	if err := CmdUser(&buf, users, []string{users[3].ID}); err != nil {
		t.Fatalf("user: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		users[3].Username,
		users[3].Personal.BVN,
		users[3].Guarantor.FullName,
		"PERSONAL INFORMATION",
		"EDUCATION AND EMPLOYMENT",
		"SOCIALS",
		"GUARANTOR",
		"₦",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestCmdUserJSON(t *testing.T) {
	users := testUsers(t, 5)
	var buf bytes.Buffer

	if err := CmdUser(&buf, users, []string{"--json", users[1].ID}); err != nil {
		t.Fatalf("user: %v", err)
	}

	var got userdata.User
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != users[1].ID || got.Guarantor != users[1].Guarantor {
		t.Errorf("got %+v", got)
	}
}

func TestCmdUserNotFound(t *testing.T) {
	err := CmdUser(&bytes.Buffer{}, testUsers(t, 5), []string{"LSQF999999999"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCmdUserUsage(t *testing.T) {
	if err := CmdUser(&bytes.Buffer{}, testUsers(t, 5), nil); err == nil {
		t.Fatal("expected usage error")
	}
}

func TestCmdOrgs(t *testing.T) {
	users := testUsers(t, 50)
	var buf bytes.Buffer
	CmdOrgs(&buf, users)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(userdata.Organizations(users)) {
		t.Errorf("got %d orgs", len(lines))
	}
	if lines[0] != users[0].Organization {
		t.Errorf("first org = %q, want %q", lines[0], users[0].Organization)
	}
}

func TestCmdStats(t *testing.T) {
	var buf bytes.Buffer
	CmdStats(&buf, testUsers(t, 20))
	if !strings.Contains(buf.String(), "users:              20") {
		t.Errorf("got:\n%s", buf.String())
	}
}

func TestCmdActionAndAudit(t *testing.T) {
	users := testUsers(t, 5)
	log := audit.New(&memCollection{}, nil)

	var buf bytes.Buffer
	if err := CmdAction(&buf, users, log, audit.ActionBlacklist, []string{"--operator", "ops", users[2].ID}); err != nil {
		t.Fatalf("action: %v", err)
	}
	if !strings.Contains(buf.String(), "blacklist "+users[2].ID+" recorded") {
		t.Errorf("got %q", buf.String())
	}

	buf.Reset()
	if err := CmdAudit(&buf, log, nil); err != nil {
		t.Fatalf("audit: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, users[2].ID) || !strings.Contains(out, "ops") {
		t.Errorf("audit output missing entry:\n%s", out)
	}
}

func TestCmdActionUnknownUser(t *testing.T) {
	log := audit.New(&memCollection{}, nil)
	err := CmdAction(&bytes.Buffer{}, testUsers(t, 5), log, audit.ActionActivate, []string{"LSQF999999999"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCmdAuditEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := CmdAudit(&buf, audit.New(&memCollection{}, nil), nil); err != nil {
		t.Fatalf("audit: %v", err)
	}
	if !strings.Contains(buf.String(), "no recorded actions") {
		t.Errorf("got %q", buf.String())
	}
}

func TestHasFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		flag string
		want bool
	}{
		{"present", []string{"--json"}, "--json", true},
		{"absent", []string{"--operator"}, "--json", false},
		{"empty", nil, "--json", false},
		{"case insensitive", []string{"--JSON"}, "--json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hasFlag(tt.args, tt.flag)
			if got != tt.want {
				t.Errorf("hasFlag(%v, %s) = %v, want %v", tt.args, tt.flag, got, tt.want)
			}
		})
	}
}
