package store

import (
	"os"
	"testing"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/zlend/internal/audit"
	"github.com/zarlcorp/zlend/internal/query"
)

func openTestStore(t *testing.T) (*Store, *zfilesystem.MemFS) {
	t.Helper()
	fs := zfilesystem.NewMemFS()
	s, err := Open(fs, []byte("testpass"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(s.Close)
	return s, fs
}

func TestOpenErasesPassword(t *testing.T) {
	pw := []byte("testpass")
	s, err := Open(zfilesystem.NewMemFS(), pw)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	for i, b := range pw {
		if b != 0 {
			t.Fatalf("password byte %d not erased", i)
		}
	}
}

func TestReopenWrongPassword(t *testing.T) {
	fs := zfilesystem.NewMemFS()

	s1, err := Open(fs, []byte("right"))
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	s1.Close()

	if _, err := Open(fs, []byte("wrong")); err == nil {
		t.Fatal("expected error for wrong password")
	}
}

func TestPreferencesDefaultZero(t *testing.T) {
	s, _ := openTestStore(t)

	p := s.Preferences()
	if p.PageSize != 0 || !p.Filter.Empty() {
		t.Errorf("expected zero preferences, got %+v", p)
	}
}

func TestPreferencesRoundTripAcrossReopen(t *testing.T) {
	fs := zfilesystem.NewMemFS()

	s1, err := Open(fs, []byte("pw"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	want := Preferences{PageSize: 50, Filter: query.Filter{Organization: "lendsqr", Status: "Active"}}
	if err := s1.SavePreferences(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	s1.Close()

	s2, err := Open(fs, []byte("pw"))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	if got := s2.Preferences(); got != want {
		t.Errorf("preferences = %+v, want %+v", got, want)
	}
}

func TestAuditCollection(t *testing.T) {
	s, _ := openTestStore(t)
	l := audit.New(s.Audit(), nil)

	if _, err := l.Record(audit.ActionBlacklist, "LSQF000000001", "ops"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if _, err := l.Record(audit.ActionActivate, "LSQF000000002", "ops"); err != nil {
		t.Fatalf("record: %v", err)
	}

	entries, err := l.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].UserID != "LSQF000000002" {
		t.Errorf("newest entry = %s, want LSQF000000002", entries[0].UserID)
	}
}

func TestOpenDirAndFirstRun(t *testing.T) {
	dir := t.TempDir() + "/nested"
	if !IsFirstRun(dir) {
		t.Fatal("expected first run before open")
	}

	s, err := OpenDir(dir, []byte("pw"))
	if err != nil {
		t.Fatalf("open dir: %v", err)
	}
	s.Close()

	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("data dir not created: %v", err)
	}
	if IsFirstRun(dir) {
		t.Error("expected not first run after open")
	}
}
