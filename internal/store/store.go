// Package store holds operator state (preferences and the audit log) in an
// encrypted zstore unlocked with a master password.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/zarlcorp/core/pkg/zcrypto"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstore"
	"github.com/zarlcorp/zlend/internal/audit"
	"github.com/zarlcorp/zlend/internal/query"
)

const (
	preferencesCollection = "preferences"
	auditCollection       = "audit"

	preferencesKey = "table"
	saltFile       = "salt"
)

// Preferences is the operator's saved user-table state.
type Preferences struct {
	PageSize int          `json:"page_size"`
	Filter   query.Filter `json:"filter"`
}

// prefsEnvelope wraps preferences as raw JSON so older or newer shapes
// still load.
type prefsEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// Store is an unlocked operator store.
type Store struct {
	z     *zstore.Store
	prefs *zstore.Collection[prefsEnvelope]
	audit *zstore.Collection[audit.Entry]

	closeOnce sync.Once
}

// Open unlocks the store on fsys. The password bytes are erased before Open
// returns, whether or not it succeeds.
func Open(fsys zfilesystem.ReadWriteFileFS, password []byte) (*Store, error) {
	defer zcrypto.Erase(password)

	z, err := zstore.Open(fsys, password)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	prefs, err := zstore.NewCollection[prefsEnvelope](z, preferencesCollection)
	if err != nil {
		z.Close()
		return nil, fmt.Errorf("open store: %s: %w", preferencesCollection, err)
	}

	entries, err := zstore.NewCollection[audit.Entry](z, auditCollection)
	if err != nil {
		z.Close()
		return nil, fmt.Errorf("open store: %s: %w", auditCollection, err)
	}

	return &Store{z: z, prefs: prefs, audit: entries}, nil
}

// OpenDir unlocks the store rooted at dir, creating dir if needed.
func OpenDir(dir string, password []byte) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		zcrypto.Erase(password)
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return Open(zfilesystem.NewOSFileSystem(dir), password)
}

// IsFirstRun reports whether no store has been created in dir yet.
func IsFirstRun(dir string) bool {
	_, err := os.Stat(dir + "/" + saltFile)
	return err != nil
}

// Audit returns the audit collection for use with audit.New.
func (s *Store) Audit() audit.Collection {
	return s.audit
}

// Preferences returns the saved preferences. Missing or unreadable
// preferences yield the zero value.
func (s *Store) Preferences() Preferences {
	env, err := s.prefs.Get(preferencesKey)
	if err != nil {
		return Preferences{}
	}

	var p Preferences
	if err := json.Unmarshal(env.Data, &p); err != nil {
		return Preferences{}
	}
	return p
}

// SavePreferences persists p.
func (s *Store) SavePreferences(p Preferences) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("save preferences: marshal: %w", err)
	}
	if err := s.prefs.Put(preferencesKey, prefsEnvelope{Data: data}); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// Close locks the store. Calling it more than once is a no-op.
func (s *Store) Close() {
	s.closeOnce.Do(func() { s.z.Close() })
}
