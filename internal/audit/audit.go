// Package audit records operator actions taken on users from the row-action
// menu. Entries describe intent only: the generated user set is never
// modified.
package audit

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Action is an operator action on a user.
type Action string

const (
	ActionBlacklist Action = "blacklist"
	ActionActivate  Action = "activate"
)

// ErrUnknownAction is returned for an action that is not recorded.
var ErrUnknownAction = errors.New("unknown action")

// ParseAction returns the action with the given name.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionBlacklist, ActionActivate:
		return Action(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// Entry is one recorded action.
type Entry struct {
	ID       string    `json:"id"`
	Action   Action    `json:"action"`
	UserID   string    `json:"user_id"`
	Operator string    `json:"operator"`
	At       time.Time `json:"at"`
}

// Collection persists entries by ID. *zstore.Collection[Entry] satisfies it.
type Collection interface {
	Put(id string, e Entry) error
	List() ([]Entry, error)
}

// Log appends entries to a collection.
type Log struct {
	col    Collection
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New creates a log writing to col. A nil logger uses slog.Default.
func New(col Collection, logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{
		col:     col,
		logger:  logger,
		now:     time.Now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Record stores an entry for action on userID by operator.
func (l *Log) Record(action Action, userID, operator string) (Entry, error) {
	if _, err := ParseAction(string(action)); err != nil {
		return Entry{}, err
	}

	at := l.now().UTC()
	e := Entry{
		ID:       l.newID(at),
		Action:   action,
		UserID:   userID,
		Operator: operator,
		At:       at,
	}

	if err := l.col.Put(e.ID, e); err != nil {
		return Entry{}, fmt.Errorf("record %s %s: %w", action, userID, err)
	}

	l.logger.Info("user action", "action", string(action), "user", userID, "operator", operator, "entry", e.ID)
	return e, nil
}

// List returns all entries, newest first.
func (l *Log) List() ([]Entry, error) {
	entries, err := l.col.List()
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}

	// ULIDs sort by creation time; the collection does not guarantee order
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID > entries[j].ID
	})
	return entries, nil
}

func (l *Log) newID(t time.Time) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), l.entropy).String()
}
