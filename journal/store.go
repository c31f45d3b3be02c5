// journal/store.go
package journal

import (
	"errors"
	"strings"
	"sync"
	"time"
)

// Validation rejections. The presentation layer surfaces these as a bell and
// otherwise ignores them; nothing here is fatal.
var (
	ErrDuplicate      = errors.New("entry already present")
	ErrNotFound       = errors.New("entry not found")
	ErrNothingToUndo  = errors.New("nothing to undo")
	ErrTemplateExists = errors.New("templated entry already present for this base")
	ErrEmptyDetail    = errors.New("empty template detail")
)

// Saver persists a session snapshot. Saves are best effort: the in-memory
// session stays authoritative and failures are swallowed by the store.
type Saver interface {
	Save(Session) error
}

// Loader merges a previously saved session into dst and reports whether a
// save was found and parsed.
type Loader interface {
	Load(dst Session) (bool, error)
}

// DefaultDebounce is the autosave coalescing window: a save request restarts
// the timer, so only the last request in a burst hits the disk.
const DefaultDebounce = 500 * time.Millisecond

// Store owns the session and its undo history and is the only sanctioned
// mutation path. Mutations are synchronous user actions; the mutex exists
// because the debounce timer fires on its own goroutine.
type Store struct {
	mu      sync.Mutex
	session Session
	history []historyEntry

	saver    Saver
	debounce time.Duration
	timer    *time.Timer

	now func() time.Time
}

// NewStore returns a store pre-populated with all 83 bars. A nil saver
// disables autosave. A non-positive debounce selects DefaultDebounce.
func NewStore(saver Saver, debounce time.Duration) *Store {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	s := &Store{
		saver:    saver,
		debounce: debounce,
		now:      time.Now,
	}
	s.session = make(Session, len(BarOrder))
	s.initBars()
	return s
}

func (s *Store) initBars() {
	for _, key := range BarOrder {
		s.session[key] = newBarRecord(s.now())
	}
}

// Restore merges a previously saved session into the store. Intended to run
// once at startup, before any mutation.
func (s *Store) Restore(l Loader) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return l.Load(s.session)
}

// Snapshot returns a deep copy of the current session.
func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Clone()
}

// Record returns a deep copy of one bar's record.
func (s *Store) Record(bar BarKey) *BarRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureBar(bar).Clone()
}

// Entries returns a copy of one category list.
func (s *Store) Entries(bar BarKey, cat Category) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.ensureBar(bar).List(cat)...)
}

// EnsureBar inserts a fresh empty record if the key is absent. No-op otherwise.
func (s *Store) EnsureBar(bar BarKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureBar(bar)
}

func (s *Store) ensureBar(bar BarKey) *BarRecord {
	rec, ok := s.session[bar]
	if !ok {
		rec = newBarRecord(s.now())
		s.session[bar] = rec
	}
	return rec
}

// AddEntry appends text to a category list. The text must already be final:
// template expansion happens in the caller or via AddTemplated. Returns
// ErrDuplicate without touching data or history if the exact text is already
// present.
func (s *Store) AddEntry(bar BarKey, cat Category, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(bar, cat, text)
}

func (s *Store) add(bar BarKey, cat Category, text string) error {
	rec := s.ensureBar(bar)
	list := rec.List(cat)
	for _, have := range list {
		if have == text {
			return ErrDuplicate
		}
	}
	rec.setList(cat, append(list, text))
	s.history = append(s.history, addedEntry{bar, cat, text})
	s.scheduleSave()
	return nil
}

// AddTemplated expands a template label with the user-supplied detail and
// adds the result. An empty detail rejects the operation, and at most one
// expansion per template base may exist in a category list.
func (s *Store) AddTemplated(bar BarKey, cat Category, label, detail string) error {
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return ErrEmptyDetail
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.ensureBar(bar)
	if i, _ := latestTemplateMatch(rec.List(cat), TemplateBase(label)); i >= 0 {
		return ErrTemplateExists
	}
	return s.add(bar, cat, ExpandTemplate(label, detail))
}

// RemoveEntry removes one entry. A templated label ("DB()") matches the most
// recently inserted "base(detail)" expansion regardless of its detail; any
// other label requires an exact match. The removal index is recorded so undo
// restores the exact position.
func (s *Store) RemoveEntry(bar BarKey, cat Category, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.ensureBar(bar)
	list := rec.List(cat)

	idx, text := -1, label
	if IsTemplated(label) {
		idx, text = latestTemplateMatch(list, TemplateBase(label))
	} else {
		for i, have := range list {
			if have == label {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	out := make([]string, 0, len(list)-1)
	out = append(out, list[:idx]...)
	out = append(out, list[idx+1:]...)
	rec.setList(cat, out)
	s.history = append(s.history, removedEntry{bar, cat, text, idx})
	s.scheduleSave()
	return nil
}

// ClearBar snapshots the record into history and replaces it with a fresh
// empty one carrying a new timestamp.
func (s *Store) ClearBar(bar BarKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.ensureBar(bar)
	s.history = append(s.history, clearedBar{bar, prev})
	s.session[bar] = newBarRecord(s.now())
	s.scheduleSave()
}

// ClearCategory empties one category list. Returns false without touching
// history when the list is already empty.
func (s *Store) ClearCategory(bar BarKey, cat Category) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec := s.ensureBar(bar)
	list := rec.List(cat)
	if len(list) == 0 {
		return false
	}
	s.history = append(s.history, clearedCategory{bar, cat, list})
	rec.setList(cat, []string{})
	s.scheduleSave()
	return true
}

// Undo pops the most recent mutation and applies its inverse. Unlimited
// depth, no redo.
func (s *Store) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.history)
	if n == 0 {
		return ErrNothingToUndo
	}
	e := s.history[n-1]
	s.history = s.history[:n-1]
	e.revert(s.session)
	s.scheduleSave()
	return nil
}

// Reset clears all data and history and reinitializes every bar.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	s.session = make(Session, len(BarOrder))
	s.initBars()
	s.scheduleSave()
}

// scheduleSave restarts the debounce timer. Called with the lock held.
func (s *Store) scheduleSave() {
	if s.saver == nil {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.autosave)
}

func (s *Store) autosave() {
	s.mu.Lock()
	snap := s.session.Clone()
	s.mu.Unlock()
	// Best effort. The in-memory session remains the source of truth.
	_ = s.saver.Save(snap)
}

// Flush cancels any pending debounce and saves immediately. Used at exit and
// by explicit save paths, where the error is surfaced to the user.
func (s *Store) Flush() error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.saver == nil {
		s.mu.Unlock()
		return nil
	}
	snap := s.session.Clone()
	s.mu.Unlock()
	return s.saver.Save(snap)
}
