// journal/history.go
package journal

// historyEntry is one reversible mutation, carrying exactly the fields its
// inverse needs. The store keeps them as an append-only stack: popping the
// most recent entry and calling revert is the only undo operation.
type historyEntry interface {
	revert(s Session)
}

type addedEntry struct {
	bar  BarKey
	cat  Category
	text string
}

// The inverse only pops the text if it is still the last element. If the list
// was mutated out of order since, skip silently rather than corrupt entries.
func (e addedEntry) revert(s Session) {
	rec, ok := s[e.bar]
	if !ok {
		return
	}
	list := rec.List(e.cat)
	if n := len(list); n > 0 && list[n-1] == e.text {
		rec.setList(e.cat, list[:n-1])
	}
}

type removedEntry struct {
	bar   BarKey
	cat   Category
	text  string
	index int
}

// Re-insert at the recorded index, clamped to current bounds.
func (e removedEntry) revert(s Session) {
	rec, ok := s[e.bar]
	if !ok {
		return
	}
	list := rec.List(e.cat)
	idx := e.index
	if idx < 0 {
		idx = 0
	}
	if idx > len(list) {
		idx = len(list)
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, list[:idx]...)
	out = append(out, e.text)
	out = append(out, list[idx:]...)
	rec.setList(e.cat, out)
}

type clearedBar struct {
	bar  BarKey
	prev *BarRecord
}

// Restore the snapshotted record verbatim, original timestamp included.
func (e clearedBar) revert(s Session) {
	s[e.bar] = e.prev
}

type clearedCategory struct {
	bar  BarKey
	cat  Category
	prev []string
}

func (e clearedCategory) revert(s Session) {
	rec, ok := s[e.bar]
	if !ok {
		return
	}
	rec.setList(e.cat, append([]string{}, e.prev...))
}
