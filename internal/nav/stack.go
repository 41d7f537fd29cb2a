package nav

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Entry is a destination on the back stack together with its bound
// arguments and transient UI state.
type Entry struct {
	ID          string // unique per push
	Destination Destination
	Args        Args
	State       map[string]any
}

// NewEntry creates an entry with a fresh identifier and empty state.
func NewEntry(dest Destination, args Args) Entry {
	return Entry{
		ID:          uuid.NewString(),
		Destination: dest,
		Args:        args.Clone(),
	}
}

// Route renders the entry as "id" or "id?key=value".
func (e Entry) Route() string {
	if q := e.Args.String(); q != "" {
		return e.Destination.ID + "?" + q
	}
	return e.Destination.ID
}

// Clone returns a copy that shares nothing mutable with e.
func (e Entry) Clone() Entry {
	out := e
	out.Args = e.Args.Clone()
	if e.State != nil {
		out.State = make(map[string]any, len(e.State))
		for k, v := range e.State {
			out.State[k] = v
		}
	}
	return out
}

// BackStack is the ordered history of visited destinations plus the
// segments saved by pop-up-to operations.
type BackStack struct {
	entries []Entry
	saved   map[string][]Entry
}

// NewBackStack creates a stack holding root.
func NewBackStack(root Entry) *BackStack {
	return &BackStack{
		entries: []Entry{root},
		saved:   make(map[string][]Entry),
	}
}

// Push adds an entry on top.
func (s *BackStack) Push(e Entry) {
	s.entries = append(s.entries, e)
}

// Pop removes and returns the top entry.
func (s *BackStack) Pop() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top, true
}

// Current returns the top entry.
func (s *BackStack) Current() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// Len returns the number of entries.
func (s *BackStack) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries, bottom first.
func (s *BackStack) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Clone()
	}
	return out
}

// Contains reports whether a destination is on the stack.
func (s *BackStack) Contains(id string) bool {
	return s.indexOf(id) >= 0
}

// indexOf returns the topmost position of id, or -1.
func (s *BackStack) indexOf(id string) int {
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Destination.ID == id {
			return i
		}
	}
	return -1
}

// PopTo removes every entry above the topmost entry for id, and that entry
// too when inclusive. With saveState the removed segment is kept, keyed by
// the destination id of its lowest entry, for a later Restore.
func (s *BackStack) PopTo(id string, inclusive, saveState bool) ([]Entry, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, newError("pop", id, ErrTargetNotFound)
	}
	cut := idx + 1
	if inclusive {
		cut = idx
	}
	removed := append([]Entry(nil), s.entries[cut:]...)
	s.entries = s.entries[:cut]

	if saveState && len(removed) > 0 {
		s.saved[removed[0].Destination.ID] = removed
	}
	return removed, nil
}

// HasSaved reports whether a saved segment exists for id.
func (s *BackStack) HasSaved(id string) bool {
	_, ok := s.saved[id]
	return ok
}

// Restore takes the saved segment for id. The segment is removed from the
// saved table.
func (s *BackStack) Restore(id string) ([]Entry, bool) {
	seg, ok := s.saved[id]
	if !ok {
		return nil, false
	}
	delete(s.saved, id)
	return seg, true
}

// SavedIDs returns the keys of saved segments in sorted order.
func (s *BackStack) SavedIDs() []string {
	ids := make([]string, 0, len(s.saved))
	for id := range s.saved {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DropSaved discards the saved segment for id.
func (s *BackStack) DropSaved(id string) {
	delete(s.saved, id)
}

// SetState writes a transient state value on the top entry.
func (s *BackStack) SetState(key string, value any) error {
	if len(s.entries) == 0 {
		return newError("state", key, ErrEmptyStack)
	}
	top := &s.entries[len(s.entries)-1]
	if top.State == nil {
		top.State = make(map[string]any)
	}
	top.State[key] = value
	return nil
}

// Clone returns a deep copy.
func (s *BackStack) Clone() *BackStack {
	out := &BackStack{
		entries: s.Entries(),
		saved:   make(map[string][]Entry, len(s.saved)),
	}
	for id, seg := range s.saved {
		dup := make([]Entry, len(seg))
		for i, e := range seg {
			dup[i] = e.Clone()
		}
		out.saved[id] = dup
	}
	return out
}

func (s *BackStack) String() string {
	return fmt.Sprintf("BackStack(len=%d saved=%d)", len(s.entries), len(s.saved))
}
