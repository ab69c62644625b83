// Package section holds the editable record lists behind each portfolio
// section, together with the dialog state used to create and edit them.
package section

import (
	"strconv"
	"sync"
	"time"
)

// Placement decides where a newly created entry lands in the list.
type Placement int

const (
	Append Placement = iota
	Prepend
)

// Entry is one record of a section. Fields carries the section specific data.
type Entry[F any] struct {
	ID     string `json:"id" yaml:"id"`
	Fields F      `json:"fields" yaml:",inline"`
}

// Editor is the state of a section's create/edit dialog.
type Editor[F any] struct {
	Open      bool
	EditingID string
	Draft     F
}

// Editing reports whether the dialog targets an existing record.
func (e Editor[F]) Editing() bool {
	return e.EditingID != ""
}

// IDSource hands out clock derived identifiers that never repeat, even when
// the clock does not advance between calls.
type IDSource struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewIDSource(now func() time.Time) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now}
}

// Next returns the next identifier as a decimal millisecond timestamp.
func (s *IDSource) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ms := s.now().UnixMilli()
	if ms <= s.last {
		ms = s.last + 1
	}
	s.last = ms
	return strconv.FormatInt(ms, 10)
}

// Section is an ordered list of entries plus its editor dialog.
type Section[F any] struct {
	mu        sync.RWMutex
	name      string
	placement Placement
	ids       *IDSource
	entries   []Entry[F]
	editor    Editor[F]
}

func New[F any](name string, placement Placement, ids *IDSource, seed []Entry[F]) *Section[F] {
	if ids == nil {
		ids = NewIDSource(nil)
	}
	entries := make([]Entry[F], len(seed))
	copy(entries, seed)
	return &Section[F]{
		name:      name,
		placement: placement,
		ids:       ids,
		entries:   entries,
	}
}

func (s *Section[F]) Name() string {
	return s.name
}

// Entries returns a copy of the list in display order.
func (s *Section[F]) Entries() []Entry[F] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry[F], len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Section[F]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Section[F]) Get(id string) (Entry[F], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.entries[i], true
	}
	return Entry[F]{}, false
}

func (s *Section[F]) Editor() Editor[F] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editor
}

// OpenCreate opens the dialog for a new record, starting from draft.
func (s *Section[F]) OpenCreate(draft F) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editor = Editor[F]{Open: true, Draft: draft}
}

// OpenEdit loads the record with id into the draft and opens the dialog.
func (s *Section[F]) OpenEdit(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.editor = Editor[F]{Open: true, EditingID: id, Draft: s.entries[i].Fields}
	return true
}

func (s *Section[F]) SetDraft(draft F) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editor.Draft = draft
}

// Save commits the dialog's draft and closes the dialog.
// The bool is false only when the record being edited no longer exists.
func (s *Section[F]) Save() (Entry[F], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ed := s.editor
	s.editor = Editor[F]{}
	return s.commit(ed.EditingID, ed.Draft)
}

// Commit stores draft in one step without going through the dialog. With an
// editingID it replaces that record's fields in place; otherwise it adds a new
// record. A dialog open on the same target is closed.
func (s *Section[F]) Commit(editingID string, draft F) (Entry[F], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editor.Open && s.editor.EditingID == editingID {
		s.editor = Editor[F]{}
	}
	return s.commit(editingID, draft)
}

func (s *Section[F]) commit(editingID string, draft F) (Entry[F], bool) {
	if editingID != "" {
		i := s.indexOf(editingID)
		if i < 0 {
			return Entry[F]{}, false
		}
		s.entries[i].Fields = draft
		return s.entries[i], true
	}

	id := s.ids.Next()
	for s.indexOf(id) >= 0 {
		id = s.ids.Next()
	}
	entry := Entry[F]{ID: id, Fields: draft}
	if s.placement == Prepend {
		s.entries = append([]Entry[F]{entry}, s.entries...)
	} else {
		s.entries = append(s.entries, entry)
	}
	return entry, true
}

// Cancel closes the dialog and discards the draft.
func (s *Section[F]) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editor = Editor[F]{}
}

// Delete removes the record with id. Unknown ids leave the list untouched.
func (s *Section[F]) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
	return true
}

func (s *Section[F]) indexOf(id string) int {
	for i := range s.entries {
		if s.entries[i].ID == id {
			return i
		}
	}
	return -1
}
