package section

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	Title string
	Body  string
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func seeded(placement Placement) *Section[note] {
	return New("notes", placement, NewIDSource(fixedClock(1700000000000)), []Entry[note]{
		{ID: "1", Fields: note{Title: "A"}},
		{ID: "2", Fields: note{Title: "B"}},
	})
}

func TestIDSourceNeverRepeats(t *testing.T) {
	ids := NewIDSource(fixedClock(1000))

	assert.Equal(t, "1000", ids.Next())
	assert.Equal(t, "1001", ids.Next())
	assert.Equal(t, "1002", ids.Next())
}

func TestIDSourceFollowsClock(t *testing.T) {
	now := int64(5000)
	ids := NewIDSource(func() time.Time { return time.UnixMilli(now) })

	assert.Equal(t, "5000", ids.Next())
	now = 9000
	assert.Equal(t, "9000", ids.Next())
	now = 100
	assert.Equal(t, "9001", ids.Next())
}

func TestSaveAppendsNewRecord(t *testing.T) {
	s := seeded(Append)

	s.OpenCreate(note{})
	ed := s.Editor()
	require.True(t, ed.Open)
	require.False(t, ed.Editing())

	s.SetDraft(note{Title: "C", Body: "fresh"})
	entry, ok := s.Save()
	require.True(t, ok)

	assert.Equal(t, 3, s.Len())
	got, found := s.Get(entry.ID)
	require.True(t, found)
	assert.Equal(t, note{Title: "C", Body: "fresh"}, got.Fields)
	assert.Equal(t, entry.ID, s.Entries()[2].ID)
	assert.False(t, s.Editor().Open)
	assert.Equal(t, note{}, s.Editor().Draft)
}

func TestSavePrependsForPrependSections(t *testing.T) {
	s := seeded(Prepend)

	s.OpenCreate(note{Title: "C"})
	_, ok := s.Save()
	require.True(t, ok)

	var titles []string
	for _, e := range s.Entries() {
		titles = append(titles, e.Fields.Title)
	}
	assert.Equal(t, []string{"C", "A", "B"}, titles)
}

func TestSaveEditsOnlyTarget(t *testing.T) {
	s := seeded(Append)
	before := s.Entries()

	require.True(t, s.OpenEdit("2"))
	ed := s.Editor()
	assert.Equal(t, "2", ed.EditingID)
	assert.Equal(t, note{Title: "B"}, ed.Draft)

	s.SetDraft(note{Title: "B2", Body: "changed"})
	entry, ok := s.Save()
	require.True(t, ok)
	assert.Equal(t, "2", entry.ID)

	after := s.Entries()
	require.Len(t, after, 2)
	assert.Equal(t, before[0], after[0])
	assert.Equal(t, Entry[note]{ID: "2", Fields: note{Title: "B2", Body: "changed"}}, after[1])
}

func TestSaveAfterTargetDeleted(t *testing.T) {
	s := seeded(Append)

	require.True(t, s.OpenEdit("1"))
	require.True(t, s.Delete("1"))
	s.SetDraft(note{Title: "ghost"})

	_, ok := s.Save()
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
	assert.False(t, s.Editor().Open)
}

func TestOpenEditUnknown(t *testing.T) {
	s := seeded(Append)

	assert.False(t, s.OpenEdit("missing"))
	assert.False(t, s.Editor().Open)
}

func TestDelete(t *testing.T) {
	s := seeded(Append)

	assert.False(t, s.Delete("missing"))
	assert.Equal(t, 2, s.Len())

	assert.True(t, s.Delete("1"))
	assert.Equal(t, []Entry[note]{{ID: "2", Fields: note{Title: "B"}}}, s.Entries())
}

func TestDeleteDoesNotDisturbEarlierSnapshots(t *testing.T) {
	s := seeded(Append)
	snapshot := s.Entries()

	require.True(t, s.Delete("1"))
	assert.Equal(t, "1", snapshot[0].ID)
	assert.Equal(t, "2", snapshot[1].ID)
}

func TestCancelDiscardsDraft(t *testing.T) {
	s := seeded(Append)

	require.True(t, s.OpenEdit("1"))
	s.SetDraft(note{Title: "unsaved"})
	s.Cancel()

	assert.Equal(t, Editor[note]{}, s.Editor())
	got, _ := s.Get("1")
	assert.Equal(t, "A", got.Fields.Title)
}

func TestGeneratedIDsAvoidSeedCollisions(t *testing.T) {
	s := New("notes", Append, NewIDSource(fixedClock(7)), []Entry[note]{
		{ID: "7", Fields: note{Title: "seed"}},
	})

	s.OpenCreate(note{Title: "new"})
	entry, ok := s.Save()
	require.True(t, ok)
	assert.Equal(t, "8", entry.ID)
}

func TestCommitIgnoresInterleavedDialogs(t *testing.T) {
	s := seeded(Append)

	// Another editor opens a create dialog between this edit's steps.
	require.True(t, s.OpenEdit("1"))
	s.OpenCreate(note{})
	s.SetDraft(note{Title: "other draft"})

	edited, ok := s.Commit("1", note{Title: "A-edit"})
	require.True(t, ok)
	assert.Equal(t, "1", edited.ID)

	created, ok := s.Commit("", note{Title: "B-new"})
	require.True(t, ok)

	assert.Equal(t, []Entry[note]{
		{ID: "1", Fields: note{Title: "A-edit"}},
		{ID: "2", Fields: note{Title: "B"}},
		{ID: created.ID, Fields: note{Title: "B-new"}},
	}, s.Entries())
	assert.False(t, s.Editor().Open)
}

func TestCommitUnknownTarget(t *testing.T) {
	s := seeded(Append)

	_, ok := s.Commit("missing", note{Title: "ghost"})
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "notes", s.Name())
}

func TestCommitLeavesOtherDialogOpen(t *testing.T) {
	s := seeded(Prepend)
	require.True(t, s.OpenEdit("2"))

	entry, ok := s.Commit("", note{Title: "top"})
	require.True(t, ok)
	assert.Equal(t, entry, s.Entries()[0])

	ed := s.Editor()
	assert.True(t, ed.Open)
	assert.Equal(t, "2", ed.EditingID)
}

func TestConcurrentCommits(t *testing.T) {
	s := seeded(Append)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.OpenEdit("1")
			_, ok := s.Commit("1", note{Title: fmt.Sprintf("edit %d", i)})
			assert.True(t, ok)
		}(i)
		go func(i int) {
			defer wg.Done()
			s.OpenCreate(note{})
			_, ok := s.Commit("", note{Title: fmt.Sprintf("new %d", i)})
			assert.True(t, ok)
		}(i)
	}
	wg.Wait()

	entries := s.Entries()
	require.Len(t, entries, 52)
	assert.Equal(t, "1", entries[0].ID)
	assert.Contains(t, entries[0].Fields.Title, "edit ")
	assert.Equal(t, note{Title: "B"}, entries[1].Fields)
	for _, e := range entries[2:] {
		assert.Contains(t, e.Fields.Title, "new ")
	}
}
