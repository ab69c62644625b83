package hero

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ronu450/portfolio/internal/media"
	"github.com/ronu450/portfolio/internal/store"
)

type mapStorage map[string]string

func (m mapStorage) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m mapStorage) Set(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

func (m mapStorage) Delete(_ context.Context, key string) error {
	delete(m, key)
	return nil
}

type brokenStorage struct{}

var errUnavailable = errors.New("storage unavailable")

func (brokenStorage) Get(context.Context, string) (string, bool, error) {
	return "", false, errUnavailable
}
func (brokenStorage) Set(context.Context, string, string) error { return errUnavailable }
func (brokenStorage) Delete(context.Context, string) error      { return errUnavailable }

type countingMedia struct {
	*media.Store
	released map[string]int
}

func newCountingMedia() *countingMedia {
	return &countingMedia{Store: media.NewStore(), released: map[string]int{}}
}

func (c *countingMedia) Release(ref string) bool {
	c.released[ref]++
	return c.Store.Release(ref)
}

func TestDefaults(t *testing.T) {
	s := New(mapStorage{}, nil)
	s.Load(context.Background())

	assert.Equal(t, DefaultVideo, s.Video())
	assert.Equal(t, DefaultLocation, s.Location())
}

func TestLocationSurvivesReload(t *testing.T) {
	ctx := context.Background()
	db, err := store.Open(ctx, filepath.Join(t.TempDir(), "hero.db"))
	require.NoError(t, err)
	defer db.Close()

	first := New(db, nil)
	first.Load(ctx)
	first.SetLocation(ctx, "Berlin, Germany")

	reloaded := New(db, nil)
	reloaded.Load(ctx)
	assert.Equal(t, "Berlin, Germany", reloaded.Location())

	require.NoError(t, db.Clear(ctx))
	cleared := New(db, nil)
	cleared.Load(ctx)
	assert.Equal(t, "Kottayam, Kerala", cleared.Location())
}

func TestEmptyStoredValuesKeepDefaults(t *testing.T) {
	s := New(mapStorage{VideoKey: "", LocationKey: ""}, nil)
	s.Load(context.Background())

	assert.Equal(t, DefaultVideo, s.Video())
	assert.Equal(t, DefaultLocation, s.Location())
}

func TestStorageFailuresAreIgnored(t *testing.T) {
	ctx := context.Background()
	s := New(brokenStorage{}, nil)

	s.Load(ctx)
	assert.Equal(t, DefaultLocation, s.Location())

	s.SetLocation(ctx, "Dublin, Ireland")
	s.SetVideo(ctx, "https://example.com/clip.mp4")
	assert.Equal(t, "Dublin, Ireland", s.Location())
	assert.Equal(t, "https://example.com/clip.mp4", s.Video())
}

func TestClearingVideoRemovesKey(t *testing.T) {
	ctx := context.Background()
	storage := mapStorage{}
	s := New(storage, nil)

	s.SetVideo(ctx, "https://example.com/clip.mp4")
	assert.Equal(t, "https://example.com/clip.mp4", storage[VideoKey])

	s.SetVideo(ctx, "")
	_, ok := storage[VideoKey]
	assert.False(t, ok)
	assert.Equal(t, "", s.Video())
}

func TestTemporaryVideoReleasedWhenReplaced(t *testing.T) {
	ctx := context.Background()
	m := newCountingMedia()
	s := New(mapStorage{}, m)

	first := m.Create("video/mp4", []byte("one"))
	second := m.Create("video/mp4", []byte("two"))

	s.SetVideo(ctx, first)
	s.SetVideo(ctx, first)
	assert.Equal(t, 0, m.released[first])

	s.SetVideo(ctx, second)
	assert.Equal(t, 1, m.released[first])
	assert.False(t, m.Has(first))

	s.SetVideo(ctx, "https://example.com/clip.mp4")
	assert.Equal(t, 1, m.released[second])

	s.Close()
	s.Close()
	assert.Equal(t, 1, m.released[first])
	assert.Equal(t, 1, m.released[second])
}

func TestCloseReleasesHeldVideoOnce(t *testing.T) {
	m := newCountingMedia()
	s := New(mapStorage{}, m)
	ref := m.Create("video/mp4", nil)

	s.SetVideo(context.Background(), ref)
	s.Close()
	s.Close()

	assert.Equal(t, 1, m.released[ref])
	assert.Equal(t, 0, m.Len())
}

func TestStaleTemporaryVideoFallsBack(t *testing.T) {
	s := New(mapStorage{VideoKey: "blob:gone"}, media.NewStore())
	s.Load(context.Background())

	assert.Equal(t, DefaultVideo, s.Video())
}
