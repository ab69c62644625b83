// Package hero holds the two hero banner fields that persist across restarts:
// the background video reference and the location label.
package hero

import (
	"context"
	"log"
	"sync"

	"github.com/ronu450/portfolio/internal/media"
)

const (
	VideoKey    = "hero.videoUrl"
	LocationKey = "hero.locationName"

	DefaultVideo    = "./videos/my-video.mp4"
	DefaultLocation = "Kottayam, Kerala"
)

// Storage is the key-value backend the settings are kept in.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// MediaReleaser owns temporary media objects referenced by the video field.
type MediaReleaser interface {
	Has(ref string) bool
	Release(ref string) bool
}

// Settings is safe for concurrent use. Storage errors never surface: the
// in-memory values stay in effect and the failure is logged.
type Settings struct {
	mu       sync.RWMutex
	storage  Storage
	media    MediaReleaser
	video    string
	location string
	// held is the temporary media reference currently owned, if any.
	held string
}

func New(storage Storage, releaser MediaReleaser) *Settings {
	return &Settings{
		storage:  storage,
		media:    releaser,
		video:    DefaultVideo,
		location: DefaultLocation,
	}
}

// Load replaces the defaults with any non-empty persisted values.
func (s *Settings) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.storage == nil {
		return
	}
	if video, ok := s.read(ctx, VideoKey); ok && video != "" {
		if media.IsTemporary(video) && (s.media == nil || !s.media.Has(video)) {
			log.Printf("hero: stored video %s no longer exists, using default", video)
		} else {
			s.adoptVideo(video)
		}
	}
	if location, ok := s.read(ctx, LocationKey); ok && location != "" {
		s.location = location
	}
}

func (s *Settings) Video() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.video
}

func (s *Settings) Location() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.location
}

// SetVideo switches the background video. An empty ref clears the stored
// value so the page falls back to the gradient background.
func (s *Settings) SetVideo(ctx context.Context, ref string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.adoptVideo(ref)
	if s.storage == nil {
		return
	}
	var err error
	if ref == "" {
		err = s.storage.Delete(ctx, VideoKey)
	} else {
		err = s.storage.Set(ctx, VideoKey, ref)
	}
	if err != nil {
		log.Printf("hero: persist video: %v", err)
	}
}

func (s *Settings) SetLocation(ctx context.Context, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.location = label
	if s.storage == nil {
		return
	}
	if err := s.storage.Set(ctx, LocationKey, label); err != nil {
		log.Printf("hero: persist location: %v", err)
	}
}

// Close releases the temporary media object still held, if any.
func (s *Settings) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseHeld()
}

func (s *Settings) adoptVideo(ref string) {
	if s.held != "" && s.held != ref {
		s.releaseHeld()
	}
	s.video = ref
	if media.IsTemporary(ref) {
		s.held = ref
	}
}

func (s *Settings) releaseHeld() {
	if s.held == "" {
		return
	}
	if s.media != nil {
		s.media.Release(s.held)
	}
	s.held = ""
}

func (s *Settings) read(ctx context.Context, key string) (string, bool) {
	value, ok, err := s.storage.Get(ctx, key)
	if err != nil {
		log.Printf("hero: load %s: %v", key, err)
		return "", false
	}
	return value, ok
}
