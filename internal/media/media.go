// Package media keeps uploaded files that only live as long as the process,
// addressed by throwaway blob: references.
package media

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

const refPrefix = "blob:"

type Object struct {
	ContentType string
	Data        []byte
}

type Store struct {
	mu      sync.RWMutex
	objects map[string]Object
}

func NewStore() *Store {
	return &Store{objects: make(map[string]Object)}
}

// IsTemporary reports whether ref points at an object held by a Store.
func IsTemporary(ref string) bool {
	return strings.HasPrefix(ref, refPrefix)
}

// Create stores data and returns its reference.
func (s *Store) Create(contentType string, data []byte) string {
	ref := refPrefix + uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[ref] = Object{
		ContentType: contentType,
		Data:        data,
	}
	return ref
}

func (s *Store) Get(ref string) (Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[ref]
	return obj, ok
}

func (s *Store) Has(ref string) bool {
	_, ok := s.Get(ref)
	return ok
}

// Release drops the object. It returns false if ref was already released.
func (s *Store) Release(ref string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[ref]; !ok {
		return false
	}
	delete(s.objects, ref)
	return true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
