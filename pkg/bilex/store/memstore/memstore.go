// Package memstore is the in-memory store.Store implementation. It holds
// the full expanded candidate set for the run, which is the intended core
// design: memory is the limiting resource, not a spill target.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognilex/bilex/pkg/bilex/store"
)

// Store is a mutex-guarded in-memory index.
type Store struct {
	mu   sync.RWMutex
	keys map[string]*store.KeyRecord
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{keys: make(map[string]*store.KeyRecord)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// Add implements store.Store.
func (s *Store) Add(ctx context.Context, key string, usedSubstitution bool, class, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.keys[key]
	if !ok {
		rec = &store.KeyRecord{Key: key}
		s.keys[key] = rec
	}
	rec.UsedSubstitution = rec.UsedSubstitution || usedSubstitution
	rec.Translations = append(rec.Translations, store.Translation{Class: class, Text: text})
	return nil
}

// Keys implements store.Store.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.keys))
	for k := range s.keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

// Get implements store.Store.
func (s *Store) Get(ctx context.Context, key string) (store.KeyRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.keys[key]
	if !ok {
		return store.KeyRecord{}, false, nil
	}
	out := store.KeyRecord{
		Key:              rec.Key,
		UsedSubstitution: rec.UsedSubstitution,
		Translations:     append([]store.Translation(nil), rec.Translations...),
	}
	return out, true, nil
}
