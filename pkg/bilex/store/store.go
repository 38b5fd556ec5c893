// Package store defines the dictionary index accumulator: every candidate
// lookup key produced for the whole input, with the translations collected
// for it. The index only grows during a run; the aggregator consumes it as
// a whole once input is exhausted.
package store

import "context"

// Translation is one (grammatical class, target text) pair recorded for a
// key. Class may be empty.
type Translation struct {
	Class string
	Text  string
}

// KeyRecord is everything accumulated for one lookup key. Translations
// keep their insertion order; the aggregator's first-encountered rules
// depend on it. UsedSubstitution is OR-accumulated over every generation
// path that produced the key.
type KeyRecord struct {
	Key              string
	UsedSubstitution bool
	Translations     []Translation
}

// Store accumulates the index. Implementations serialize concurrent Add
// calls; phrase-level work runs in parallel and this is the only shared
// structure.
type Store interface {
	Close() error

	// Add records one translation under a key, OR-ing usedSubstitution
	// into the key's accumulated flag.
	Add(ctx context.Context, key string, usedSubstitution bool, class, text string) error

	// Keys returns every key in the index, sorted, for the barrier-stage
	// aggregation pass.
	Keys(ctx context.Context) ([]string, error)

	// Get returns the accumulated record for a key.
	Get(ctx context.Context, key string) (KeyRecord, bool, error)
}
