// Package bilex converts raw bilingual dictionary records into canonical
// lookup keys with deduplicated, ranked translations. The pipeline runs
// strictly forward: phrase tokenization, variant generation, abbreviation
// expansion, index accumulation, and a final aggregation pass that picks
// one canonical headword per meaning group.
package bilex

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cognilex/bilex/pkg/bilex/abbrev"
	"github.com/cognilex/bilex/pkg/bilex/aggregate"
	"github.com/cognilex/bilex/pkg/bilex/expand"
	"github.com/cognilex/bilex/pkg/bilex/segment"
	"github.com/cognilex/bilex/pkg/bilex/store"
	"github.com/cognilex/bilex/pkg/bilex/variants"
	"github.com/cognilex/bilex/pkg/bilex/writer"
)

// Record is one input line: a source phrase, its translation, and an
// optional grammatical class.
type Record struct {
	SourcePhrase string
	TargetPhrase string
	Class        string
}

// Options configures a Converter.
type Options struct {
	// Store accumulates the index. Required.
	Store store.Store
	// Tables holds the per-language abbreviation configuration. Nil means
	// no abbreviation handling for any language.
	Tables *abbrev.Table
	// Workers bounds the phrase-level fan-out in IngestAll. Zero or
	// negative means one worker per CPU.
	Workers int
}

// Converter is the conversion engine facade.
type Converter struct {
	store   store.Store
	tables  *abbrev.Table
	workers int
}

// New creates a Converter with the given dependencies.
func New(opts Options) *Converter {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Converter{
		store:   opts.Store,
		tables:  opts.Tables,
		workers: workers,
	}
}

// Candidates runs the phrase stages on their own: tokenize the phrase,
// generate its variants for the grammatical class, and expand
// abbreviations per the language's synonym table.
func (c *Converter) Candidates(phrase, class, sourceLang string) ([]variants.Candidate, error) {
	segs, err := segment.Parse(phrase)
	if err != nil {
		return nil, err
	}
	lang := c.tables.Language(sourceLang)
	return expand.Expand(variants.Generate(segs, class, lang), lang), nil
}

// Ingest processes one record: every candidate key derived from the
// source phrase gets the record's translation. A record whose translation
// normalizes to empty is skipped. A phrase that yields no candidates
// contributes nothing; that is not an error.
func (c *Converter) Ingest(ctx context.Context, sourceLang string, rec Record) error {
	target := variants.Normalize(rec.TargetPhrase)
	if target == "" {
		return nil
	}
	candidates, err := c.Candidates(rec.SourcePhrase, rec.Class, strings.ToLower(sourceLang))
	if err != nil {
		return err
	}
	for _, cand := range candidates {
		if err := c.store.Add(ctx, cand.Text, cand.UsedSubstitution, rec.Class, target); err != nil {
			return fmt.Errorf("index %q: %w", cand.Text, err)
		}
	}
	return nil
}

// RecordError reports a record that failed; returning a non-nil error
// aborts the batch, returning nil skips the record and continues.
type RecordError func(rec Record, err error) error

// IngestAll fans records across a bounded worker pool. Each record's
// candidate generation is independent; the store serializes inserts.
// next is called from a single goroutine until it reports exhaustion.
// onError handles per-record failures; nil aborts on the first one.
func (c *Converter) IngestAll(ctx context.Context, sourceLang string, next func() (Record, bool, error), onError RecordError) error {
	if onError == nil {
		onError = func(rec Record, err error) error { return err }
	}

	var errMu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	records := make(chan Record)

	g.Go(func() error {
		defer close(records)
		for {
			rec, ok, err := next()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			select {
			case records <- rec:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	for i := 0; i < c.workers; i++ {
		g.Go(func() error {
			for rec := range records {
				if err := c.Ingest(ctx, sourceLang, rec); err != nil {
					errMu.Lock()
					err = onError(rec, err)
					errMu.Unlock()
					if err != nil {
						return err
					}
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// Aggregate runs the barrier stage over the complete index and streams
// one entry per meaning group to w. It must only run after ingestion has
// finished. Returns the number of entries written.
func (c *Converter) Aggregate(ctx context.Context, w writer.Writer) (int, error) {
	entries, err := aggregate.Build(ctx, c.store)
	if err != nil {
		return 0, err
	}
	for _, e := range entries {
		out := writer.Entry{
			Headword:     e.Headword,
			Translations: e.Translations,
			Alternates:   e.Alternates,
		}
		if err := w.Add(out); err != nil {
			return 0, fmt.Errorf("write entry %q: %w", e.Headword, err)
		}
	}
	return len(entries), nil
}
