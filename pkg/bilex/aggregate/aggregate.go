// Package aggregate turns the accumulated dictionary index into final
// entries: translations are deduplicated and ranked per key, keys with
// identical translation lists collapse into one entry, and the entry's
// headword is chosen among them.
package aggregate

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/cognilex/bilex/pkg/bilex/store"
)

// Entry is one finished dictionary entry: the canonical headword, its
// ordered translations, and every other lookup key that resolves to the
// same translation list.
type Entry struct {
	Headword     string
	Translations []string
	Alternates   []string
}

// Build runs both aggregation stages over a complete index. It must only
// be called after all input has been consumed; it reads the whole index
// and never partially commits.
func Build(ctx context.Context, idx store.Store) ([]Entry, error) {
	keys, err := idx.Keys(ctx)
	if err != nil {
		return nil, err
	}

	type member struct {
		key  string
		used bool
	}
	type group struct {
		translations []string
		members      []member
	}

	groups := make(map[string]*group)
	var order []string

	for _, key := range keys {
		rec, ok, err := idx.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		translations := rank(dedup(rec.Translations))
		if len(translations) == 0 {
			continue
		}
		// Tuple equality, order and all: the joined list is the group key.
		gk := strings.Join(translations, "\x1f")
		g, ok := groups[gk]
		if !ok {
			g = &group{translations: translations}
			groups[gk] = g
			order = append(order, gk)
		}
		g.members = append(g.members, member{key: rec.Key, used: rec.UsedSubstitution})
	}

	entries := make([]Entry, 0, len(order))
	for _, gk := range order {
		g := groups[gk]
		best := 0
		for i := 1; i < len(g.members); i++ {
			if better(g.members[i].key, g.members[i].used, g.members[best].key, g.members[best].used) {
				best = i
			}
		}
		entry := Entry{Headword: g.members[best].key, Translations: g.translations}
		for i, m := range g.members {
			if i != best {
				entry.Alternates = append(entry.Alternates, m.key)
			}
		}
		sort.Strings(entry.Alternates)
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Headword < entries[j].Headword
	})
	return entries, nil
}

// dedup collapses repeated translation texts for one key. A class-tagged
// occurrence wins over an untagged one; between two different non-empty
// classes the first encountered stays.
func dedup(trs []store.Translation) []store.Translation {
	index := make(map[string]int, len(trs))
	out := make([]store.Translation, 0, len(trs))
	for _, tr := range trs {
		if i, ok := index[tr.Text]; ok {
			if out[i].Class == "" && tr.Class != "" {
				out[i].Class = tr.Class
			}
			continue
		}
		index[tr.Text] = len(out)
		out = append(out, tr)
	}
	return out
}

// rank orders translations by class priority, then case-insensitive text,
// then case-sensitive text, and strips them down to their texts.
func rank(trs []store.Translation) []string {
	sort.Slice(trs, func(i, j int) bool {
		pi, pj := classPriority(trs[i].Class), classPriority(trs[j].Class)
		if pi != pj {
			return pi < pj
		}
		li, lj := strings.ToLower(trs[i].Text), strings.ToLower(trs[j].Text)
		if li != lj {
			return li < lj
		}
		return trs[i].Text < trs[j].Text
	})
	out := make([]string, len(trs))
	for i, tr := range trs {
		out[i] = tr.Text
	}
	return out
}

func classPriority(class string) int {
	switch strings.ToLower(strings.TrimSpace(class)) {
	case "adj", "adjective":
		return 0
	case "verb":
		return 1
	case "noun":
		return 2
	}
	return 3
}

// better reports whether key a beats key b as the group's headword:
// non-substituted keys first, then the longer one, then the lexically
// smaller as a deterministic tie-break.
func better(a string, aUsed bool, b string, bUsed bool) bool {
	if aUsed != bUsed {
		return !aUsed
	}
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la != lb {
		return la > lb
	}
	return a < b
}
