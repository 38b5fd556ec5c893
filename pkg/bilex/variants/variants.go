// Package variants expands a tokenized phrase into every lookup string a
// user might type for it: optional round-bracket segments are included or
// omitted, square/curly/angle annotations are always omitted, and boundary
// abbreviations may be dropped when the language marks them optional.
package variants

import (
	"strings"

	"github.com/cognilex/bilex/pkg/bilex/abbrev"
	"github.com/cognilex/bilex/pkg/bilex/segment"
)

// Candidate is one lookup key produced for a phrase. UsedSubstitution is
// false here; the expander flips it on branches that replaced an
// abbreviation with a synonym.
type Candidate struct {
	Text             string
	UsedSubstitution bool
}

// Generate walks the segments left to right carrying a set of partial
// strings and branching at each optional element. The grammatical class
// widens the language's boundary-optional sets for this call only.
func Generate(segs []segment.Segment, class string, lang abbrev.Language) []Candidate {
	startSet := lang.StartSet(class)
	endSet := lang.EndSet(class)

	// The first/last rules need the position of the last Word segment
	// before the walk starts.
	lastWord := -1
	for i, s := range segs {
		if s.Kind == segment.Word {
			lastWord = i
		}
	}

	// partials == nil means no segment has contributed yet; that is not
	// the same as a single empty string, which only round-bracket and
	// dropped-abbreviation branches introduce.
	var partials []string
	var finished []string
	wordsSeen := 0

	for i, s := range segs {
		switch s.Kind {
		case segment.Word:
			_, endOpt := endSet[s.Text]
			_, startOpt := startSet[s.Text]
			switch {
			case endOpt && i == lastWord:
				// Drop branch: everything built so far is already a
				// complete variant. Keep branch: append as usual.
				finished = append(finished, partials...)
				partials = appendAll(partials, s.Text)
			case startOpt && wordsSeen == 0:
				// Keep branch plus a fresh start with the abbreviation
				// alone or nothing at all.
				kept := appendAll(partials, s.Text)
				partials = append(kept, s.Text, "")
			default:
				partials = appendAll(partials, s.Text)
			}
			wordsSeen++
		case segment.Round:
			if partials == nil {
				partials = []string{"", s.Text}
			} else {
				partials = append(partials, appendAll(partials, s.Text)...)
			}
		default:
			// Square, curly and angle annotations never reach any variant.
		}
	}

	partials = append(partials, finished...)

	seen := make(map[string]struct{}, len(partials))
	out := make([]Candidate, 0, len(partials))
	for _, p := range partials {
		text := Normalize(p)
		if text == "" {
			continue
		}
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}
		out = append(out, Candidate{Text: text})
	}
	return out
}

// appendAll extends every partial with text. With no partials yet, text
// starts the first one.
func appendAll(partials []string, text string) []string {
	if partials == nil {
		return []string{text}
	}
	out := make([]string, len(partials))
	for i, p := range partials {
		out[i] = p + " " + text
	}
	return out
}

// Normalize collapses internal whitespace runs to single spaces and trims
// the ends. Every string leaving this package has passed through it.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
