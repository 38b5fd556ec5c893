// Package expand multiplies candidate lookup keys by the synonym table of
// their language: every whole-word abbreviation occurrence branches into
// the literal plus each of its spelled-out alternatives.
package expand

import (
	"strings"

	"github.com/cognilex/bilex/pkg/bilex/abbrev"
	"github.com/cognilex/bilex/pkg/bilex/variants"
)

// Expand fans each candidate out across every keep/substitute combination
// of its abbreviation occurrences. Branches that picked at least one
// synonym carry UsedSubstitution, OR-combined with the flag the input
// candidate already had. Candidates collapsing to the same string merge,
// OR-combining their flags. A language without a synonym table passes the
// input through unchanged.
func Expand(candidates []variants.Candidate, lang abbrev.Language) []variants.Candidate {
	if len(lang.Synonyms) == 0 {
		return candidates
	}

	type branch struct {
		text string
		used bool
	}

	index := make(map[string]int, len(candidates))
	out := make([]variants.Candidate, 0, len(candidates))
	add := func(text string, used bool) {
		text = variants.Normalize(text)
		if text == "" {
			return
		}
		if i, ok := index[text]; ok {
			out[i].UsedSubstitution = out[i].UsedSubstitution || used
			return
		}
		index[text] = len(out)
		out = append(out, variants.Candidate{Text: text, UsedSubstitution: used})
	}

	for _, cand := range candidates {
		// Candidates are whitespace-normalized, so whole-word occurrences
		// are exactly the space-separated tokens.
		branches := []branch{{text: "", used: cand.UsedSubstitution}}
		for _, tok := range strings.Fields(cand.Text) {
			syns := lang.Synonyms[tok]
			if len(syns) == 0 {
				for i := range branches {
					branches[i].text += " " + tok
				}
				continue
			}
			next := make([]branch, 0, len(branches)*(len(syns)+1))
			for _, b := range branches {
				next = append(next, branch{text: b.text + " " + tok, used: b.used})
				for _, syn := range syns {
					next = append(next, branch{text: b.text + " " + syn, used: true})
				}
			}
			branches = next
		}
		for _, b := range branches {
			add(b.text, b.used)
		}
	}
	return out
}
