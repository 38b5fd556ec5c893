package segment

import (
	"fmt"

	"github.com/cognilex/bilex/pkg/bilex/internalerr"
)

// Kind identifies what a segment is: a plain word or one of the four
// bracket conventions used by the source data.
type Kind int

const (
	Word Kind = iota
	Round
	Square
	Curly
	Angle
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Round:
		return "round"
	case Square:
		return "square"
	case Curly:
		return "curly"
	case Angle:
		return "angle"
	}
	return "unknown"
}

// Segment is one top-level piece of a phrase. Text holds the raw content:
// for Word segments the word itself, for bracket segments the inner text
// with the outer bracket pair stripped. Nested brackets of the same kind
// stay inside Text verbatim. Start and End are byte offsets into the
// original phrase covering the whole segment, brackets included.
type Segment struct {
	Kind  Kind
	Text  string
	Start int
	End   int
}

var closers = map[byte]byte{'(': ')', '[': ']', '{': '}', '<': '>'}

func kindOf(open byte) Kind {
	switch open {
	case '(':
		return Round
	case '[':
		return Square
	case '{':
		return Curly
	}
	return Angle
}

func isOpen(c byte) bool {
	return c == '(' || c == '[' || c == '{' || c == '<'
}

func isClose(c byte) bool {
	return c == ')' || c == ']' || c == '}' || c == '>'
}

// Parse splits a phrase into its ordered top-level segments. Runs of
// spaces separate segments and are not emitted. A bracket segment spans
// from its opening bracket to the matching closing bracket of the same
// kind; deeper nesting of that kind is balanced and consumed into the
// segment's text. An unmatched opening bracket, or a closing bracket
// outside any segment, fails the whole phrase.
func Parse(phrase string) ([]Segment, error) {
	var segs []Segment
	i := 0
	for i < len(phrase) {
		c := phrase[i]
		switch {
		case c == ' ':
			i++
		case isOpen(c):
			seg, next, err := scanBracket(phrase, i)
			if err != nil {
				return nil, err
			}
			segs = append(segs, seg)
			i = next
		case isClose(c):
			return nil, fmt.Errorf("phrase %q: unexpected %q at offset %d: %w",
				phrase, string(c), i, internalerr.ErrUnbalancedBracket)
		default:
			start := i
			for i < len(phrase) && phrase[i] != ' ' && !isOpen(phrase[i]) && !isClose(phrase[i]) {
				i++
			}
			segs = append(segs, Segment{Kind: Word, Text: phrase[start:i], Start: start, End: i})
		}
	}
	return segs, nil
}

// scanBracket consumes one bracket segment starting at the opening bracket
// at offset start. Only brackets of the same kind affect the depth count;
// brackets of other kinds pass through as ordinary text.
func scanBracket(phrase string, start int) (Segment, int, error) {
	open := phrase[start]
	closer := closers[open]
	depth := 1
	for i := start + 1; i < len(phrase); i++ {
		switch phrase[i] {
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return Segment{
					Kind:  kindOf(open),
					Text:  phrase[start+1 : i],
					Start: start,
					End:   i + 1,
				}, i + 1, nil
			}
		}
	}
	return Segment{}, 0, fmt.Errorf("phrase %q: unmatched %q at offset %d: %w",
		phrase, string(open), start, internalerr.ErrUnbalancedBracket)
}
