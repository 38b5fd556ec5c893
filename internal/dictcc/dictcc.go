// Package dictcc reads the dict.cc tab-separated vocabulary export. The
// first line declares the language pair; every following non-comment line
// carries a source phrase, its translation, and optionally a word class.
// Fields arrive HTML-escaped and in mixed Unicode normal forms, so both
// are normalized here before anything downstream sees them.
package dictcc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/cognilex/bilex/pkg/bilex/internalerr"
)

// Record is one input line after field normalization.
type Record struct {
	SourcePhrase string
	TargetPhrase string
	Class        string
	Line         int
}

// Reader streams records from a dict.cc export. The requested source
// language picks the direction; converting toward the file's first
// language swaps the phrase columns.
type Reader struct {
	scanner    *bufio.Scanner
	closer     io.Closer
	sourceLang string
	targetLang string
	invert     bool
	line       int
}

// Open opens the export at path for conversion from fromLang.
func Open(path, fromLang string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	r, err := NewReader(f, fromLang)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	r.closer = f
	return r, nil
}

// NewReader reads from an already-open stream. The header line is
// consumed immediately.
func NewReader(src io.Reader, fromLang string) (*Reader, error) {
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("missing header line: %w", internalerr.ErrInvalidInput)
	}

	pair, err := parseHeader(scanner.Text())
	if err != nil {
		return nil, err
	}

	fromLang = strings.ToLower(strings.TrimSpace(fromLang))
	r := &Reader{scanner: scanner, line: 1}
	switch fromLang {
	case pair[0]:
		r.sourceLang, r.targetLang = pair[0], pair[1]
	case pair[1]:
		r.sourceLang, r.targetLang = pair[1], pair[0]
		r.invert = true
	default:
		return nil, fmt.Errorf("%q is not part of the declared pair %s-%s: %w",
			fromLang, pair[0], pair[1], internalerr.ErrLanguageMismatch)
	}
	return r, nil
}

// parseHeader extracts the language pair from a header like
// "# DE-EN vocabulary database  compiled by dict.cc".
func parseHeader(line string) ([2]string, error) {
	line = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "#"))
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return [2]string{}, fmt.Errorf("empty header line: %w", internalerr.ErrInvalidInput)
	}
	pair := strings.SplitN(strings.ToLower(fields[0]), "-", 2)
	if len(pair) != 2 || pair[0] == "" || pair[1] == "" {
		return [2]string{}, fmt.Errorf("header %q does not declare a language pair: %w",
			fields[0], internalerr.ErrInvalidInput)
	}
	return [2]string{pair[0], pair[1]}, nil
}

// SourceLang returns the language being converted from.
func (r *Reader) SourceLang() string { return r.sourceLang }

// TargetLang returns the language being converted to.
func (r *Reader) TargetLang() string { return r.targetLang }

// Next returns the next usable record. Blank lines, comments, short lines
// and records whose translation normalizes to empty are skipped. The
// second return is false once the input is exhausted.
func (r *Reader) Next() (Record, bool, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			continue
		}

		src := normalizeField(fields[0])
		target := normalizeField(fields[1])
		var class string
		if len(fields) > 2 {
			class = strings.TrimSpace(fields[2])
		}

		if r.invert {
			src, target = target, src
		}

		target = strings.Join(strings.Fields(target), " ")
		if target == "" {
			continue
		}

		return Record{SourcePhrase: src, TargetPhrase: target, Class: class, Line: r.line}, true, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Record{}, false, err
	}
	return Record{}, false, nil
}

// Close closes the underlying file, if the reader owns one.
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// normalizeField undoes HTML escaping and brings the text to NFC.
func normalizeField(s string) string {
	return norm.NFC.String(html.UnescapeString(s))
}
