// Package stardict writes a dictionary in the StarDict file format: an
// .ifo metadata file, an .idx index of headwords pointing into a .dict
// data file, and a .syn file mapping alternate headwords onto their main
// entry. Definitions are rendered as an HTML ordered list, one list item
// per translation (sametypesequence=h).
package stardict

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"golang.org/x/net/html"

	"github.com/cognilex/bilex/pkg/bilex/writer"
)

// Info is the dictionary metadata written to the .ifo file.
type Info struct {
	Bookname    string
	Description string
	Date        time.Time
}

// Writer accumulates entries and lays the four files out on Close.
// Entries must all be added before Close; the format's index is sorted,
// so nothing can be written incrementally.
type Writer struct {
	dir      string
	basename string
	info     Info
	entries  []writer.Entry
	closed   bool
}

// New prepares a writer for dir/basename.{ifo,idx,dict,syn}. The
// directory is created if missing.
func New(dir, basename string, info Info) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	if info.Bookname == "" {
		info.Bookname = basename
	}
	if info.Date.IsZero() {
		info.Date = time.Now()
	}
	return &Writer{dir: dir, basename: basename, info: info}, nil
}

// Add implements writer.Writer.
func (w *Writer) Add(e writer.Entry) error {
	if w.closed {
		return fmt.Errorf("stardict: add after close")
	}
	w.entries = append(w.entries, e)
	return nil
}

// Close sorts the entries by the StarDict collation and writes all files.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	sort.SliceStable(w.entries, func(i, j int) bool {
		return compareWords(w.entries[i].Headword, w.entries[j].Headword) < 0
	})

	var dictBuf, idxBuf bytes.Buffer
	entryIndex := make(map[string]uint32, len(w.entries))

	for i, e := range w.entries {
		offset := uint32(dictBuf.Len())
		dictBuf.WriteString(renderDefinition(e.Translations))
		size := uint32(dictBuf.Len()) - offset

		idxBuf.WriteString(e.Headword)
		idxBuf.WriteByte(0)
		writeUint32(&idxBuf, offset)
		writeUint32(&idxBuf, size)
		entryIndex[e.Headword] = uint32(i)
	}

	// Alternates go into the .syn file, each pointing at the index of its
	// main entry, themselves sorted by the same collation.
	type syn struct {
		word  string
		index uint32
	}
	var syns []syn
	for _, e := range w.entries {
		for _, alt := range e.Alternates {
			syns = append(syns, syn{word: alt, index: entryIndex[e.Headword]})
		}
	}
	sort.SliceStable(syns, func(i, j int) bool {
		return compareWords(syns[i].word, syns[j].word) < 0
	})

	var synBuf bytes.Buffer
	for _, s := range syns {
		synBuf.WriteString(s.word)
		synBuf.WriteByte(0)
		writeUint32(&synBuf, s.index)
	}

	if err := w.writeFile(".dict", dictBuf.Bytes()); err != nil {
		return err
	}
	if err := w.writeFile(".idx", idxBuf.Bytes()); err != nil {
		return err
	}
	if len(syns) > 0 {
		if err := w.writeFile(".syn", synBuf.Bytes()); err != nil {
			return err
		}
	}
	return w.writeFile(".ifo", w.renderIfo(len(w.entries), len(syns), idxBuf.Len()))
}

func (w *Writer) writeFile(ext string, data []byte) error {
	path := filepath.Join(w.dir, w.basename+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (w *Writer) renderIfo(wordcount, synwordcount, idxfilesize int) []byte {
	var buf bytes.Buffer
	buf.WriteString("StarDict's dict ifo file\n")
	buf.WriteString("version=3.0.0\n")
	fmt.Fprintf(&buf, "bookname=%s\n", w.info.Bookname)
	fmt.Fprintf(&buf, "wordcount=%d\n", wordcount)
	if synwordcount > 0 {
		fmt.Fprintf(&buf, "synwordcount=%d\n", synwordcount)
	}
	fmt.Fprintf(&buf, "idxfilesize=%d\n", idxfilesize)
	buf.WriteString("sametypesequence=h\n")
	fmt.Fprintf(&buf, "date=%s\n", w.info.Date.Format("2006-01-02"))
	if w.info.Description != "" {
		fmt.Fprintf(&buf, "description=%s\n", w.info.Description)
	}
	return buf.Bytes()
}

// renderDefinition builds the HTML definition body: an ordered list with
// one item per translation.
func renderDefinition(translations []string) string {
	var buf bytes.Buffer
	buf.WriteString("<ol>")
	for _, tr := range translations {
		buf.WriteString("<li>")
		buf.WriteString(html.EscapeString(tr))
		buf.WriteString("</li>")
	}
	buf.WriteString("</ol>")
	return buf.String()
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

// compareWords is the StarDict index collation: ASCII-case-insensitive
// byte comparison, falling back to plain byte comparison on a tie.
func compareWords(a, b string) int {
	if c := asciiCaseCompare(a, b); c != 0 {
		return c
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func asciiCaseCompare(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		ca, cb := asciiLower(a[i]), asciiLower(b[i])
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func asciiLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
