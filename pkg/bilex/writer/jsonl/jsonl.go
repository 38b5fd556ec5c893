// Package jsonl writes dictionary entries as JSON lines, one entry per
// line. Useful for debugging a conversion and as an interchange format.
package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/cognilex/bilex/pkg/bilex/writer"
)

// Writer streams entries to a JSONL file.
type Writer struct {
	f  *os.File
	bw *bufio.Writer
}

// Create opens the output file, truncating any existing content.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return &Writer{f: f, bw: bufio.NewWriter(f)}, nil
}

// Add implements writer.Writer.
func (w *Writer) Add(e writer.Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if _, err := w.bw.Write(data); err != nil {
		return err
	}
	return w.bw.WriteByte('\n')
}

// Close implements writer.Writer.
func (w *Writer) Close() error {
	if err := w.bw.Flush(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}
