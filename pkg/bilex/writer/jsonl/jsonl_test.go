package jsonl

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cognilex/bilex/pkg/bilex/writer"
)

func TestWriteAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")
	w, err := Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	entries := []writer.Entry{
		{Headword: "sprint", Translations: []string{"laufen"}, Alternates: []string{"run"}},
		{Headword: "walk", Translations: []string{"gehen"}},
	}
	for _, e := range entries {
		if err := w.Add(e); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("Got %d lines, want 2", len(lines))
	}
	for i, line := range lines {
		var e writer.Entry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("Line %d is not valid JSON: %v", i, err)
		}
		if !reflect.DeepEqual(e, entries[i]) {
			t.Errorf("Line %d = %+v, want %+v", i, e, entries[i])
		}
	}
}
