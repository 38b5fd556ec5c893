package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	loader := Loader{}
	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := comp.Tables.Language("en").EndSet("")["sb."]; !ok {
		t.Error("Built-in English tables should be loaded by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abbrev.yaml")
	content := `languages:
  sv:
    start_optional: [ngn.]
    synonyms:
      ngn.: [någon]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := Loader{AbbrevPath: path}
	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, ok := comp.Tables.Language("sv").StartSet("")["ngn."]; !ok {
		t.Error("Custom tables should replace the built-ins")
	}
	if len(comp.Tables.Language("en").Synonyms) != 0 {
		t.Error("Built-ins should not leak through a custom file")
	}
}

func TestLoadBadFile(t *testing.T) {
	loader := Loader{AbbrevPath: filepath.Join(t.TempDir(), "missing.yaml")}
	if _, err := loader.Load(); err == nil {
		t.Error("Expected error for missing file")
	}
}
