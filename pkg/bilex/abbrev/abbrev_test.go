package abbrev

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestBuiltinEnglish(t *testing.T) {
	en := Builtin().Language("en")

	start := en.StartSet("verb")
	for _, want := range []string{"to", "sb.", "sth."} {
		if _, ok := start[want]; !ok {
			t.Errorf("English verb start set missing %q", want)
		}
	}

	// "to" is a verb-only addition.
	if _, ok := en.StartSet("noun")["to"]; ok {
		t.Error("\"to\" should not be start-optional for nouns")
	}

	if !reflect.DeepEqual(en.Synonyms["sb."], []string{"somebody"}) {
		t.Errorf("Synonyms for sb. = %v", en.Synonyms["sb."])
	}
}

func TestClassMergeDoesNotPersist(t *testing.T) {
	en := Builtin().Language("en")
	_ = en.StartSet("verb")
	if _, ok := en.StartSet("")["to"]; ok {
		t.Error("Class-specific additions leaked into the base set")
	}
}

func TestUnknownLanguage(t *testing.T) {
	lang := Builtin().Language("xx")
	if len(lang.StartSet("verb")) != 0 || len(lang.Synonyms) != 0 {
		t.Errorf("Unknown language should have empty tables, got %+v", lang)
	}

	var nilTable *Table
	if got := nilTable.Language("en"); len(got.Synonyms) != 0 {
		t.Errorf("Nil table should behave as empty, got %+v", got)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abbrev.yaml")
	content := `languages:
  EN:
    start_optional: [sb.]
    end_optional: [sb., sth.]
    class_start_optional:
      verb: [to]
    synonyms:
      sb.: [somebody, someone]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tables, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("LoadYAML failed: %v", err)
	}

	// Language codes are lowercased on load.
	en := tables.Language("en")
	if _, ok := en.EndSet("")["sth."]; !ok {
		t.Error("End set missing sth.")
	}
	if _, ok := en.StartSet("verb")["to"]; !ok {
		t.Error("Verb start set missing to")
	}
	if !reflect.DeepEqual(en.Synonyms["sb."], []string{"somebody", "someone"}) {
		t.Errorf("Synonyms for sb. = %v", en.Synonyms["sb."])
	}
}

func TestLoadYAMLErrors(t *testing.T) {
	if _, err := LoadYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("languages: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadYAML(path); err == nil {
		t.Error("Expected error for empty tables")
	}
}
