// Package abbrev holds the per-language abbreviation tables driving variant
// generation and synonym expansion:
//   - Optionality: abbreviations a user may leave out when they occur at a
//     phrase boundary ("to help sb." is findable as "help sb.").
//   - Synonyms: natural-language alternatives for an abbreviation
//     ("sb." is findable as "somebody").
//
// Tables are closed and hand-authored. Built-in tables cover the languages
// the source data actually uses; a YAML file can replace them. A language
// without a table means no abbreviation handling, never an error.
package abbrev

// Language is one language's abbreviation configuration. The zero value is
// valid and means "no abbreviation handling".
type Language struct {
	// StartOptional lists abbreviations droppable when they are the first
	// word of a phrase; EndOptional when they are the last.
	StartOptional []string
	EndOptional   []string

	// ClassStartOptional adds start-optional abbreviations for a specific
	// grammatical class only (English verbs get the infinitive "to").
	ClassStartOptional map[string][]string
	ClassEndOptional   map[string][]string

	// Synonyms maps an abbreviation literal to its spelled-out alternatives.
	Synonyms map[string][]string
}

// Table maps language codes to their abbreviation configuration.
type Table struct {
	languages map[string]Language
}

// New creates a table from per-language configurations. Language codes are
// matched verbatim; callers pass them lowercased.
func New(languages map[string]Language) *Table {
	if languages == nil {
		languages = map[string]Language{}
	}
	return &Table{languages: languages}
}

// Language returns the configuration for a language code. Unknown codes
// return the zero value, which disables abbreviation handling.
func (t *Table) Language(code string) Language {
	if t == nil {
		return Language{}
	}
	return t.languages[code]
}

// StartSet returns the effective start-optional set for a grammatical
// class: the base set plus any class-specific additions. The union is
// computed per call and never written back.
func (l Language) StartSet(class string) map[string]struct{} {
	return mergeSet(l.StartOptional, l.ClassStartOptional[class])
}

// EndSet returns the effective end-optional set for a grammatical class.
func (l Language) EndSet(class string) map[string]struct{} {
	return mergeSet(l.EndOptional, l.ClassEndOptional[class])
}

func mergeSet(base, extra []string) map[string]struct{} {
	set := make(map[string]struct{}, len(base)+len(extra))
	for _, a := range base {
		set[a] = struct{}{}
	}
	for _, a := range extra {
		set[a] = struct{}{}
	}
	return set
}

// Builtin returns the hand-authored tables for the dict.cc language pairs
// this converter is used with.
func Builtin() *Table {
	return New(map[string]Language{
		"en": {
			StartOptional: []string{"sb.", "sth."},
			EndOptional:   []string{"sb.", "sth."},
			ClassStartOptional: map[string][]string{
				"verb": {"to"},
			},
			Synonyms: map[string][]string{
				"sb.":  {"somebody"},
				"sth.": {"something"},
			},
		},
		"de": {
			StartOptional: []string{"jdn.", "jdm.", "jds.", "jd.", "etw."},
			EndOptional:   []string{"jdn.", "jdm.", "jds.", "jd.", "etw."},
			Synonyms: map[string][]string{
				"jd.":  {"jemand"},
				"jdn.": {"jemanden"},
				"jdm.": {"jemandem"},
				"jds.": {"jemandes"},
				"etw.": {"etwas"},
			},
		},
	})
}
