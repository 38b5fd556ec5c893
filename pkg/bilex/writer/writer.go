// Package writer defines the output side of a conversion: one Entry per
// meaning group, handed to a format-specific writer. The core hands over
// headwords and translation lists; rendering, collation and file layout
// belong to the writer.
package writer

// Entry is one dictionary entry to be written.
type Entry struct {
	Headword     string   `json:"headword"`
	Translations []string `json:"translations"`
	Alternates   []string `json:"alternates,omitempty"`
}

// Writer receives entries and persists them on Close.
type Writer interface {
	Add(e Entry) error
	Close() error
}
