package abbrev

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognilex/bilex/pkg/bilex/internalerr"
)

// LoadYAML loads abbreviation tables from a YAML file.
//
// Expected format:
//
//	languages:
//	  en:
//	    start_optional: [sb., sth.]
//	    end_optional: [sb., sth.]
//	    class_start_optional:
//	      verb: [to]
//	    synonyms:
//	      sb.: [somebody]
//	      sth.: [something]
//
// Language codes are lowercased on load; abbreviation literals are kept
// verbatim.
func LoadYAML(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read abbrev tables %s: %w", path, err)
	}

	var doc struct {
		Languages map[string]struct {
			StartOptional      []string            `yaml:"start_optional"`
			EndOptional        []string            `yaml:"end_optional"`
			ClassStartOptional map[string][]string `yaml:"class_start_optional"`
			ClassEndOptional   map[string][]string `yaml:"class_end_optional"`
			Synonyms           map[string][]string `yaml:"synonyms"`
		} `yaml:"languages"`
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse abbrev tables %s: %w", path, err)
	}
	if len(doc.Languages) == 0 {
		return nil, fmt.Errorf("abbrev tables %s: no languages defined: %w", path, internalerr.ErrInvalidConfig)
	}

	languages := make(map[string]Language, len(doc.Languages))
	for code, lang := range doc.Languages {
		languages[strings.ToLower(code)] = Language{
			StartOptional:      lang.StartOptional,
			EndOptional:        lang.EndOptional,
			ClassStartOptional: lang.ClassStartOptional,
			ClassEndOptional:   lang.ClassEndOptional,
			Synonyms:           lang.Synonyms,
		}
	}

	return New(languages), nil
}
