// Package config assembles conversion components from configuration
// files, falling back to the built-in tables when no file is given.
package config

import (
	"fmt"

	"github.com/cognilex/bilex/pkg/bilex/abbrev"
)

// Loader points at the configuration files of a conversion run.
type Loader struct {
	// AbbrevPath overrides the built-in abbreviation tables when set.
	AbbrevPath string
}

// Components holds the loaded configuration components.
type Components struct {
	Tables *abbrev.Table
}

// Load reads the configuration files and returns initialized components.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.AbbrevPath != "" {
		tables, err := abbrev.LoadYAML(l.AbbrevPath)
		if err != nil {
			return nil, fmt.Errorf("load abbrev tables: %w", err)
		}
		comp.Tables = tables
	} else {
		comp.Tables = abbrev.Builtin()
	}

	return comp, nil
}
