package commands

import (
	"flag"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/erraggy/casetools/acronym"
)

// acronymList collects repeated --acronym values. Each value is either
// "word=Display" or a bare initialism such as "OAuth".
type acronymList map[string]string

// String implements flag.Value.
func (l acronymList) String() string {
	parts := make([]string, 0, len(l))
	for _, k := range slices.Sorted(maps.Keys(l)) {
		parts = append(parts, k+"="+l[k])
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (l acronymList) Set(value string) error {
	key, display, found := strings.Cut(value, "=")
	if !found {
		key, display = value, value
	}
	key = strings.TrimSpace(key)
	display = strings.TrimSpace(display)
	if key == "" || display == "" {
		return fmt.Errorf("invalid acronym %q: want word=Display or Initialism", value)
	}
	l[key] = display
	return nil
}

// acronymFlags are the acronym settings shared by several commands.
type acronymFlags struct {
	File          string
	Inline        acronymList
	GoInitialisms bool
}

// register binds the acronym flags to fs. withGo adds --go-initialisms.
func (a *acronymFlags) register(fs *flag.FlagSet, withGo bool) {
	a.Inline = make(acronymList)
	fs.StringVar(&a.File, "a", "", "acronym table file (.yaml, .json or .toml)")
	fs.StringVar(&a.File, "acronyms", "", "acronym table file (.yaml, .json or .toml)")
	fs.Var(a.Inline, "acronym", "acronym as word=Display or Initialism (repeatable)")
	if withGo {
		fs.BoolVar(&a.GoInitialisms, "go-initialisms", false, "apply the common Go initialisms (ID, URL, HTTP ...)")
	}
}

// table merges the configured acronyms: Go initialisms, then the file, then
// --acronym values.
func (a *acronymFlags) table() (acronym.Table, error) {
	var tables []acronym.Table
	if a.GoInitialisms {
		tables = append(tables, acronym.GoInitialisms())
	}
	if a.File != "" {
		t, err := acronym.LoadFile(a.File)
		if err != nil {
			return acronym.Table{}, err
		}
		tables = append(tables, t)
	}
	tables = append(tables, acronym.New(a.Inline))
	return acronym.Merge(tables...), nil
}
