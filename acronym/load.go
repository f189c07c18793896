package acronym

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/erraggy/casetools/caseerrors"
	"go.yaml.in/yaml/v4"
)

// Format identifies the encoding of an acronym document.
type Format string

const (
	// FormatYAML is a YAML document (also the fallback for unknown extensions).
	FormatYAML Format = "yaml"
	// FormatJSON is a JSON document.
	FormatJSON Format = "json"
	// FormatTOML is a TOML document.
	FormatTOML Format = "toml"
)

// Document keys with a structural meaning.
const (
	keyAcronyms    = "acronyms"
	keyInitialisms = "initialisms"
)

// FormatFromPath infers the document format from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// ParseFormat returns the Format named by s ("yaml", "yml", "json", "toml").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml", "":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", &caseerrors.ConfigError{
			Option:  "format",
			Value:   s,
			Message: "must be one of yaml, json, toml",
		}
	}
}

// LoadFile reads an acronym table from path. The format is inferred from
// the file extension.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304 - path is supplied by the caller on purpose
	if err != nil {
		return Table{}, fmt.Errorf("acronym: reading %s: %w", path, err)
	}
	t, err := Parse(data, FormatFromPath(path))
	if err != nil {
		var perr *caseerrors.ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return Table{}, err
	}
	return t, nil
}

// Parse decodes an acronym table from data.
//
// The document is either a flat mapping of word to display form, or a mapping
// with an "acronyms" mapping and/or an "initialisms" list. Both shapes may be
// mixed; explicit acronyms override initialisms, and top-level entries
// override both.
func Parse(data []byte, format Format) (Table, error) {
	raw := make(map[string]any)

	var err error
	switch format {
	case FormatJSON:
		if len(strings.TrimSpace(string(data))) > 0 {
			err = json.Unmarshal(data, &raw)
		}
	case FormatTOML:
		_, err = toml.Decode(string(data), &raw)
	case FormatYAML, "":
		format = FormatYAML
		err = yaml.Unmarshal(data, &raw)
	default:
		return Table{}, &caseerrors.ConfigError{Option: "format", Value: string(format), Message: "unsupported acronym document format"}
	}
	if err != nil {
		return Table{}, &caseerrors.ParseError{
			Format:  string(format),
			Message: "decoding acronym table",
			Cause:   err,
		}
	}

	t, err := fromDocument(raw)
	if err != nil {
		return Table{}, &caseerrors.ParseError{Format: string(format), Message: err.Error()}
	}
	return t, nil
}

func fromDocument(raw map[string]any) (Table, error) {
	var initialisms []string
	if v, ok := raw[keyInitialisms]; ok {
		if list, isList := v.([]any); isList {
			for i, item := range list {
				s, isString := item.(string)
				if !isString {
					return Table{}, fmt.Errorf("initialisms[%d]: expected a string, got %T", i, item)
				}
				initialisms = append(initialisms, s)
			}
			delete(raw, keyInitialisms)
		}
	}

	acronyms := make(map[string]string)
	if v, ok := raw[keyAcronyms]; ok {
		if m, isMap := v.(map[string]any); isMap {
			if err := copyStrings(acronyms, m, keyAcronyms+"."); err != nil {
				return Table{}, err
			}
			delete(raw, keyAcronyms)
		}
	}

	flat := make(map[string]string, len(raw))
	if err := copyStrings(flat, raw, ""); err != nil {
		return Table{}, err
	}

	return Merge(FromList(initialisms), New(acronyms), New(flat)), nil
}

func copyStrings(dst map[string]string, src map[string]any, prefix string) error {
	for _, key := range slices.Sorted(maps.Keys(src)) {
		s, ok := src[key].(string)
		if !ok {
			return fmt.Errorf("%s%s: expected a string, got %T", prefix, key, src[key])
		}
		dst[key] = s
	}
	return nil
}
