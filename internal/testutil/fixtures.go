// Package testutil provides acronym table fixtures for tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/erraggy/casetools/internal/fileutil"
	"go.yaml.in/yaml/v4"
)

// CommonAcronyms is a small structured acronym document.
func CommonAcronyms() map[string]any {
	return map[string]any{
		"acronyms": map[string]string{
			"oauth": "OAuth",
			"xml":   "XML",
		},
		"initialisms": []string{"HTTP", "ID"},
	}
}

// WriteTempAcronyms marshals doc as YAML, JSON or TOML (chosen by ext) and
// writes it to acronyms.<ext> in a temporary directory.
// Returns the path to the file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempAcronyms(t *testing.T, ext string, doc any) string {
	t.Helper()

	var data []byte
	var err error
	switch ext {
	case "yaml", "yml":
		data, err = yaml.Marshal(doc)
	case "json":
		data, err = json.MarshalIndent(doc, "", "  ")
	case "toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(doc)
		data = buf.Bytes()
	default:
		t.Fatalf("unsupported acronym fixture extension %q", ext)
	}
	if err != nil {
		t.Fatalf("Failed to marshal acronym document to %s: %v", ext, err)
	}

	tmpFile := filepath.Join(t.TempDir(), "acronyms."+ext)
	if err := os.WriteFile(tmpFile, data, fileutil.OwnerReadWrite); err != nil {
		t.Fatalf("Failed to write temporary acronym file: %v", err)
	}

	return tmpFile
}
