package generator

import (
	"embed"
	"strconv"
	"text/template"

	"golang.org/x/tools/imports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("").
	Funcs(template.FuncMap{"quote": strconv.Quote}).
	ParseFS(templateFS, "templates/*.tmpl"))

// templateData is the input of constants.go.tmpl.
type templateData struct {
	PackageName string
	TypeName    string
	Source      string
	ValuesVar   bool
	Constants   []Constant
}

// formatAndFixImports formats Go source code and fixes imports.
func formatAndFixImports(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, nil)
}
