package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupGenerateFlags(t *testing.T) {
	fs, flags := SetupGenerateFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Empty(t, flags.Output)
		assert.Equal(t, "names", flags.PackageName)
		assert.Empty(t, flags.TypeName)
		assert.False(t, flags.Values)
		assert.False(t, flags.Strict)
		assert.False(t, flags.NoWarnings)
		assert.Nil(t, fs.Lookup("go-initialisms"), "initialisms are always applied")
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-o", "out.go", "-p", "headers", "-type", "Header", "--values", "--strict", "names.txt"}
		require.NoError(t, fs.Parse(args))
		assert.Equal(t, "out.go", flags.Output)
		assert.Equal(t, "headers", flags.PackageName)
		assert.Equal(t, "Header", flags.TypeName)
		assert.True(t, flags.Values)
		assert.True(t, flags.Strict)
		assert.Equal(t, []string{"names.txt"}, fs.Args())
	})
}

func TestHandleGenerateStdout(t *testing.T) {
	out, errOut := captureIO(t, "content_type\nx_request_id\n# comment\n")
	require.NoError(t, HandleGenerate([]string{"-p", "headers", "-type", "Header", "--values", "-"}))

	src := out.String()
	assert.Contains(t, src, "// Code generated by casetools. DO NOT EDIT.")
	assert.Contains(t, src, "package headers")
	assert.Contains(t, src, "type Header string")
	assert.Contains(t, src, "HeaderContentType")
	assert.Contains(t, src, "HeaderXRequestID")
	assert.Contains(t, src, `"x_request_id"`)
	assert.Contains(t, src, "var HeaderValues = []Header{")
	assert.NotContains(t, src, "// Source:")
	assert.Empty(t, errOut.String())
}

func TestHandleGenerateOutputFile(t *testing.T) {
	dir := t.TempDir()
	namesPath := filepath.Join(dir, "fields.txt")
	require.NoError(t, os.WriteFile(namesPath, []byte("user_id\noauth_token\n"), 0o600))
	outPath := filepath.Join(dir, "gen", "fields.go")

	out, errOut := captureIO(t, "")
	require.NoError(t, HandleGenerate([]string{"-o", outPath, "--acronym", "oauth=OAuth", namesPath}))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Wrote 2 constant(s) from "+namesPath+" to "+outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	src := string(data)
	assert.Contains(t, src, "// Source: fields.txt")
	assert.Contains(t, src, "package names")
	assert.Contains(t, src, "UserID")
	assert.Contains(t, src, "OAuthToken")
}

func TestHandleGenerateIssues(t *testing.T) {
	const input = "user_id\n--\n"

	t.Run("warnings are reported", func(t *testing.T) {
		out, errOut := captureIO(t, input)
		require.NoError(t, HandleGenerate([]string{"-"}))
		assert.Contains(t, out.String(), "UserID")
		assert.Contains(t, errOut.String(), "⚠ line 2: name has no letters or digits; skipped")
	})

	t.Run("no-warnings suppresses them", func(t *testing.T) {
		_, errOut := captureIO(t, input)
		require.NoError(t, HandleGenerate([]string{"--no-warnings", "-"}))
		assert.Empty(t, errOut.String())
	})

	t.Run("values slice name is reserved", func(t *testing.T) {
		out, errOut := captureIO(t, "user_id\nvalues\n")
		require.NoError(t, HandleGenerate([]string{"-type", "Field", "--values", "-"}))
		assert.Contains(t, errOut.String(), "identifier FieldValues is reserved by the generated file; skipped")
		assert.NotContains(t, out.String(), `FieldValues Field = "values"`)
		assert.Contains(t, out.String(), "var FieldValues = []Field{")
	})

	t.Run("strict fails on warnings", func(t *testing.T) {
		out, _ := captureIO(t, input)
		err := HandleGenerate([]string{"--strict", "-"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "strict mode")
		assert.Empty(t, out.String())
	})
}

func TestHandleGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no input", []string{}, "exactly one names file"},
		{"two inputs", []string{"a.txt", "b.txt"}, "exactly one names file"},
		{"missing file", []string{"/does/not/exist.txt"}, "opening names file"},
		{"bad package", []string{"-p", "func", "-"}, "package"},
		{"unexported type", []string{"-type", "header", "-"}, "type"},
		{"values without type", []string{"--values", "-"}, "values"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureIO(t, "user_id\n")
			err := HandleGenerate(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
