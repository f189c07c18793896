package commands

import (
	"encoding/json"
	"testing"

	"github.com/erraggy/casetools/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupConvertFlags(t *testing.T) {
	fs, flags := SetupConvertFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, "snake", flags.Convention)
		assert.Equal(t, FormatText, flags.Format)
		assert.Zero(t, flags.Concurrency)
		assert.False(t, flags.Acronyms.GoInitialisms)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"-t", "camel", "-j", "4", "-f", "json", "--go-initialisms", "--acronym", "xml=XML", "userID"}
		require.NoError(t, fs.Parse(args))
		assert.Equal(t, "camel", flags.Convention)
		assert.Equal(t, 4, flags.Concurrency)
		assert.Equal(t, FormatJSON, flags.Format)
		assert.True(t, flags.Acronyms.GoInitialisms)
		assert.Equal(t, acronymList{"xml": "XML"}, flags.Acronyms.Inline)
		assert.Equal(t, []string{"userID"}, fs.Args())
	})
}

func TestHandleConvert(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{"default snake", []string{"XMLHttpRequest", "FIELD_NAME11"}, "", "xml_http_request\nfield_name11\n"},
		{"camel", []string{"-t", "camel", "user_id"}, "", "userId\n"},
		{"alias", []string{"-t", "constant", "camelCase"}, "", "CAMEL_CASE\n"},
		{"go initialisms", []string{"-t", "pascal", "--go-initialisms", "user_id", "api_url"}, "", "UserID\nAPIURL\n"},
		{"inline acronym", []string{"-t", "pascal", "--acronym", "oauth=OAuth", "oauth_token"}, "", "OAuthToken\n"},
		{"stdin dash", []string{"-t", "kebab", "-"}, "userId\nHTTPStatus\n", "user-id\nhttp-status\n"},
		{"stdin implicit", []string{"-t", "train"}, "content_type\n", "Content-Type\n"},
		{"empty line kept", []string{}, "a_b\n\nc_d\n", "a_b\n\nc_d\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _ := captureIO(t, tt.stdin)
			require.NoError(t, HandleConvert(tt.args))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestHandleConvertJSON(t *testing.T) {
	out, _ := captureIO(t, "")
	require.NoError(t, HandleConvert([]string{"-t", "screaming-kebab", "-f", "json", "thisIsIt", "XMLHttpRequest"}))

	var report convertReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, convertReport{
		Convention: "screaming-kebab",
		Count:      2,
		Results: []conversionRecord{
			{Input: "thisIsIt", Output: "THIS-IS-IT"},
			{Input: "XMLHttpRequest", Output: "XML-HTTP-REQUEST"},
		},
	}, report)
}

func TestHandleConvertErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown convention", []string{"-t", "klingon", "x"}, "klingon"},
		{"bad format", []string{"-f", "xml", "x"}, "invalid format"},
		{"missing acronym file", []string{"-a", "/does/not/exist.yaml", "x"}, "loading acronyms"},
		{"bad acronym", []string{"--acronym", "=X", "x"}, "invalid acronym"},
		{"unknown flag", []string{"--nope"}, "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureIO(t, "")
			err := HandleConvert(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestHandleConvertHelp(t *testing.T) {
	out, errOut := captureIO(t, "")
	require.NoError(t, HandleConvert([]string{"--help"}))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Usage: casetools convert")
	assert.Contains(t, errOut.String(), "screaming-snake")
}

func TestHandleConvertAcronymFile(t *testing.T) {
	for _, ext := range []string{"yaml", "json", "toml"} {
		t.Run(ext, func(t *testing.T) {
			path := testutil.WriteTempAcronyms(t, ext, testutil.CommonAcronyms())
			out, _ := captureIO(t, "")
			require.NoError(t, HandleConvert([]string{"-t", "title", "-a", path, "oauth_xml_http_id", "user_id"}))
			assert.Equal(t, "OAuth XML HTTP ID\nUser ID\n", out.String())
		})
	}
}
