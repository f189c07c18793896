package formatter

import (
	"encoding/json"
	"testing"

	"github.com/erraggy/casetools/caseerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConventionStyles(t *testing.T) {
	tests := []struct {
		convention Convention
		name       string
		style      Style
	}{
		{Snake, "snake", Style{"_", RuleLower, RuleLower}},
		{ScreamingSnake, "screaming-snake", Style{"_", RuleUpper, RuleUpper}},
		{Camel, "camel", Style{"", RuleLower, RuleCapitalize}},
		{Pascal, "pascal", Style{"", RuleCapitalize, RuleCapitalize}},
		{Kebab, "kebab", Style{"-", RuleLower, RuleLower}},
		{ScreamingKebab, "screaming-kebab", Style{"-", RuleUpper, RuleUpper}},
		{Train, "train", Style{"-", RuleCapitalize, RuleCapitalize}},
		{Title, "title", Style{" ", RuleCapitalize, RuleCapitalize}},
		{Lower, "lower", Style{" ", RuleLower, RuleLower}},
		{Upper, "upper", Style{" ", RuleUpper, RuleUpper}},
	}

	require.Len(t, AllConventions(), len(tests))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.convention.IsValid())
			assert.Equal(t, tt.name, tt.convention.String())
			assert.Equal(t, tt.style, tt.convention.Style())
		})
	}
}

func TestParseConvention(t *testing.T) {
	tests := []struct {
		input string
		want  Convention
	}{
		{"snake", Snake},
		{"SNAKE", Snake},
		{" snake_case ", Snake},
		{"screaming_snake", ScreamingSnake},
		{"Screaming Snake", ScreamingSnake},
		{"constant", ScreamingSnake},
		{"camel", Camel},
		{"lower-camel", Camel},
		{"pascal", Pascal},
		{"upper_camel", Pascal},
		{"kebab", Kebab},
		{"screaming-kebab", ScreamingKebab},
		{"cobol", ScreamingKebab},
		{"train", Train},
		{"http-header", Train},
		{"title", Title},
		{"lower", Lower},
		{"upper", Upper},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseConvention(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseConventionUnknown(t *testing.T) {
	_, err := ParseConvention("hungarian")
	require.Error(t, err)
	assert.ErrorIs(t, err, caseerrors.ErrConfig)

	var cerr *caseerrors.ConfigError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "convention", cerr.Option)
	assert.Equal(t, "hungarian", cerr.Value)
	assert.Contains(t, err.Error(), "screaming-kebab")

	assert.False(t, IsValidConvention("hungarian"))
	assert.False(t, IsValidConvention(""))
	// Only separators are normalized, not word boundaries inside a name.
	assert.False(t, IsValidConvention("lowerCamel"))
	assert.True(t, IsValidConvention("Train-Case"))
}

func TestValidConventions(t *testing.T) {
	assert.Equal(t, []string{
		"snake", "screaming-snake", "camel", "pascal", "kebab",
		"screaming-kebab", "train", "title", "lower", "upper",
	}, ValidConventions())

	for _, name := range ValidConventions() {
		c, err := ParseConvention(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.String())
	}
}

func TestAliases(t *testing.T) {
	assert.Equal(t, []string{"constant", "macro", "screaming-snake-case"}, Aliases(ScreamingSnake))
	assert.Equal(t, []string{"http-header", "train-case"}, Aliases(Train))
	assert.Empty(t, Aliases(Convention(42)))

	for _, c := range AllConventions() {
		for _, alias := range Aliases(c) {
			got, err := ParseConvention(alias)
			require.NoError(t, err)
			assert.Equal(t, c, got, "alias %q", alias)
		}
	}
}

func TestUndefinedConvention(t *testing.T) {
	c := Convention(42)
	assert.False(t, c.IsValid())
	assert.False(t, Convention(-1).IsValid())
	assert.Equal(t, "Convention(42)", c.String())
	assert.Equal(t, Snake.Style(), c.Style())

	_, err := c.MarshalText()
	assert.ErrorIs(t, err, caseerrors.ErrConfig)
}

func TestConventionJSON(t *testing.T) {
	type payload struct {
		Convention Convention `json:"convention"`
	}

	data, err := json.Marshal(payload{Convention: ScreamingKebab})
	require.NoError(t, err)
	assert.JSONEq(t, `{"convention":"screaming-kebab"}`, string(data))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"convention":"http-header"}`), &p))
	assert.Equal(t, Train, p.Convention)

	err = json.Unmarshal([]byte(`{"convention":"nope"}`), &p)
	assert.ErrorIs(t, err, caseerrors.ErrConfig)
}

func TestRuleString(t *testing.T) {
	assert.Equal(t, "identity", RuleIdentity.String())
	assert.Equal(t, "lower", RuleLower.String())
	assert.Equal(t, "upper", RuleUpper.String())
	assert.Equal(t, "capitalize", RuleCapitalize.String())
	assert.Equal(t, "unknown", Rule(9).String())
}
