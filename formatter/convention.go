package formatter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/casetools/caseerrors"
)

// Rule is the casing applied to a single word.
type Rule int

const (
	// RuleIdentity writes the word as it appeared in the input.
	RuleIdentity Rule = iota
	// RuleLower writes the word in lower case.
	RuleLower
	// RuleUpper writes the word in upper case.
	RuleUpper
	// RuleCapitalize upper-cases the first rune and lower-cases the rest.
	RuleCapitalize
)

// String returns the name of the rule.
func (r Rule) String() string {
	switch r {
	case RuleIdentity:
		return "identity"
	case RuleLower:
		return "lower"
	case RuleUpper:
		return "upper"
	case RuleCapitalize:
		return "capitalize"
	default:
		return "unknown"
	}
}

// Style describes how words are cased and joined.
type Style struct {
	// Join is written between consecutive words.
	Join string
	// First is the rule for the first word.
	First Rule
	// Rest is the rule for every word after the first.
	Rest Rule
}

// rule returns the rule for the word at position i.
func (s Style) rule(i int) Rule {
	if i == 0 {
		return s.First
	}
	return s.Rest
}

// Convention is a named output format.
type Convention int

const (
	// Snake is "snake_case".
	Snake Convention = iota
	// ScreamingSnake is "SCREAMING_SNAKE_CASE".
	ScreamingSnake
	// Camel is "camelCase".
	Camel
	// Pascal is "PascalCase".
	Pascal
	// Kebab is "kebab-case".
	Kebab
	// ScreamingKebab is "SCREAMING-KEBAB-CASE".
	ScreamingKebab
	// Train is "Train-Case".
	Train
	// Title is "Title Case".
	Title
	// Lower is "lower case".
	Lower
	// Upper is "UPPER CASE".
	Upper
)

// conventionInfo holds the name and style of each Convention, indexed by value.
var conventionInfo = [...]struct {
	name  string
	style Style
}{
	Snake:          {"snake", Style{Join: "_", First: RuleLower, Rest: RuleLower}},
	ScreamingSnake: {"screaming-snake", Style{Join: "_", First: RuleUpper, Rest: RuleUpper}},
	Camel:          {"camel", Style{Join: "", First: RuleLower, Rest: RuleCapitalize}},
	Pascal:         {"pascal", Style{Join: "", First: RuleCapitalize, Rest: RuleCapitalize}},
	Kebab:          {"kebab", Style{Join: "-", First: RuleLower, Rest: RuleLower}},
	ScreamingKebab: {"screaming-kebab", Style{Join: "-", First: RuleUpper, Rest: RuleUpper}},
	Train:          {"train", Style{Join: "-", First: RuleCapitalize, Rest: RuleCapitalize}},
	Title:          {"title", Style{Join: " ", First: RuleCapitalize, Rest: RuleCapitalize}},
	Lower:          {"lower", Style{Join: " ", First: RuleLower, Rest: RuleLower}},
	Upper:          {"upper", Style{Join: " ", First: RuleUpper, Rest: RuleUpper}},
}

// conventionAliases maps alternative names to conventions. Names are
// compared after lower-casing and replacing '_' and ' ' with '-'.
var conventionAliases = map[string]Convention{
	"snake-case":           Snake,
	"screaming-snake-case": ScreamingSnake,
	"constant":             ScreamingSnake,
	"macro":                ScreamingSnake,
	"camel-case":           Camel,
	"lower-camel":          Camel,
	"pascal-case":          Pascal,
	"upper-camel":          Pascal,
	"kebab-case":           Kebab,
	"dash":                 Kebab,
	"screaming-kebab-case": ScreamingKebab,
	"cobol":                ScreamingKebab,
	"train-case":           Train,
	"http-header":          Train,
	"title-case":           Title,
	"lower-case":           Lower,
	"upper-case":           Upper,
}

// AllConventions returns every convention in declaration order.
func AllConventions() []Convention {
	out := make([]Convention, len(conventionInfo))
	for i := range conventionInfo {
		out[i] = Convention(i)
	}
	return out
}

// ValidConventions returns the canonical names of all conventions.
func ValidConventions() []string {
	out := make([]string, len(conventionInfo))
	for i, info := range conventionInfo {
		out[i] = info.name
	}
	return out
}

// Aliases returns the alternative names accepted for c, sorted.
func Aliases(c Convention) []string {
	var out []string
	for alias, target := range conventionAliases {
		if target == c {
			out = append(out, alias)
		}
	}
	slices.Sort(out)
	return out
}

// IsValidConvention reports whether name (or one of its aliases) names a convention.
func IsValidConvention(name string) bool {
	_, err := ParseConvention(name)
	return err == nil
}

// ParseConvention returns the Convention for name. Matching ignores case and
// treats '_', '-' and ' ' alike, so "SCREAMING_SNAKE", "screaming-snake" and
// "constant" all name ScreamingSnake.
func ParseConvention(name string) (Convention, error) {
	key := normalizeName(name)
	for i, info := range conventionInfo {
		if info.name == key {
			return Convention(i), nil
		}
	}
	if c, ok := conventionAliases[key]; ok {
		return c, nil
	}
	return 0, &caseerrors.ConfigError{
		Option:  "convention",
		Value:   name,
		Message: fmt.Sprintf("valid conventions: %s", strings.Join(ValidConventions(), ", ")),
	}
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", "-", " ", "-").Replace(name)
}

// IsValid reports whether c is a defined convention.
func (c Convention) IsValid() bool {
	return c >= 0 && int(c) < len(conventionInfo)
}

// String returns the canonical name of the convention.
func (c Convention) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Convention(%d)", int(c))
	}
	return conventionInfo[c].name
}

// Style returns the join string and casing rules of the convention.
// An undefined convention returns the snake style.
func (c Convention) Style() Style {
	if !c.IsValid() {
		return conventionInfo[Snake].style
	}
	return conventionInfo[c].style
}

// MarshalText implements encoding.TextMarshaler.
func (c Convention) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, &caseerrors.ConfigError{Option: "convention", Value: int(c), Message: "undefined convention"}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Convention) UnmarshalText(text []byte) error {
	parsed, err := ParseConvention(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
