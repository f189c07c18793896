package formatter

import (
	"strings"

	"github.com/erraggy/casetools/acronym"
	"github.com/erraggy/casetools/internal/naming"
	"github.com/erraggy/casetools/tokenizer"
)

// Format joins words in convention c. Words whose position is capitalized
// by c and that appear in table are written with the table's display form.
// An empty word list formats to "".
func Format(words []tokenizer.Word, c Convention, table acronym.Table) string {
	return FormatStyle(words, c.Style(), table)
}

// FormatStyle is Format for a caller-defined Style.
func FormatStyle(words []tokenizer.Word, style Style, table acronym.Table) string {
	if len(words) == 0 {
		return ""
	}

	m := naming.Get()
	defer naming.Put(m)

	var b strings.Builder
	b.Grow(estimateSize(words, style))

	for i, w := range words {
		if i > 0 {
			b.WriteString(style.Join)
		}
		rule := style.rule(i)
		if rule == RuleCapitalize {
			if display, ok := table.Resolve(w.Text); ok {
				b.WriteString(display)
				continue
			}
		}
		writeWord(m, &b, w, rule)
	}

	return b.String()
}

func writeWord(m *naming.Mapper, b *strings.Builder, w tokenizer.Word, rule Rule) {
	switch rule {
	case RuleLower:
		m.WriteLower(b, w.Text)
	case RuleUpper:
		m.WriteUpper(b, w.Text)
	case RuleCapitalize:
		m.WriteCapitalized(b, w.Text)
	default:
		if w.Raw != "" {
			b.WriteString(w.Raw)
		} else {
			b.WriteString(w.Text)
		}
	}
}

func estimateSize(words []tokenizer.Word, style Style) int {
	n := len(style.Join) * (len(words) - 1)
	for _, w := range words {
		n += len(w.Text)
	}
	return n
}
