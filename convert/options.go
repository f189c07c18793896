package convert

import (
	"runtime"

	"github.com/erraggy/casetools/acronym"
)

// Option configures a conversion.
type Option func(*convertConfig)

// convertConfig holds the settings built from a list of options.
type convertConfig struct {
	tables      []acronym.Table
	concurrency int
}

func applyOptions(opts []Option) *convertConfig {
	cfg := &convertConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// acronyms merges the configured tables; later options override earlier ones.
func (c *convertConfig) acronyms() acronym.Table {
	switch len(c.tables) {
	case 0:
		return acronym.Table{}
	case 1:
		return c.tables[0]
	default:
		return acronym.Merge(c.tables...)
	}
}

func (c *convertConfig) workers(n int) int {
	w := c.concurrency
	if w <= 0 {
		w = runtime.GOMAXPROCS(0)
	}
	return max(1, min(w, n))
}

// WithAcronyms adds display forms for words, keyed by the word in any case.
// Example: WithAcronyms(map[string]string{"xml": "XML"})
func WithAcronyms(m map[string]string) Option {
	table := acronym.New(m)
	return WithAcronymTable(table)
}

// WithAcronymTable adds the entries of an existing table.
func WithAcronymTable(t acronym.Table) Option {
	return func(cfg *convertConfig) {
		if !t.IsEmpty() {
			cfg.tables = append(cfg.tables, t)
		}
	}
}

// WithGoInitialisms adds the common Go initialisms (ID, URL, HTTP, ...).
func WithGoInitialisms() Option {
	return WithAcronymTable(acronym.GoInitialisms())
}

// WithConcurrency sets the number of workers used by ConvertAll.
// Values below 1 use runtime.GOMAXPROCS(0). Other functions ignore it.
func WithConcurrency(n int) Option {
	return func(cfg *convertConfig) {
		cfg.concurrency = n
	}
}
