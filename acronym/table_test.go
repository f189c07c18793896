package acronym

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("keys are lower-cased and values kept verbatim", func(t *testing.T) {
		table := New(map[string]string{"XML": "XML", "Http": "hTTp"})
		assert.Equal(t, 2, table.Len())
		assert.Equal(t, []string{"http", "xml"}, table.Words())

		v, ok := table.Resolve("http")
		assert.True(t, ok)
		assert.Equal(t, "hTTp", v)
	})

	t.Run("empty keys are dropped", func(t *testing.T) {
		table := New(map[string]string{"": "X", "id": "ID"})
		assert.Equal(t, []string{"id"}, table.Words())
	})

	t.Run("colliding keys resolve deterministically", func(t *testing.T) {
		for range 20 {
			table := New(map[string]string{"XML": "from-upper", "xml": "from-lower", "Xml": "from-title"})
			v, ok := table.Resolve("xml")
			assert.True(t, ok)
			// "xml" sorts after "XML" and "Xml", so it is applied last.
			assert.Equal(t, "from-lower", v)
		}
	})

	t.Run("nil map gives an empty table", func(t *testing.T) {
		table := New(nil)
		assert.True(t, table.IsEmpty())
		assert.Nil(t, table.Words())
		assert.Nil(t, table.Map())
	})
}

func TestResolve(t *testing.T) {
	table := New(map[string]string{"xml": "XML", "oauth": "OAuth", "straße": "STRASSE"})

	tests := []struct {
		name   string
		word   string
		want   string
		wantOK bool
	}{
		{name: "exact lower-case key", word: "xml", want: "XML", wantOK: true},
		{name: "upper-case lookup", word: "XML", want: "XML", wantOK: true},
		{name: "mixed-case lookup", word: "OAuth", want: "OAuth", wantOK: true},
		{name: "unicode key", word: "STRAßE", want: "STRASSE", wantOK: true},
		{name: "missing word", word: "http", wantOK: false},
		{name: "empty word", word: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.Resolve(tt.word)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestZeroTable(t *testing.T) {
	var table Table
	_, ok := table.Resolve("xml")
	assert.False(t, ok)
	assert.Equal(t, 0, table.Len())
	assert.True(t, table.IsEmpty())
}

func TestFromList(t *testing.T) {
	table := FromList([]string{"XML", "OAuth", "id"})
	assert.Equal(t, map[string]string{"xml": "XML", "oauth": "OAuth", "id": "id"}, table.Map())
	assert.True(t, FromList(nil).IsEmpty())
}

func TestMapReturnsCopy(t *testing.T) {
	table := New(map[string]string{"xml": "XML"})
	m := table.Map()
	m["xml"] = "changed"
	m["http"] = "HTTP"

	v, _ := table.Resolve("xml")
	assert.Equal(t, "XML", v)
	assert.Equal(t, 1, table.Len())
}

func TestMerge(t *testing.T) {
	base := New(map[string]string{"xml": "XML", "http": "HTTP"})
	override := New(map[string]string{"http": "Http", "id": "ID"})

	merged := Merge(base, override)
	assert.Equal(t, map[string]string{"xml": "XML", "http": "Http", "id": "ID"}, merged.Map())

	// Inputs are untouched.
	v, _ := base.Resolve("http")
	assert.Equal(t, "HTTP", v)

	assert.True(t, Merge().IsEmpty())
	assert.True(t, Merge(Table{}, Table{}).IsEmpty())
}

func TestGoInitialisms(t *testing.T) {
	table := GoInitialisms()
	for _, word := range []string{"id", "url", "http", "json", "utf8", "xml"} {
		v, ok := table.Resolve(word)
		assert.True(t, ok, "missing initialism %q", word)
		assert.Equal(t, upperASCII(word), v)
	}
	_, ok := table.Resolve("request")
	assert.False(t, ok)
}

func TestConcurrentResolve(t *testing.T) {
	table := GoInitialisms()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				v, ok := table.Resolve("Http")
				assert.True(t, ok)
				assert.Equal(t, "HTTP", v)
			}
		}()
	}
	wg.Wait()
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
