package issues

import (
	"strconv"
	"strings"
	"sync"
)

var stringBuilderPool = sync.Pool{
	New: func() any {
		return new(strings.Builder)
	},
}

// getStringBuilder retrieves a builder from the pool and resets it.
func getStringBuilder() *strings.Builder {
	sb := stringBuilderPool.Get().(*strings.Builder)
	sb.Reset()
	return sb
}

// putStringBuilder returns a builder to the pool.
func putStringBuilder(sb *strings.Builder) {
	if sb == nil {
		return
	}
	stringBuilderPool.Put(sb)
}

// IndexPath formats the path of an element of a named list, such as
// "names[3]". A negative index returns name unchanged.
func IndexPath(name string, index int) string {
	if index < 0 {
		return name
	}

	sb := getStringBuilder()
	var digits [20]byte
	sb.Grow(len(name) + 2 + len(digits))
	sb.WriteString(name)
	sb.WriteByte('[')
	sb.Write(strconv.AppendInt(digits[:0], int64(index), 10))
	sb.WriteByte(']')
	result := sb.String()
	putStringBuilder(sb)
	return result
}
