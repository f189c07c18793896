package generator

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadNames reads one name per line from r. Lines keep their position so
// issue line numbers match the input; GenerateConstants ignores blank and
// "#" lines.
func ReadNames(r io.Reader) ([]string, error) {
	var names []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		names = append(names, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("generator: reading names: %w", err)
	}
	return names, nil
}
