// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		reportWriteError(err)
	}
}

// WriteLines writes each line followed by a newline through one buffer, so
// large conversion results do not cost a write call per line. It stops at
// the first failed write and logs it to stderr.
func WriteLines(w io.Writer, lines []string) {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			reportWriteError(err)
			return
		}
		if err := bw.WriteByte('\n'); err != nil {
			reportWriteError(err)
			return
		}
	}
	if err := bw.Flush(); err != nil {
		reportWriteError(err)
	}
}

func reportWriteError(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
}
