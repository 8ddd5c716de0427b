// Package journal implements the append-only sink the soak run records
// operation outcomes to: one plain text line per operation, no timestamps,
// no levels. Diagnostic logging stays on zap; this file is program output.
package journal

import (
	"bufio"
	"fmt"
	"os"
)

// Journal is a buffered, append-only line sink over a single file. It is
// not safe for concurrent use on its own; the shared package serializes
// access to it together with the stack.
type Journal struct {
	file  *os.File
	buf   *bufio.Writer
	lines int
}

// Open creates path, truncating any previous contents, and returns a
// journal writing to it. The caller must Close the journal to flush
// buffered lines.
func Open(path string) (*Journal, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create journal %q: %w", path, err)
	}
	return &Journal{file: file, buf: bufio.NewWriter(file)}, nil
}

// Appendf formats one record and appends it as a newline-terminated line.
// A write error is fatal for the operation in progress; nothing is retried.
func (j *Journal) Appendf(format string, args ...interface{}) error {
	if _, err := fmt.Fprintf(j.buf, format+"\n", args...); err != nil {
		return fmt.Errorf("append journal line: %w", err)
	}
	j.lines++
	return nil
}

// Lines returns the number of lines appended so far, flushed or not.
func (j *Journal) Lines() int {
	return j.lines
}

// Close flushes all buffered lines and closes the underlying file. A flush
// failure is reported; the file is closed either way.
func (j *Journal) Close() error {
	flushErr := j.buf.Flush()
	closeErr := j.file.Close()
	if flushErr != nil {
		return fmt.Errorf("flush journal: %w", flushErr)
	}
	return closeErr
}
