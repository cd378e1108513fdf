package fasta

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// LineReader streams sequences from plain text, one sequence per line.
// Blank lines and lines starting with '#' are skipped. Sequences are named
// by their line number.
type LineReader struct {
	scanner *bufio.Scanner
	line    int
}

func NewLineReader(reader io.Reader) *LineReader {
	return &LineReader{
		scanner: newScanner(reader),
	}
}

// Next returns the next sequence as (id, sequence).
// It returns io.EOF when exhausted.
func (r *LineReader) Next() (string, []byte, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimRight(r.scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return "line-" + strconv.Itoa(r.line), []byte(line), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", nil, err
	}
	return "", nil, io.EOF
}
