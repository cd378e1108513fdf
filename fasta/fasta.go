/*
Package fasta reads sequences from FASTA files and from plain text files with
one sequence per line.

A FASTA record starts with a header line

	>id description

followed by any number of sequence lines, which are concatenated. Lines
starting with ';' are comments, blank lines are skipped. Sequence data before
the first header forms a record with an empty id.

Readers implement icflsa.SequenceReader.
*/
package fasta

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/npillmayer/icflsa"
)

const maxLineLength = 64 << 20

// Record is one sequence of a FASTA file.
type Record struct {
	ID          string
	Description string
	Sequence    []byte
}

// Reader streams records from FASTA data.
type Reader struct {
	scanner   *bufio.Scanner
	upperCase bool
	header    string // pending header line of the next record
	pending   bool
	done      bool
	records   int
}

// Compute parses FASTA data and computes the suffix array of every record.
func Compute(reader io.Reader, opts ...icflsa.Option) ([]icflsa.Named, error) {
	return icflsa.ComputeAll(NewReader(reader), opts...)
}

// NewReader creates a reader for FASTA data.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: newScanner(reader),
	}
}

// UpperCase makes the reader fold sequence data to upper case. It returns the
// reader for chaining.
func (r *Reader) UpperCase() *Reader {
	r.upperCase = true
	return r
}

// Records returns the number of records read so far.
func (r *Reader) Records() int {
	return r.records
}

// Next returns the id and the sequence of the next record.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, []byte, error) {
	rec, err := r.NextRecord()
	if err != nil {
		return "", nil, err
	}
	return rec.ID, rec.Sequence, nil
}

// NextRecord returns the next record.
// It returns io.EOF when exhausted.
func (r *Reader) NextRecord() (Record, error) {
	if r.done {
		return Record{}, io.EOF
	}
	var rec Record
	started := false
	if r.pending {
		rec.ID, rec.Description = splitHeader(r.header)
		r.pending = false
		started = true
	}
	var seq bytes.Buffer
	for r.scanner.Scan() {
		line := strings.TrimRight(r.scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if started || seq.Len() > 0 {
				r.header, r.pending = line[1:], true
				return r.finish(rec, &seq), nil
			}
			rec.ID, rec.Description = splitHeader(line[1:])
			started = true
			continue
		}
		seq.WriteString(strings.TrimLeft(line, " \t"))
	}
	if err := r.scanner.Err(); err != nil {
		return Record{}, err
	}
	r.done = true
	if !started && seq.Len() == 0 {
		return Record{}, io.EOF
	}
	return r.finish(rec, &seq), nil
}

func (r *Reader) finish(rec Record, seq *bytes.Buffer) Record {
	rec.Sequence = seq.Bytes()
	if rec.Sequence == nil {
		rec.Sequence = []byte{}
	}
	if r.upperCase {
		rec.Sequence = bytes.ToUpper(rec.Sequence)
	}
	r.records++
	return rec
}

// ReadAll reads all remaining records.
func (r *Reader) ReadAll() ([]Record, error) {
	var records []Record
	for {
		rec, err := r.NextRecord()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
}

func splitHeader(header string) (id, description string) {
	header = strings.TrimSpace(header)
	if i := strings.IndexAny(header, " \t"); i >= 0 {
		return header[:i], strings.TrimSpace(header[i+1:])
	}
	return header, ""
}

func newScanner(reader io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return scanner
}
