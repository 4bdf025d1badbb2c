package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadCSV reads the samples in column opts.Column of a CSV stream. A first row
// whose cell doesn't parse as a number is taken as a header and skipped; blank
// cells are skipped as well.
func ReadCSV(name string, r io.Reader, opts Options) ([]int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var out []int
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &ParseError{Source: name, Line: pe.Line, Err: pe.Err}
			}
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		line, _ := cr.FieldPos(0)
		isHeader := first
		first = false

		if opts.Column >= len(rec) {
			if isHeader {
				continue
			}
			return nil, &ParseError{Source: name, Line: line, Err: fmt.Errorf("%w: %d", ErrNoColumn, opts.Column)}
		}
		cell := strings.TrimSpace(rec[opts.Column])
		if cell == "" {
			continue
		}
		v, err := parseSample(cell)
		if err != nil {
			if isHeader {
				continue
			}
			return nil, &ParseError{Source: name, Line: line, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}
