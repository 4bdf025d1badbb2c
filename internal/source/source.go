// Package source loads chart samples from files and streams.
package source

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrUnsupportedFormat indicates a file extension with no loader.
var ErrUnsupportedFormat = errors.New("unsupported sample format")

// ErrNoColumn indicates that a row has no cell in the selected column.
var ErrNoColumn = errors.New("column out of range")

// Stdin is the path that selects standard input.
const Stdin = "-"

// Options tells the loaders where to find samples in tabular sources.
type Options struct {
	// Sheet is the spreadsheet to read from. Empty selects the first one.
	Sheet string
	// Column is the zero-based column holding the samples.
	Column int
}

// ParseError represents a sample that could not be read.
type ParseError struct {
	Source string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Format identifies a sample file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
)

// DetectFormat returns the format of the file at path, judged by its
// extension. Standard input and files without an extension are read as text.
func DetectFormat(path string) (Format, error) {
	if path == "" || path == Stdin {
		return FormatText, nil
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	case ".yaml", ".yml", ".json":
		return FormatYAML, nil
	case ".txt", "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}
}

// Load reads samples from the file at path. An empty path or [Stdin] reads
// whitespace or comma separated integers from stdin.
func Load(path string, stdin io.Reader, opts Options) ([]int, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if path == "" || path == Stdin {
		return ReadText("stdin", stdin)
	}
	if format == FormatXLSX {
		return ReadXLSX(path, opts)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open samples: %w", err)
	}
	defer f.Close()

	name := filepath.Base(path)
	switch format {
	case FormatCSV:
		return ReadCSV(name, f, opts)
	case FormatYAML:
		return ReadYAML(name, f)
	default:
		return ReadText(name, f)
	}
}

// parseSample parses an integer sample. Numbers with a zero fractional part,
// as spreadsheets tend to write them, are accepted too.
func parseSample(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return int(f), nil
}
