package table

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// columns is the expected row shape: ordinal, name, symbol, mass.
const columns = 4

// LoadError reports a failure to read or parse a table source.
type LoadError struct {
	Source string
	Line   int // 1-indexed source row, 0 when not row-specific
	Err    error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load table %s: line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("load table %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// rowReader extracts raw rows (header included) from a source format.
type rowReader func(r io.Reader) ([][]string, error)

// readerFor returns the row reader for a filename.
func readerFor(filename string) (rowReader, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv", ".txt", "":
		return readCSV, nil
	case ".html", ".htm":
		return readHTML, nil
	default:
		return nil, fmt.Errorf("unsupported table format: %s", ext)
	}
}

// Load parses a header-plus-rows source into a Table. The format is chosen by
// the filename extension.
func Load(r io.Reader, filename string) (*Table, error) {
	read, err := readerFor(filename)
	if err != nil {
		return nil, &LoadError{Source: filename, Err: err}
	}
	rows, err := read(r)
	if err != nil {
		return nil, &LoadError{Source: filename, Err: err}
	}
	return fromRows(rows, filename)
}

// LoadFile opens path and loads it.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return Load(f, path)
}

func fromRows(rows [][]string, source string) (*Table, error) {
	if len(rows) == 0 {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("missing header row")}
	}

	// First row is the header.
	dataRows := rows[1:]
	names := make([]string, 0, len(dataRows))
	symbols := make([]string, 0, len(dataRows))
	masses := make([]float64, 0, len(dataRows))

	for i, row := range dataRows {
		line := i + 2
		if len(row) != columns {
			return nil, &LoadError{
				Source: source,
				Line:   line,
				Err:    fmt.Errorf("expected %d fields, got %d", columns, len(row)),
			}
		}
		mass, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			return nil, &LoadError{Source: source, Line: line, Err: fmt.Errorf("parse mass %q: %w", row[3], err)}
		}
		names = append(names, strings.TrimSpace(row[1]))
		symbols = append(symbols, strings.TrimSpace(row[2]))
		masses = append(masses, mass)
	}

	t, err := New(names, symbols, masses)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return t, nil
}
