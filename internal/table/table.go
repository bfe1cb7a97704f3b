package table

import (
	"fmt"
	"strings"
)

// Element is a resolved row of the table.
type Element struct {
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	AtomicNumber int     `json:"atomic_number"`
	Mass         float64 `json:"mass"`
}

// Table holds element data in column-major form. The atomic number is not
// stored; it is the row index plus one.
//
// A Table is immutable after construction and safe for concurrent readers.
type Table struct {
	names   []string
	symbols []string
	masses  []float64
}

// New builds a table from three aligned columns. Names and symbols are
// lowercased so lookups never need to normalize.
func New(names, symbols []string, masses []float64) (*Table, error) {
	if len(names) != len(symbols) || len(names) != len(masses) {
		return nil, fmt.Errorf("misaligned columns: %d names, %d symbols, %d masses",
			len(names), len(symbols), len(masses))
	}
	t := &Table{
		names:   make([]string, len(names)),
		symbols: make([]string, len(symbols)),
		masses:  make([]float64, len(masses)),
	}
	for i := range names {
		t.names[i] = strings.ToLower(names[i])
		t.symbols[i] = strings.ToLower(symbols[i])
	}
	copy(t.masses, masses)
	return t, nil
}

// Len returns the number of elements.
func (t *Table) Len() int {
	return len(t.symbols)
}

// FindIndex scans the symbol column for an exact match and returns the lowest
// matching index.
func (t *Table) FindIndex(symbol string) (int, bool) {
	for i, s := range t.symbols {
		if s == symbol {
			return i, true
		}
	}
	return 0, false
}

// RecordAt returns the name and mass at index i. It panics if i is out of
// range; indices are expected to come from FindIndex.
func (t *Table) RecordAt(i int) (string, float64) {
	return t.names[i], t.masses[i]
}

// SymbolAt returns the lowercased symbol at index i.
func (t *Table) SymbolAt(i int) string {
	return t.symbols[i]
}

// Element returns the full record at index i.
func (t *Table) Element(i int) Element {
	return Element{
		Name:         t.names[i],
		Symbol:       t.symbols[i],
		AtomicNumber: i + 1,
		Mass:         t.masses[i],
	}
}

// Elements returns every record in table order.
func (t *Table) Elements() []Element {
	out := make([]Element, t.Len())
	for i := range out {
		out[i] = t.Element(i)
	}
	return out
}
