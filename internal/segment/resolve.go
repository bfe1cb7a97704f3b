package segment

import "strings"

// Records gives indexed access to element data.
type Records interface {
	RecordAt(i int) (name string, mass float64)
	SymbolAt(i int) string
}

// Resolved is one element of a decomposition.
type Resolved struct {
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	AtomicNumber int     `json:"atomic_number"`
	Mass         float64 `json:"mass"`
}

// Resolve maps a path to its elements in order. Indices must come from the
// same table; an out-of-range index panics.
func Resolve(p Path, t Records) []Resolved {
	out := make([]Resolved, len(p))
	for i, idx := range p {
		name, mass := t.RecordAt(idx)
		out[i] = Resolved{
			Name:         name,
			Symbol:       t.SymbolAt(idx),
			AtomicNumber: idx + 1,
			Mass:         mass,
		}
	}
	return out
}

// Spell concatenates the symbols of a path. For any path produced by Paths
// this equals the word the tree was built from.
func Spell(p Path, t Records) string {
	var buf strings.Builder
	for _, idx := range p {
		buf.WriteString(t.SymbolAt(idx))
	}
	return buf.String()
}
