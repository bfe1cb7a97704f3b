package segment

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Table is the element data a decomposition needs.
type Table interface {
	Lookup
	Records
}

// Decomposition is one way to spell the word.
type Decomposition struct {
	Path     Path       `json:"-"`
	Symbols  []string   `json:"symbols"`
	Elements []Resolved `json:"elements"`
}

// Result is the outcome of decomposing one word. No decompositions is a
// normal outcome, not an error.
type Result struct {
	Input          string          `json:"input"`
	Word           string          `json:"word"`
	Decompositions []Decomposition `json:"decompositions"`

	TreeNodes int `json:"-"`
	TreeDepth int `json:"-"`
}

// Found reports whether at least one decomposition exists.
func (r Result) Found() bool {
	return len(r.Decompositions) > 0
}

// Normalize lowercases a word. Whitespace is kept, so it never matches a
// symbol; callers trim at the edge if they want to.
func Normalize(word string) string {
	// Casers are stateful; one per call.
	return cases.Lower(language.Und).String(word)
}

// Decompose lowercases word and returns every way to spell it. Result.Word is
// the lowercased input and every path spells it exactly.
func Decompose(word string, t Table) Result {
	normalized := Normalize(word)
	tree := Build(normalized, t)

	res := Result{
		Input:          word,
		Word:           normalized,
		Decompositions: []Decomposition{},
		TreeNodes:      tree.Size(),
		TreeDepth:      tree.Depth(),
	}
	for _, p := range tree.Paths() {
		d := Decomposition{
			Path:     p,
			Symbols:  make([]string, len(p)),
			Elements: Resolve(p, t),
		}
		for i, idx := range p {
			d.Symbols[i] = t.SymbolAt(idx)
		}
		res.Decompositions = append(res.Decompositions, d)
	}
	return res
}
