// Package segment spells words with chemical-element symbols.
//
// A word is decomposed by building a binary tree of candidate matches: at each
// position the next one-letter and two-letter prefixes are looked up in the
// element table, and every match becomes a child that continues on the rest
// of the word. Walking the tree yields every complete decomposition.
package segment

// Lookup finds the table index of a lowercased symbol.
type Lookup interface {
	FindIndex(symbol string) (int, bool)
}

type nodeState uint8

const (
	// stateValid nodes carry a table index.
	stateValid nodeState = iota
	// stateDead nodes end a path that cannot consume the rest of the word.
	stateDead
)

// node is one match in the tree. one and two are the children reached by
// matching a one-letter or a two-letter symbol next.
type node struct {
	state nodeState
	index int
	one   *node
	two   *node
}

func (n *node) leaf() bool {
	return n.one == nil && n.two == nil
}

// Tree holds every candidate decomposition of a word. The root is a
// placeholder; only its children carry table indices.
type Tree struct {
	word string
	root *node
}

// Build matches word against the table and returns the candidate tree. The
// word must already be lowercased; see Normalize.
func Build(word string, t Lookup) *Tree {
	root := &node{}
	grow(root, []rune(word), t)
	return &Tree{word: word, root: root}
}

// grow attaches the matches for rest beneath n. Each call consumes at least
// one rune, so recursion depth is bounded by the word length.
func grow(n *node, rest []rune, t Lookup) {
	if len(rest) == 0 {
		return
	}

	matched := false
	if i, ok := t.FindIndex(string(rest[:1])); ok {
		n.one = &node{index: i}
		grow(n.one, rest[1:], t)
		matched = true
	}

	if len(rest) == 1 {
		if !matched {
			n.state = stateDead
		}
		return
	}

	if i, ok := t.FindIndex(string(rest[:2])); ok {
		n.two = &node{index: i}
		grow(n.two, rest[2:], t)
		matched = true
	}

	if !matched {
		n.state = stateDead
	}
}

// Word returns the word the tree was built from.
func (t *Tree) Word() string {
	return t.word
}

// Size returns the number of match nodes, excluding the root.
func (t *Tree) Size() int {
	var count func(*node) int
	count = func(n *node) int {
		if n == nil {
			return 0
		}
		return 1 + count(n.one) + count(n.two)
	}
	return count(t.root) - 1
}

// Depth returns the length of the longest branch below the root.
func (t *Tree) Depth() int {
	var depth func(*node) int
	depth = func(n *node) int {
		if n == nil {
			return 0
		}
		return 1 + max(depth(n.one), depth(n.two))
	}
	return depth(t.root) - 1
}
