package segment

import "slices"

// Path is one complete decomposition as an ordered list of table indices.
type Path []int

// Paths enumerates every root-to-leaf walk that contains no dead node.
//
// The walk is depth-first and visits the one-letter child before the
// two-letter child, so paths that prefer shorter symbols earlier come first.
func (t *Tree) Paths() []Path {
	var paths []Path
	var stack []int

	var walk func(*node)
	walk = func(n *node) {
		if n.state == stateDead {
			return
		}
		stack = append(stack, n.index)
		if n.leaf() {
			paths = append(paths, Path(slices.Clone(stack)))
		} else {
			if n.one != nil {
				walk(n.one)
			}
			if n.two != nil {
				walk(n.two)
			}
		}
		stack = stack[:len(stack)-1]
	}

	if t.root.one != nil {
		walk(t.root.one)
	}
	if t.root.two != nil {
		walk(t.root.two)
	}
	return paths
}
