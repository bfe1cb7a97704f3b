package segment

import "math"

// CountPaths returns how many complete decompositions Build would yield for
// word, without building the tree. It saturates at math.MaxUint64.
func CountPaths(word string, t Lookup) uint64 {
	paths, _ := count(word, t)
	return paths
}

// CountNodes returns the Size of the tree Build would produce for word,
// including dead branches. It saturates at math.MaxUint64.
func CountNodes(word string, t Lookup) uint64 {
	_, nodes := count(word, t)
	return nodes
}

// count runs one linear pass over the suffixes of word, mirroring grow.
func count(word string, t Lookup) (paths, nodes uint64) {
	rest := []rune(word)
	n := len(rest)
	if n == 0 {
		return 0, 0
	}

	// For the suffix rest[i:], ways[i] is the number of complete spellings
	// and below[i] the number of match nodes grown beneath it.
	ways := make([]uint64, n+1)
	below := make([]uint64, n+1)
	ways[n] = 1
	for i := n - 1; i >= 0; i-- {
		if _, ok := t.FindIndex(string(rest[i : i+1])); ok {
			ways[i] = ways[i+1]
			below[i] = addSat(1, below[i+1])
		}
		if i+2 <= n {
			if _, ok := t.FindIndex(string(rest[i : i+2])); ok {
				ways[i] = addSat(ways[i], ways[i+2])
				below[i] = addSat(below[i], addSat(1, below[i+2]))
			}
		}
	}
	return ways[0], below[0]
}

func addSat(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
