package radix

// class tells how a key relates to the node a search stopped at.
type class uint8

const (
	// the key ends exactly at the end of the node's edge
	exactMatch class = iota
	// the key ends inside the node's edge
	keyEndsMidEdge
	// the whole edge matched but the key continues with no matching child
	incompleteMatchToEndOfEdge
	// the key and the edge differ inside the edge
	incompleteMatchToMiddleOfEdge
)

func (c class) String() string {
	switch c {
	case exactMatch:
		return "EXACT_MATCH"
	case keyEndsMidEdge:
		return "KEY_ENDS_MID_EDGE"
	case incompleteMatchToEndOfEdge:
		return "INCOMPLETE_MATCH_TO_END_OF_EDGE"
	default:
		return "INCOMPLETE_MATCH_TO_MIDDLE_OF_EDGE"
	}
}

type searchResult[V any] struct {
	found       Node[V]
	parent      Node[V] // nil when found is the root
	grandparent Node[V] // nil when parent is the root (or absent)
	matched     int     // key characters matched in total
	inFound     int     // key characters matched along the edge of found
	class       class
}

// search walks from the root along the key as far as it matches.
func (t *Tree[V]) search(key []rune) searchResult[V] {
	var (
		res = searchResult[V]{found: t.Root()}
		cur = res.found
	)

loop:
	for res.matched < len(key) {
		next := cur.Child(key[res.matched])
		if next == nil {
			break
		}

		res.grandparent, res.parent, cur = res.parent, cur, next
		res.found = cur
		res.inFound = 0

		for i, n := 0, cur.EdgeLen(); i < n && res.matched < len(key); i++ {
			if cur.CharAt(i) != key[res.matched] {
				break loop
			}
			res.matched++
			res.inFound++
		}
	}

	edgeLen := res.found.EdgeLen()

	switch {
	case res.matched == len(key) && res.inFound == edgeLen:
		res.class = exactMatch
	case res.matched == len(key):
		res.class = keyEndsMidEdge
	case res.inFound == edgeLen:
		res.class = incompleteMatchToEndOfEdge
	default:
		res.class = incompleteMatchToMiddleOfEdge
	}

	return res
}
