package radix

import (
	"iter"
	"slices"
	"unicode/utf8"
)

// KeysStartingWith returns an iterator over the stored keys having the prefix.
//
// Every iteration starts a fresh traversal. Keys come in depth-first order:
// a key precedes its extensions and siblings follow their first characters.
func (t *Tree[V]) KeysStartingWith(prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		t.startingWith(prefix, func(key []rune, _ Value[V]) bool {
			return yield(string(key))
		})
	}
}

// ValuesForKeysStartingWith returns an iterator over the values of the keys
// having the prefix.
func (t *Tree[V]) ValuesForKeysStartingWith(prefix string) iter.Seq[Value[V]] {
	return func(yield func(Value[V]) bool) {
		t.startingWith(prefix, func(_ []rune, val Value[V]) bool {
			return yield(val)
		})
	}
}

// KeyValuePairsForKeysStartingWith returns an iterator over the key-value
// pairs of the keys having the prefix.
func (t *Tree[V]) KeyValuePairsForKeysStartingWith(prefix string) iter.Seq[KeyValuePair[V]] {
	return func(yield func(KeyValuePair[V]) bool) {
		t.startingWith(prefix, func(key []rune, val Value[V]) bool {
			return yield(KeyValuePair[V]{Key: string(key), Value: val})
		})
	}
}

// ClosestKeys returns an iterator over the keys below the deepest node the
// candidate leads to. Unlike KeysStartingWith it yields keys even when the
// candidate only partially matches, as long as its first character does.
func (t *Tree[V]) ClosestKeys(candidate string) iter.Seq[string] {
	return func(yield func(string) bool) {
		t.closest(candidate, func(key []rune, _ Value[V]) bool {
			return yield(string(key))
		})
	}
}

// ValuesForClosestKeys is the value counterpart of ClosestKeys.
func (t *Tree[V]) ValuesForClosestKeys(candidate string) iter.Seq[Value[V]] {
	return func(yield func(Value[V]) bool) {
		t.closest(candidate, func(_ []rune, val Value[V]) bool {
			return yield(val)
		})
	}
}

// KeyValuePairsForClosestKeys is the key-value pair counterpart of
// ClosestKeys.
func (t *Tree[V]) KeyValuePairsForClosestKeys(candidate string) iter.Seq[KeyValuePair[V]] {
	return func(yield func(KeyValuePair[V]) bool) {
		t.closest(candidate, func(key []rune, val Value[V]) bool {
			return yield(KeyValuePair[V]{Key: string(key), Value: val})
		})
	}
}

// Size returns the number of stored keys. It walks the whole tree.
func (t *Tree[V]) Size() int {
	var size int

	t.walk(nil, t.Root(), func([]rune, Value[V]) bool {
		size++
		return true
	})

	return size
}

func (t *Tree[V]) lookup(key []rune) searchResult[V] {
	t.sync.rlock()
	defer t.sync.runlock()

	return t.search(key)
}

func (t *Tree[V]) startingWith(prefix string, visit func([]rune, Value[V]) bool) {
	if !utf8.ValidString(prefix) {
		return
	}

	var (
		runes = []rune(prefix)
		res   = t.lookup(runes)
	)

	switch res.class {
	case exactMatch:
		t.walk(runes, res.found, visit)

	case keyEndsMidEdge:
		// complete the prefix up to the end of the edge
		key := append(slices.Clip(runes), edgeRunes(res.found)[res.inFound:]...)
		t.walk(key, res.found, visit)
	}
}

func (t *Tree[V]) closest(candidate string, visit func([]rune, Value[V]) bool) {
	if !utf8.ValidString(candidate) {
		return
	}

	var (
		runes = []rune(candidate)
		res   = t.lookup(runes)
	)

	switch res.class {
	case exactMatch:
		t.walk(runes, res.found, visit)

	case keyEndsMidEdge:
		key := append(slices.Clip(runes), edgeRunes(res.found)[res.inFound:]...)
		t.walk(key, res.found, visit)

	case incompleteMatchToMiddleOfEdge:
		// the key of the node found: its parent's path plus the whole edge
		parentKey := runes[:res.matched-res.inFound]
		key := append(slices.Clip(parentKey), edgeRunes(res.found)...)
		t.walk(key, res.found, visit)

	case incompleteMatchToEndOfEdge:
		if res.matched == 0 {
			return
		}
		t.walk(slices.Clip(runes[:res.matched]), res.found, visit)
	}
}

type keyedNode[V any] struct {
	key  []rune
	node Node[V]
}

// walk visits every stored key at or below the node in depth-first order,
// rebuilding the keys from the one of the starting node. It stops as soon as
// visit returns false.
//
// Child lists are read under the read lock of the tree one node at a time;
// visit is never called while holding it.
func (t *Tree[V]) walk(start []rune, from Node[V], visit func([]rune, Value[V]) bool) {
	stack := []keyedNode[V]{{key: start, node: from}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if val := top.node.Value(); val.Exists() {
			if !visit(top.key, val) {
				return
			}
		}

		t.sync.rlock()
		children := top.node.Children().Slice()
		t.sync.runlock()

		// push in reverse to pop in ascending order
		for i := len(children) - 1; i >= 0; i-- {
			child := children[i]
			key := child.Edge().AppendTo(slices.Clip(top.key))
			stack = append(stack, keyedNode[V]{key: key, node: child})
		}
	}
}
