package radix

import (
	"fmt"
	"sync/atomic"
	"unicode/utf8"
)

// Tree is a concurrent radix tree mapping string keys to values.
//
// Writers are serialized. By default readers never block and may run
// concurrently with a writer: every write builds new nodes and publishes them
// with a single atomic store, so a reader sees each node either before or
// after a write. With RestrictConcurrency(true) readers are excluded while a
// write is in progress instead.
type Tree[V any] struct {
	factory NodeFactory[V]
	sync    strategy
	root    atomic.Pointer[slot[V]]
}

// New returns an empty Tree building its nodes with the given factory. A nil
// factory selects CharArrayFactory.
//
// New panics if the factory cannot build an empty root node.
func New[V any](factory NodeFactory[V], opts ...Option) *Tree[V] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if factory == nil {
		factory = CharArrayFactory[V]{}
	}

	t := &Tree[V]{
		factory: factory,
		sync:    newStrategy(o),
	}

	root, err := t.createNode(nil, Absent[V](), nil, true)
	if err != nil {
		panic(fmt.Sprintf("radix: the factory cannot create a root node: %v", err))
	}

	t.setRoot(root)

	return t
}

// Root returns the current root node. It is meant for diagnostics such as
// printing the tree structure.
func (t *Tree[V]) Root() Node[V] {
	return t.root.Load().node
}

func (t *Tree[V]) setRoot(root Node[V]) {
	t.root.Store(&slot[V]{node: root})
}

func (t *Tree[V]) createNode(edge []rune, value Value[V], children []Node[V], isRoot bool) (Node[V], error) {
	return t.factory.CreateNode(edge, value, children, isRoot, t.sync.slots())
}

// Put associates the value with the key and returns the previous value (or an
// absent one).
func (t *Tree[V]) Put(key string, val Value[V]) (Value[V], error) {
	return t.put(key, val, true)
}

// PutIfAbsent associates the value with the key unless the key is already
// stored, in which case it returns the existing value and changes nothing.
func (t *Tree[V]) PutIfAbsent(key string, val Value[V]) (Value[V], error) {
	return t.put(key, val, false)
}

func (t *Tree[V]) put(key string, val Value[V], overwrite bool) (Value[V], error) {
	var none Value[V]

	if key == "" {
		return none, ErrEmptyKey
	}
	if !utf8.ValidString(key) {
		return none, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if val.IsAbsent() {
		return none, ErrAbsentValue
	}

	runes := []rune(key)

	t.sync.lock()
	defer t.sync.unlock()

	var (
		res   = t.search(runes)
		found = res.found
	)

	switch res.class {
	case exactMatch:
		// same structure, new value
		prev := found.Value()
		if !overwrite && prev.Exists() {
			return prev, nil
		}

		repl, err := t.createNode(edgeRunes(found), val, found.Children().Slice(), false)
		if err != nil {
			return none, fmt.Errorf("radix: put %q: %w", key, err)
		}

		if err := res.parent.UpdateChild(repl); err != nil {
			return none, fmt.Errorf("radix: put %q: %w", key, err)
		}

		return prev, nil

	case keyEndsMidEdge:
		// split the node: the key becomes the new parent, the rest of the
		// edge keeps the old value and children
		var (
			edge   = edgeRunes(found)
			common = runes[res.matched-res.inFound:]
		)

		child, err := t.createNode(edge[res.inFound:], found.Value(), found.Children().Slice(), false)
		if err != nil {
			return none, fmt.Errorf("radix: put %q: %w", key, err)
		}

		split, err := t.createNode(common, val, []Node[V]{child}, false)
		if err != nil {
			return none, fmt.Errorf("radix: put %q: %w", key, err)
		}

		if err := res.parent.UpdateChild(split); err != nil {
			return none, fmt.Errorf("radix: put %q: %w", key, err)
		}

		tracer().Debugf("radix: put %q split %q at %d", key, string(edge), res.inFound)

		return none, nil

	case incompleteMatchToEndOfEdge:
		// add a leaf to the node found, rebuilding it with one more child
		leaf, err := t.createNode(runes[res.matched:], val, nil, false)
		if err != nil {
			return none, fmt.Errorf("radix: put %q: %w", key, err)
		}

		var (
			isRoot   = res.parent == nil
			children = append(found.Children().Slice(), leaf)
		)

		clone, err := t.createNode(edgeRunes(found), found.Value(), children, isRoot)
		if err != nil {
			return none, fmt.Errorf("radix: put %q: %w", key, err)
		}

		if isRoot {
			t.setRoot(clone)
			tracer().Debugf("radix: put %q replaced the root", key)
			return none, nil
		}

		if err := res.parent.UpdateChild(clone); err != nil {
			return none, fmt.Errorf("radix: put %q: %w", key, err)
		}

		return none, nil

	default: // incompleteMatchToMiddleOfEdge
		// split the node at the mismatch: a valueless parent with the common
		// prefix, the old node's tail and a new leaf for the key's tail
		var (
			edge   = edgeRunes(found)
			common = runes[res.matched-res.inFound : res.matched]
		)

		leaf, err := t.createNode(runes[res.matched:], val, nil, false)
		if err != nil {
			return none, fmt.Errorf("radix: put %q: %w", key, err)
		}

		tail, err := t.createNode(edge[res.inFound:], found.Value(), found.Children().Slice(), false)
		if err != nil {
			return none, fmt.Errorf("radix: put %q: %w", key, err)
		}

		fork, err := t.createNode(common, Absent[V](), []Node[V]{leaf, tail}, false)
		if err != nil {
			return none, fmt.Errorf("radix: put %q: %w", key, err)
		}

		if err := res.parent.UpdateChild(fork); err != nil {
			return none, fmt.Errorf("radix: put %q: %w", key, err)
		}

		tracer().Debugf("radix: put %q forked %q at %d", key, string(edge), res.inFound)

		return none, nil
	}
}

// Remove deletes the key and reports whether it was stored.
func (t *Tree[V]) Remove(key string) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}
	if !utf8.ValidString(key) {
		return false, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	runes := []rune(key)

	t.sync.lock()
	defer t.sync.unlock()

	res := t.search(runes)

	if res.class != exactMatch || !res.found.Value().Exists() {
		return false, nil
	}

	var (
		found    = res.found
		children = found.Children()
	)

	switch children.Len() {
	case 0:
		if err := t.removeLeaf(key, res); err != nil {
			return false, err
		}

	case 1:
		// merge the node with its only child
		child := children.At(0)

		merged, err := t.createNode(concat(edgeRunes(found), edgeRunes(child)), child.Value(), child.Children().Slice(), false)
		if err != nil {
			return false, fmt.Errorf("radix: remove %q: %w", key, err)
		}

		if err := res.parent.UpdateChild(merged); err != nil {
			return false, fmt.Errorf("radix: remove %q: %w", key, err)
		}

		tracer().Debugf("radix: remove %q merged %q with %q", key, found.Edge().String(), child.Edge().String())

	default:
		// still a branching point - just drop the value
		clone, err := t.createNode(edgeRunes(found), Absent[V](), children.Slice(), false)
		if err != nil {
			return false, fmt.Errorf("radix: remove %q: %w", key, err)
		}

		if err := res.parent.UpdateChild(clone); err != nil {
			return false, fmt.Errorf("radix: remove %q: %w", key, err)
		}
	}

	return true, nil
}

// removeLeaf rebuilds the parent of a leaf without it. A valueless non-root
// parent left with a single child is merged with that child.
func (t *Tree[V]) removeLeaf(key string, res searchResult[V]) error {
	var (
		parent   = res.parent
		isRoot   = res.grandparent == nil
		siblings = make([]Node[V], 0, parent.Children().Len())
	)

	for _, node := range parent.Children().Slice() {
		if node != res.found {
			siblings = append(siblings, node)
		}
	}

	var (
		repl Node[V]
		err  error
	)

	if len(siblings) == 1 && !parent.Value().Exists() && !isRoot {
		sibling := siblings[0]
		repl, err = t.createNode(concat(edgeRunes(parent), edgeRunes(sibling)), sibling.Value(), sibling.Children().Slice(), false)
		tracer().Debugf("radix: remove %q merged %q with %q", key, parent.Edge().String(), sibling.Edge().String())
	} else {
		repl, err = t.createNode(edgeRunes(parent), parent.Value(), siblings, isRoot)
	}

	if err != nil {
		return fmt.Errorf("radix: remove %q: %w", key, err)
	}

	if isRoot {
		t.setRoot(repl)
		tracer().Debugf("radix: remove %q replaced the root", key)
		return nil
	}

	if err := res.grandparent.UpdateChild(repl); err != nil {
		return fmt.Errorf("radix: remove %q: %w", key, err)
	}

	return nil
}

// Get returns the value stored for exactly the key. A key that is not valid
// UTF-8 is never stored.
func (t *Tree[V]) Get(key string) Value[V] {
	if !utf8.ValidString(key) {
		return Absent[V]()
	}

	runes := []rune(key)

	t.sync.rlock()
	res := t.search(runes)
	t.sync.runlock()

	if res.class == exactMatch {
		return res.found.Value()
	}

	return Absent[V]()
}
