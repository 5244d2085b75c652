package radix

import (
	"errors"
	"fmt"
)

// NodeFactory builds every node of a Tree. It is the single point deciding
// which encoding a node gets.
//
// CreateNode validates that a non-root edge is not empty and that children
// are non-nil and start with distinct characters. Children may be passed in
// any order. The slots argument selects the kind of the child list; a Tree
// passes the kind matching its concurrency mode.
type NodeFactory[V any] interface {
	CreateNode(edge []rune, value Value[V], children []Node[V], isRoot bool, slots Slots) (Node[V], error)
}

// CharSequenceFactory builds nodes whose edges are views over the rune buffer
// of the key they were cut from. It never copies characters, so a node may
// keep the whole buffer of a long key alive.
type CharSequenceFactory[V any] struct{}

func (CharSequenceFactory[V]) CreateNode(edge []rune, value Value[V], children []Node[V], isRoot bool, slots Slots) (Node[V], error) {
	if err := checkEdge(edge, isRoot); err != nil {
		return nil, err
	}
	return assemble(runeView(edge), value, children, slots)
}

// CharArrayFactory builds nodes owning a dedicated copy of their edges.
type CharArrayFactory[V any] struct{}

func (CharArrayFactory[V]) CreateNode(edge []rune, value Value[V], children []Node[V], isRoot bool, slots Slots) (Node[V], error) {
	if err := checkEdge(edge, isRoot); err != nil {
		return nil, err
	}
	return assemble(newRuneArray(edge), value, children, slots)
}

// ByteArrayFactory builds nodes with edges packed one byte per character. It
// fails with an *IncompatibleCharError for any character above 0xFF.
type ByteArrayFactory[V any] struct{}

func (ByteArrayFactory[V]) CreateNode(edge []rune, value Value[V], children []Node[V], isRoot bool, slots Slots) (Node[V], error) {
	if err := checkEdge(edge, isRoot); err != nil {
		return nil, err
	}

	packed, err := newByteArray(edge)
	if err != nil {
		return nil, err
	}

	return assemble(packed, value, children, slots)
}

// SmartArrayFactory packs edges into bytes whenever it can and falls back to
// rune arrays for the nodes it cannot pack. A tree built by it mixes both
// encodings node by node.
type SmartArrayFactory[V any] struct {
	bytes ByteArrayFactory[V]
	runes CharArrayFactory[V]
}

func (f SmartArrayFactory[V]) CreateNode(edge []rune, value Value[V], children []Node[V], isRoot bool, slots Slots) (Node[V], error) {
	node, err := f.bytes.CreateNode(edge, value, children, isRoot, slots)
	if errors.Is(err, ErrIncompatibleChar) {
		tracer().Debugf("radix: edge %q falls back to runes: %v", string(edge), err)
		return f.runes.CreateNode(edge, value, children, isRoot, slots)
	}
	return node, err
}

func checkEdge(edge []rune, isRoot bool) error {
	if len(edge) == 0 && !isRoot {
		return ErrEmptyEdge
	}
	return nil
}

func assemble[V any](edge Edge, value Value[V], children []Node[V], slots Slots) (Node[V], error) {
	if len(children) == 0 {
		return newNode[V](edge, value, nil), nil
	}

	list, err := newNodeList(children, slots)
	if err != nil {
		return nil, fmt.Errorf("radix: cannot create node %q: %w", edge.String(), err)
	}

	return newNode(edge, value, list), nil
}
