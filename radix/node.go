package radix

import (
	"fmt"
	"strings"
)

// Node is an immutable element of a radix tree. The only change a node ever
// sees after construction is UpdateChild repointing one existing edge.
type Node[V any] interface {
	EdgeLen() int
	// FirstChar returns the first character of the incoming edge. The root
	// has an empty edge and must not be asked.
	FirstChar() rune
	CharAt(i int) rune
	Edge() Edge
	Value() Value[V]
	Children() NodeList[V]
	// Child returns the child whose edge starts with c or nil.
	Child(c rune) Node[V]
	// UpdateChild replaces the existing child starting with the same
	// character as child. It never adds or removes children.
	UpdateChild(child Node[V]) error
}

// Node encodings are assembled from three independent parts: the incoming
// edge, the value and the children.

type edgeOf struct {
	edge Edge
}

func (n edgeOf) EdgeLen() int      { return n.edge.Len() }
func (n edgeOf) FirstChar() rune   { return n.edge.At(0) }
func (n edgeOf) CharAt(i int) rune { return n.edge.At(i) }
func (n edgeOf) Edge() Edge        { return n.edge }

type absentOf[V any] struct{}

func (absentOf[V]) Value() Value[V] { return Absent[V]() }

type voidOf[V any] struct{}

func (voidOf[V]) Value() Value[V] { return Void[V]() }

type presentOf[V any] struct {
	val V
}

func (p presentOf[V]) Value() Value[V] { return Present(p.val) }

type leafOf[V any] struct{}

func (leafOf[V]) Children() NodeList[V] { return noChildren[V]{} }
func (leafOf[V]) Child(rune) Node[V]    { return nil }

func (leafOf[V]) UpdateChild(child Node[V]) error {
	if child == nil {
		return ErrNilChild
	}
	return fmt.Errorf("%w: %q (leaf)", ErrNoSuchEdge, child.FirstChar())
}

type branchOf[V any] struct {
	children NodeList[V]
}

func (b branchOf[V]) Children() NodeList[V] { return b.children }

func (b branchOf[V]) Child(c rune) Node[V] {
	if i, ok := b.children.Index(c); ok {
		return b.children.At(i)
	}
	return nil
}

func (b branchOf[V]) UpdateChild(child Node[V]) error {
	if child == nil {
		return ErrNilChild
	}

	c := child.FirstChar()

	i, ok := b.children.Index(c)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoSuchEdge, c)
	}

	b.children.Set(i, child)

	return nil
}

type leafNode[V any] struct {
	edgeOf
	presentOf[V]
	leafOf[V]
}

type leafVoidNode[V any] struct {
	edgeOf
	voidOf[V]
	leafOf[V]
}

type leafAbsentNode[V any] struct {
	edgeOf
	absentOf[V]
	leafOf[V]
}

type branchNode[V any] struct {
	edgeOf
	presentOf[V]
	branchOf[V]
}

type branchVoidNode[V any] struct {
	edgeOf
	voidOf[V]
	branchOf[V]
}

type branchAbsentNode[V any] struct {
	edgeOf
	absentOf[V]
	branchOf[V]
}

func (n *leafNode[V]) String() string         { return nodeString[V]("Leaf", n) }
func (n *leafVoidNode[V]) String() string     { return nodeString[V]("Leaf|void", n) }
func (n *leafAbsentNode[V]) String() string   { return nodeString[V]("Leaf|absent", n) }
func (n *branchNode[V]) String() string       { return nodeString[V]("Branch", n) }
func (n *branchVoidNode[V]) String() string   { return nodeString[V]("Branch|void", n) }
func (n *branchAbsentNode[V]) String() string { return nodeString[V]("Branch|absent", n) }

func nodeString[V any](kind string, n Node[V]) string {
	var b strings.Builder

	b.WriteString("<radix|")
	b.WriteString(kind)

	switch n.Edge().(type) {
	case runeView:
		b.WriteString("|view")
	case runeArray:
		b.WriteString("|runes")
	case byteArray:
		b.WriteString("|bytes")
	}

	fmt.Fprintf(&b, "|%q", n.Edge().String())

	if v := n.Value(); v.IsPresent() {
		b.WriteString("|" + v.String())
	}

	if kids := n.Children(); kids.Len() > 0 {
		fmt.Fprintf(&b, "|kids:%d", kids.Len())
	}

	b.WriteByte('>')

	return b.String()
}

// newNode picks the node encoding for the value and the child list.
func newNode[V any](edge Edge, value Value[V], children NodeList[V]) Node[V] {
	if children == nil || children.Len() == 0 {
		switch value.state {
		case presentValue:
			return &leafNode[V]{edgeOf: edgeOf{edge}, presentOf: presentOf[V]{value.val}}
		case voidValue:
			return &leafVoidNode[V]{edgeOf: edgeOf{edge}}
		default:
			return &leafAbsentNode[V]{edgeOf: edgeOf{edge}}
		}
	}

	switch value.state {
	case presentValue:
		return &branchNode[V]{edgeOf: edgeOf{edge}, presentOf: presentOf[V]{value.val}, branchOf: branchOf[V]{children}}
	case voidValue:
		return &branchVoidNode[V]{edgeOf: edgeOf{edge}, branchOf: branchOf[V]{children}}
	default:
		return &branchAbsentNode[V]{edgeOf: edgeOf{edge}, branchOf: branchOf[V]{children}}
	}
}
