package radix

import (
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/hideo55/go-popcount"
)

// Slots selects how a NodeList stores its children.
type Slots uint8

const (
	// PlainSlots keep children in a plain slice. A slot update is a regular
	// store, so readers must not run concurrently with writers.
	PlainSlots Slots = iota
	// AtomicSlots keep every child behind its own atomic pointer. A slot
	// update is immediately and completely visible to concurrent readers.
	AtomicSlots
)

func (s Slots) String() string {
	switch s {
	case PlainSlots:
		return "plain"
	case AtomicSlots:
		return "atomic"
	default:
		return fmt.Sprintf("Slots(%d)", uint8(s))
	}
}

// NodeList is the ordered child collection of a node. Children are sorted by
// their first character and no two of them share it.
type NodeList[V any] interface {
	Len() int
	At(i int) Node[V]
	// Index returns the position of the child starting with c.
	Index(c rune) (int, bool)
	Contains(c rune) bool
	// Slice returns a new slice with all the children in order.
	Slice() []Node[V]
	// Set replaces the child at i. The replacement must start with the same
	// character.
	Set(i int, child Node[V])
}

// newNodeList sorts children by the first character and stores them in a list
// of the requested kind.
func newNodeList[V any](children []Node[V], slots Slots) (NodeList[V], error) {
	sorted := make([]Node[V], len(children))

	for i, child := range children {
		if child == nil {
			return nil, fmt.Errorf("%w: at %d", ErrNilChild, i)
		}
		if child.EdgeLen() == 0 {
			return nil, fmt.Errorf("%w: child at %d", ErrEmptyEdge, i)
		}
		sorted[i] = child
	}

	slices.SortFunc(sorted, func(a, b Node[V]) int {
		return int(a.FirstChar()) - int(b.FirstChar())
	})

	firsts := make([]rune, len(sorted))

	for i, child := range sorted {
		firsts[i] = child.FirstChar()
		if i > 0 && firsts[i] == firsts[i-1] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEdge, firsts[i])
		}
	}

	index := newCharIndex(firsts)

	if slots == AtomicSlots {
		list := &atomicList[V]{
			charIndex: index,
			slots:     make([]atomic.Pointer[slot[V]], len(sorted)),
		}
		for i, child := range sorted {
			list.slots[i].Store(&slot[V]{node: child})
		}
		return list, nil
	}

	return &plainList[V]{charIndex: index, nodes: sorted}, nil
}

// charIndex maps a first character to a slot position. Characters below 256
// sort before all the others and are located by a 256-bit presence bitmap and
// a popcount rank; wider characters are binary searched.
type charIndex struct {
	bitmap [4]uint64 // 256 bits, one per narrow character
	narrow int       // number of narrow characters
	wide   []rune    // ascending wide characters
}

func newCharIndex(firsts []rune) charIndex {
	var idx charIndex

	for _, c := range firsts {
		if c >= 0 && c <= maxPackedChar {
			idx.bitmap[c>>6] |= uint64(1) << (c & 0x3F)
			idx.narrow++
		}
	}

	if idx.narrow < len(firsts) {
		idx.wide = firsts[idx.narrow:]
	}

	return idx
}

func (idx *charIndex) Index(c rune) (int, bool) {
	if c < 0 {
		return 0, false
	}

	if c <= maxPackedChar {
		var (
			ofs = c >> 6
			bit = uint64(1) << (c & 0x3F) // the lowest 6 bits (2**6 == 64)
			bmp = idx.bitmap[ofs]
		)

		if bmp&bit == 0 {
			return 0, false
		}

		cnt := popcount.Count(bmp & (bit - 1))
		for j := rune(0); j < ofs; j++ {
			cnt += popcount.Count(idx.bitmap[j])
		}

		return int(cnt), true
	}

	if i, ok := slices.BinarySearch(idx.wide, c); ok {
		return idx.narrow + i, true
	}

	return 0, false
}

func (idx *charIndex) Contains(c rune) bool {
	_, ok := idx.Index(c)
	return ok
}

type plainList[V any] struct {
	charIndex
	nodes []Node[V]
}

func (l *plainList[V]) Len() int             { return len(l.nodes) }
func (l *plainList[V]) At(i int) Node[V]     { return l.nodes[i] }
func (l *plainList[V]) Slice() []Node[V]     { return slices.Clone(l.nodes) }
func (l *plainList[V]) Set(i int, n Node[V]) { l.nodes[i] = n }

type slot[V any] struct {
	node Node[V]
}

type atomicList[V any] struct {
	charIndex
	slots []atomic.Pointer[slot[V]]
}

func (l *atomicList[V]) Len() int         { return len(l.slots) }
func (l *atomicList[V]) At(i int) Node[V] { return l.slots[i].Load().node }

func (l *atomicList[V]) Slice() []Node[V] {
	nodes := make([]Node[V], len(l.slots))
	for i := range l.slots {
		nodes[i] = l.slots[i].Load().node
	}
	return nodes
}

func (l *atomicList[V]) Set(i int, n Node[V]) {
	l.slots[i].Store(&slot[V]{node: n})
}

// noChildren is the child list of every leaf.
type noChildren[V any] struct{}

func (noChildren[V]) Len() int                 { return 0 }
func (noChildren[V]) Index(rune) (int, bool)   { return 0, false }
func (noChildren[V]) Contains(rune) bool       { return false }
func (noChildren[V]) Slice() []Node[V]         { return nil }
func (noChildren[V]) At(i int) Node[V]         { panic(fmt.Sprintf("radix: child index %d out of range", i)) }
func (noChildren[V]) Set(i int, child Node[V]) { panic(fmt.Sprintf("radix: child index %d out of range", i)) }
