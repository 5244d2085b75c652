package radix

// Edge is the character sequence labeling the link from a parent to a node.
type Edge interface {
	Len() int
	At(i int) rune
	// AppendTo appends the characters of the edge to dst.
	AppendTo(dst []rune) []rune
	String() string
}

// runeView shares the rune buffer of the key an edge was cut from.
type runeView []rune

func (e runeView) Len() int                   { return len(e) }
func (e runeView) At(i int) rune              { return e[i] }
func (e runeView) AppendTo(dst []rune) []rune { return append(dst, e...) }
func (e runeView) String() string             { return string(e) }

// runeArray owns its characters.
type runeArray []rune

func newRuneArray(edge []rune) runeArray {
	if len(edge) == 0 {
		return runeArray{}
	}

	arr := make(runeArray, len(edge))
	copy(arr, edge)

	return arr
}

func (e runeArray) Len() int                   { return len(e) }
func (e runeArray) At(i int) rune              { return e[i] }
func (e runeArray) AppendTo(dst []rune) []rune { return append(dst, e...) }
func (e runeArray) String() string             { return string(e) }

// byteArray packs every character into a single byte (Latin-1 range).
type byteArray []byte

const maxPackedChar = 0xFF

func newByteArray(edge []rune) (byteArray, error) {
	arr := make(byteArray, len(edge))

	for i, r := range edge {
		if r < 0 || r > maxPackedChar {
			return nil, &IncompatibleCharError{Char: r, Pos: i}
		}
		arr[i] = byte(r)
	}

	return arr, nil
}

func (e byteArray) Len() int      { return len(e) }
func (e byteArray) At(i int) rune { return rune(e[i]) }

func (e byteArray) AppendTo(dst []rune) []rune {
	for _, b := range e {
		dst = append(dst, rune(b))
	}
	return dst
}

func (e byteArray) String() string {
	return string(e.AppendTo(make([]rune, 0, len(e))))
}

// edgeRunes returns a fresh copy of the characters of a node's edge.
func edgeRunes[V any](n Node[V]) []rune {
	edge := n.Edge()
	return edge.AppendTo(make([]rune, 0, edge.Len()))
}

// concat returns a new slice holding a followed by b.
func concat(a, b []rune) []rune {
	c := make([]rune, len(a)+len(b))
	copy(c, a)
	copy(c[len(a):], b)
	return c
}
