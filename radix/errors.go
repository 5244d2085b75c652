package radix

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyKey    = errors.New("radix: the key is empty")
	ErrInvalidKey  = errors.New("radix: the key is not valid UTF-8")
	ErrAbsentValue = errors.New("radix: an absent value cannot be stored")
)

var (
	ErrEmptyEdge        = errors.New("radix: only the root node may have an empty edge")
	ErrNilChild         = errors.New("radix: a child node is nil")
	ErrDuplicateEdge    = errors.New("radix: several children start with the same character")
	ErrNoSuchEdge       = errors.New("radix: no child starts with the character")
	ErrIncompatibleChar = errors.New("radix: the character does not fit in a single byte")
)

// IncompatibleCharError is returned by ByteArrayFactory for an edge holding a
// character that cannot be packed into one byte.
type IncompatibleCharError struct {
	Char rune
	Pos  int
}

func (e *IncompatibleCharError) Error() string {
	return fmt.Sprintf("radix: the character %q at %d does not fit in a single byte", e.Char, e.Pos)
}

func (e *IncompatibleCharError) Is(target error) bool {
	return target == ErrIncompatibleChar
}
