package radix

import (
	"fmt"
	"hash/maphash"
)

// KeyValuePair is a key rebuilt from the edges leading to a node paired with
// the node's value. Two pairs are equal when their keys are.
type KeyValuePair[V any] struct {
	Key   string
	Value Value[V]
}

func (kv KeyValuePair[V]) Equal(other KeyValuePair[V]) bool {
	return kv.Key == other.Key
}

// Hash hashes the key only, consistently with Equal.
func (kv KeyValuePair[V]) Hash(seed maphash.Seed) uint64 {
	return maphash.String(seed, kv.Key)
}

func (kv KeyValuePair[V]) String() string {
	return fmt.Sprintf("(%s, %s)", kv.Key, kv.Value)
}
