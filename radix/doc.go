// Package radix defines an implementation of a concurrent radix tree: an
// in-memory map from string keys to values in which any number of readers
// traverse the tree without locking while writers publish copy-on-write
// changes.
//
// A radix tree consists of Nodes connected by edges. Every edge is labeled
// with a sequence of characters (Unicode code points) and chains of
// single-child nodes without values are always compressed into one edge.
//
// Node invariants:
// ---------------
//
//   - children of a node start with distinct characters;
//   - children are sorted by their first character;
//   - a non-root node with a single child always holds a value;
//   - only the root may have an empty edge.
//
// Node encodings:
// --------------
//
// A NodeFactory picks the encoding of every node independently:
//
//	leaf | branch   x   absent | void | present   x   view | []rune | []byte
//
//   - view    - the edge shares the rune buffer of the key it came from;
//   - []rune  - the edge owns a dedicated copy of its characters;
//   - []byte  - one byte per character, only when every character is < 256.
//
// A branch keeps its children in a NodeList with either plain slots (trees
// that exclude readers while writing) or atomic slots (trees with lock-free
// reads).
//
// Mutations:
// ---------
//
// Nodes are never modified after construction. A write builds the replacement
// path bottom-up and publishes it with a single store: either into a child
// slot of an unaffected parent or into the root pointer of the Tree.
//
// Example tree:
// ------------
//
//	○
//	└── ○ T
//	    ├── ○ E
//	    │   ├── ○ AM (3)
//	    │   └── ○ ST (1)
//	    └── ○ OAST (2)
//
// The tree above contains the following keys:
//
//   - "TEAM"  -> 3
//   - "TEST"  -> 1
//   - "TOAST" -> 2
package radix
