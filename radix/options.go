package radix

import "sync"

type options struct {
	restrict bool
}

// Option configures a Tree.
type Option func(*options)

// RestrictConcurrency makes writers exclude readers for the duration of a
// write. Readers then see either the state before or after a write, at the
// cost of blocking while it runs. By default readers never block.
func RestrictConcurrency(restrict bool) Option {
	return func(o *options) {
		o.restrict = restrict
	}
}

// strategy serializes writers and, depending on the mode, readers.
type strategy interface {
	lock()
	unlock()
	rlock()
	runlock()
	// slots returns the child list kind safe under the strategy.
	slots() Slots
}

// lockFreeReads serializes writers only. Readers rely on atomic slots and
// immutable nodes.
type lockFreeReads struct {
	mu sync.Mutex
}

func (s *lockFreeReads) lock()        { s.mu.Lock() }
func (s *lockFreeReads) unlock()      { s.mu.Unlock() }
func (s *lockFreeReads) rlock()       {}
func (s *lockFreeReads) runlock()     {}
func (s *lockFreeReads) slots() Slots { return AtomicSlots }

// restrictedReads makes readers and writers mutually exclusive.
type restrictedReads struct {
	mu sync.RWMutex
}

func (s *restrictedReads) lock()        { s.mu.Lock() }
func (s *restrictedReads) unlock()      { s.mu.Unlock() }
func (s *restrictedReads) rlock()       { s.mu.RLock() }
func (s *restrictedReads) runlock()     { s.mu.RUnlock() }
func (s *restrictedReads) slots() Slots { return PlainSlots }

func newStrategy(o options) strategy {
	if o.restrict {
		return &restrictedReads{}
	}
	return &lockFreeReads{}
}
