package forwardlist

import (
	"runtime"
	"sync"

	"go.uber.org/atomic"
)

// region Node
type node[T any] struct {
	value   T
	mu      sync.Mutex
	deleted atomic.Bool
	next    atomic.Pointer[node[T]]

	// set only on the list's before-begin node
	sentinel bool
}

// lock acquires the node mutex and returns the matching release, so callers
// write `defer n.lock()()`.
func (n *node[T]) lock() (unlock func()) {
	n.mu.Lock()
	return n.mu.Unlock
}

func (n *node[T]) isDeleted() bool {
	return n.deleted.Load()
}

// markAsDeleted reports whether this call flipped the flag.
func (n *node[T]) markAsDeleted() bool {
	return n.deleted.CompareAndSwap(false, true)
}

func (n *node[T]) nextnode() *node[T] {
	return n.next.Load()
}

// endregion

// region Backoff

// spins is the number of failed CAS rounds tolerated before yielding.
const spins = 8

type backoff int

func (b *backoff) wait() {
	*b++
	if *b > spins {
		runtime.Gosched()
	}
}

// endregion
