package forwardlist

import (
	"go.uber.org/atomic"
)

// region List

// List is a concurrent singly linked list. Use New to create one.
type List[T any] struct {
	head *node[T] // before-begin node, head.next is the first element
	len  atomic.Int64
}

func New[T any]() *List[T] {
	return &List[T]{
		head: &node[T]{sentinel: true},
	}
}

// Len is exact only when no mutation is in flight.
func (l *List[T]) Len() int {
	return int(l.len.Load())
}

// Empty is a snapshot of whether the head link is set.
func (l *List[T]) Empty() bool {
	return l.head.nextnode() == nil
}

func (l *List[T]) owns(n *node[T]) bool {
	return n != nil && (!n.sentinel || n == l.head)
}

// PushFront publishes v as the new first element. It never blocks.
func (l *List[T]) PushFront(v T) {
	n := &node[T]{value: v}
	for b := backoff(0); ; b.wait() {
		first := l.head.nextnode()
		n.next.Store(first)
		if l.head.next.CompareAndSwap(first, n) {
			break
		}
	}
	l.len.Inc()
}

// PopFront removes the first element and returns its value. It returns false
// when the list is empty.
func (l *List[T]) PopFront() (value T, ok bool) {
	for b := backoff(0); ; b.wait() {
		first := l.head.nextnode()
		if first == nil {
			return value, false
		}
		if l.unlinkFirst(first) {
			return first.value, true
		}
	}
}

// unlinkFirst swings the head link past first while holding first's lock, so
// no positional operation can rewrite first.next underneath the CAS.
func (l *List[T]) unlinkFirst(first *node[T]) bool {
	defer first.lock()()

	if !l.head.next.CompareAndSwap(first, first.nextnode()) {
		return false
	}
	if !first.markAsDeleted() {
		invariant("pop front")
	}
	l.len.Dec()
	return true
}

// InsertAfter links v directly behind pos. It returns false if pos is the
// End position or its node has already been removed.
func (l *List[T]) InsertAfter(pos Iterator[T], v T) bool {
	p := pos.n
	if !l.owns(p) {
		return false
	}

	n := &node[T]{value: v}
	defer p.lock()()

	if p.isDeleted() {
		return false
	}

	// Only the before-begin link can move under us (PushFront).
	for b := backoff(0); ; b.wait() {
		succ := p.nextnode()
		n.next.Store(succ)
		if p.next.CompareAndSwap(succ, n) {
			break
		}
	}
	l.len.Inc()
	return true
}

// EraseAfter removes the element directly behind pos. It returns false if
// pos is End, has no successor, or has been removed.
func (l *List[T]) EraseAfter(pos Iterator[T]) bool {
	return l.eraseAfter(pos.n, nil)
}

// CompareAndEraseAfter is EraseAfter restricted to the case where the
// successor of pos is still the node want refers to.
func (l *List[T]) CompareAndEraseAfter(pos, want Iterator[T]) bool {
	if want.n == nil || want.n.sentinel {
		return false
	}
	return l.eraseAfter(pos.n, want.n)
}

func (l *List[T]) eraseAfter(p, want *node[T]) bool {
	if !l.owns(p) || p.nextnode() == nil {
		return false
	}

	defer p.lock()()

	// Both checks above may be stale by now.
	if p.isDeleted() {
		return false
	}

	for b := backoff(0); ; b.wait() {
		del := p.nextnode()
		if del == nil || (want != nil && del != want) {
			return false
		}
		if l.unlinkNext(p, del) {
			return true
		}
		// Interior links only move under p's lock, which we hold.
		if !p.sentinel {
			return false
		}
	}
}

// unlinkNext removes del from behind p. The caller holds p's lock; del is
// kept alive by the local reference while its own lock is taken.
func (l *List[T]) unlinkNext(p, del *node[T]) bool {
	defer del.lock()()

	// Popped between our load and the lock; only possible behind the
	// before-begin node.
	if del.isDeleted() {
		return false
	}
	if !p.next.CompareAndSwap(del, del.nextnode()) {
		return false
	}
	if !del.markAsDeleted() {
		invariant("erase after")
	}
	l.len.Dec()
	return true
}

// Clear detaches every element and marks each detached node deleted. It
// returns the number of nodes it marked.
func (l *List[T]) Clear() int {
	marked := 0
	for n := l.head.next.Swap(nil); n != nil; {
		var ok bool
		n, ok = l.retire(n)
		if ok {
			marked++
		}
	}
	return marked
}

// retire marks n deleted and returns its successor, read under n's lock so
// an InsertAfter that won the lock first is retired as well.
func (l *List[T]) retire(n *node[T]) (next *node[T], marked bool) {
	defer n.lock()()

	if marked = n.markAsDeleted(); marked {
		l.len.Dec()
	}
	return n.nextnode(), marked
}

// Front returns the value of the first element that is not removed.
func (l *List[T]) Front() (value T, ok bool) {
	for it := l.Begin(); !it.End(); it = it.Next() {
		if it.Valid() {
			return it.n.value, true
		}
	}
	return value, false
}

// Range calls fn for every element not yet removed, front to back, until fn
// returns false.
func (l *List[T]) Range(fn func(v T) bool) {
	for n := l.head.nextnode(); n != nil; n = n.nextnode() {
		if n.isDeleted() {
			continue
		}
		if !fn(n.value) {
			return
		}
	}
}

func (l *List[T]) Values() []T {
	values := make([]T, 0, l.Len())
	l.Range(func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

// endregion

// region Positions
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head.nextnode()}
}

func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// BeforeBegin is the position whose successor is the first element. It is
// never Valid and cannot be dereferenced, but it is accepted by InsertAfter
// and EraseAfter.
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{n: l.head}
}

// endregion
