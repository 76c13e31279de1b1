package forwardlist

import (
	"github.com/pkg/errors"
)

// region Iterator

// Iterator designates a position in a List. The zero value is the End
// position. Copies share the node; holding one keeps the node's memory alive
// after it is removed.
//
// Iterators are values and may be passed between goroutines. The element
// itself is not synchronized; Value returns a copy.
type Iterator[T any] struct {
	n *node[T]
}

// Valid reports whether the iterator refers to an element that has not been
// removed. It is accurate for that node regardless of where the node sits.
func (it Iterator[T]) Valid() bool {
	return it.n != nil && !it.n.sentinel && !it.n.isDeleted()
}

func (it Iterator[T]) End() bool {
	return it.n == nil
}

// Value returns the element. It may return the value of a node that has since
// been removed; check Valid when that matters. Value panics on End and
// BeforeBegin.
func (it Iterator[T]) Value() T {
	if it.n == nil || it.n.sentinel {
		panic(errors.WithStack(ErrEndIterator))
	}
	return it.n.value
}

// Next follows the current successor link. Next of End is End.
func (it Iterator[T]) Next() Iterator[T] {
	if it.n == nil {
		return it
	}
	return Iterator[T]{n: it.n.nextnode()}
}

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.n == other.n
}

// endregion
