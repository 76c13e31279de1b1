// Package bag is a concurrent multiset sharded over forward lists.
package bag

import (
	"context"
	"math/bits"

	"golang.org/x/sync/errgroup"

	"github.com/snwfog/forwardlist"
	"github.com/snwfog/forwardlist/pkg/keyhash"
)

type Option[T comparable] func(*Bag[T])

// WithHasher replaces keyhash.Sum as the shard hash.
func WithHasher[T comparable](hash func(T) uint64) Option[T] {
	return func(b *Bag[T]) {
		b.hash = hash
	}
}

type Bag[T comparable] struct {
	shards []*forwardlist.List[T]
	mask   uint64
	hash   func(T) uint64
}

// New creates a bag with shards rounded up to a power of two.
func New[T comparable](shards int, opts ...Option[T]) *Bag[T] {
	if shards < 1 {
		shards = 1
	}
	n := 1 << bits.Len(uint(shards-1))

	b := &Bag[T]{
		shards: make([]*forwardlist.List[T], n),
		mask:   uint64(n - 1),
		hash: func(v T) uint64 {
			return keyhash.Sum(v)
		},
	}
	for i := range b.shards {
		b.shards[i] = forwardlist.New[T]()
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Bag[T]) Shards() int {
	return len(b.shards)
}

func (b *Bag[T]) shard(v T) *forwardlist.List[T] {
	return b.shards[b.hash(v)&b.mask]
}

func (b *Bag[T]) Add(v T) {
	b.shard(v).PushFront(v)
}

// Remove deletes one occurrence of v and reports whether it found one.
func (b *Bag[T]) Remove(v T) bool {
	l := b.shard(v)

RETRY:
	prev := l.BeforeBegin()
	for cur := prev.Next(); !cur.End(); prev, cur = cur, cur.Next() {
		if !cur.Valid() || cur.Value() != v {
			continue
		}
		if l.CompareAndEraseAfter(prev, cur) {
			return true
		}
		// prev was removed or something was spliced in between
		goto RETRY
	}
	return false
}

func (b *Bag[T]) Contains(v T) bool {
	found := false
	b.shard(v).Range(func(x T) bool {
		found = x == v
		return !found
	})
	return found
}

func (b *Bag[T]) Count(v T) int {
	n := 0
	b.shard(v).Range(func(x T) bool {
		if x == v {
			n++
		}
		return true
	})
	return n
}

func (b *Bag[T]) Len() int {
	n := 0
	for _, l := range b.shards {
		n += l.Len()
	}
	return n
}

// Range visits every element shard by shard until fn returns false.
func (b *Bag[T]) Range(fn func(v T) bool) {
	more := true
	for _, l := range b.shards {
		l.Range(func(v T) bool {
			more = fn(v)
			return more
		})
		if !more {
			return
		}
	}
}

// Clear empties every shard concurrently and returns the number of elements
// removed.
func (b *Bag[T]) Clear() int {
	cleared := make([]int, len(b.shards))
	g, _ := errgroup.WithContext(context.Background())
	for i, l := range b.shards {
		i, l := i, l
		g.Go(func() error {
			cleared[i] = l.Clear()
			return nil
		})
	}
	_ = g.Wait()

	n := 0
	for _, c := range cleared {
		n += c
	}
	return n
}
