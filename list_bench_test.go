package forwardlist

import (
	"container/list"
	"fmt"
	"sync"
	"testing"

	"go.uber.org/atomic"
)

type frontList interface {
	PushFront(v int)
	PopFront() (int, bool)
}

type mutexList struct {
	mu sync.Mutex
	l  *list.List
}

func newMutexList() *mutexList {
	return &mutexList{l: list.New()}
}

func (m *mutexList) PushFront(v int) {
	m.mu.Lock()
	m.l.PushFront(v)
	m.mu.Unlock()
}

func (m *mutexList) PopFront() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := m.l.Front()
	if e == nil {
		return 0, false
	}
	return m.l.Remove(e).(int), true
}

func BenchmarkPushPopFront(b *testing.B) {
	for _, l := range [...]frontList{New[int](), newMutexList()} {
		b.Run(fmt.Sprintf("%T", l), func(b *testing.B) {
			c := atomic.NewInt64(0)
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					if c.Inc()%2 == 0 {
						l.PushFront(1)
					} else {
						l.PopFront()
					}
				}
			})
		})
	}
}

func BenchmarkInsertAfter_1(b *testing.B)  { parallelInsertAfter(b, 1) }
func BenchmarkInsertAfter_16(b *testing.B) { parallelInsertAfter(b, 16) }
func BenchmarkInsertAfter_64(b *testing.B) { parallelInsertAfter(b, 64) }

// parallelInsertAfter spreads inserts over `positions` distinct nodes, so
// contention drops as positions grow.
func parallelInsertAfter(b *testing.B, positions int) {
	l := New[int]()
	for i := 0; i < positions; i++ {
		l.PushFront(i)
	}
	var pos []Iterator[int]
	for it := l.Begin(); !it.End(); it = it.Next() {
		pos = append(pos, it)
	}

	c := atomic.NewInt64(0)
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			i := int(c.Inc())
			l.InsertAfter(pos[i%positions], i)
		}
	})
}

var sink int

func BenchmarkIterate(b *testing.B) {
	l := newSequence(1 << 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for it := l.Begin(); !it.End(); it = it.Next() {
			sink += it.Value()
		}
	}
}
