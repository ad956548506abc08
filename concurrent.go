// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagstack

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

// ConcurrentDeque is a lock-free implementation of [Deque], safe for
// unsynchronized use by any number of producing and consuming
// goroutines. No operation blocks on another goroutine; progress is
// bounded only by CAS retry under contention.
//
// Insertion happens at the head via a CAS push loop. Removal is a
// two-phase logical delete: the remover wins the element by a CAS on a
// per-node mark, which settles ownership exactly once, then marked
// nodes are physically unlinked cooperatively by later traversals.
//
// Traversal is weakly consistent: each step observes a valid element
// that was present at that step, but a traversal spanning concurrent
// pushes and removals is not a single atomic snapshot. A concurrent
// modification may or may not be observed mid-traversal.
type ConcurrentDeque[T any] struct {
	head atomic.Pointer[concNode[T]]
	size atomix.Uint32
}

type concNode[T any] struct {
	d     *ConcurrentDeque[T]
	value T
	next  atomic.Pointer[concNode[T]]
	dead  atomix.Uint32
}

// NewConcurrentDeque returns an empty lock-free deque.
func NewConcurrentDeque[T any]() *ConcurrentDeque[T] {
	return &ConcurrentDeque[T]{}
}

// AddFirst inserts v at the head. Lock-free: retries the head CAS with
// adaptive backoff under contention.
func (d *ConcurrentDeque[T]) AddFirst(v T) {
	n := &concNode[T]{d: d, value: v}
	var bo iox.Backoff
	for {
		h := d.head.Load()
		n.next.Store(h)
		if d.head.CompareAndSwap(h, n) {
			d.size.Add(1)
			return
		}
		bo.Wait()
	}
}

// RemoveFirst removes and returns the first live element. The mark CAS
// is the linearization point; an element lost to a concurrent remover
// is skipped and the walk continues toward the tail.
func (d *ConcurrentDeque[T]) RemoveFirst() (T, bool) {
	for n := d.head.Load(); n != nil; n = n.next.Load() {
		if n.dead.Load() != 0 {
			continue
		}
		if n.dead.CompareAndSwap(0, 1) {
			d.size.Add(decrement)
			d.collect()
			return n.value, true
		}
	}
	var zero T
	return zero, false
}

// Front returns the first live element's handle, snipping any dead
// prefix on the way.
func (d *ConcurrentDeque[T]) Front() Node[T] {
	for {
		h := d.head.Load()
		if h == nil {
			return nil
		}
		if h.dead.Load() == 0 {
			return h
		}
		d.head.CompareAndSwap(h, h.next.Load())
	}
}

// Len returns the number of live elements. The count is maintained by
// the same mark CAS that settles element ownership, so it never
// includes an element another goroutine already removed.
func (d *ConcurrentDeque[T]) Len() int {
	return int(d.size.Load())
}

// Clear removes all elements one at a time. Elements pushed
// concurrently with Clear may survive it.
func (d *ConcurrentDeque[T]) Clear() {
	for {
		if _, ok := d.RemoveFirst(); !ok {
			return
		}
	}
}

// decrement is the two's-complement encoding of -1 for Uint32.Add.
const decrement = ^uint32(0)

// collect snips the dead prefix off the head. Best effort: a failed
// CAS means another goroutine is collecting the same prefix.
func (d *ConcurrentDeque[T]) collect() {
	for {
		h := d.head.Load()
		if h == nil || h.dead.Load() == 0 {
			return
		}
		d.head.CompareAndSwap(h, h.next.Load())
	}
}

func (n *concNode[T]) Value() T {
	return n.value
}

// Next returns the next live handle, unlinking dead successors in
// passing. Safe even when n itself is already dead: next pointers only
// ever advance past dead nodes, whose own next links stay intact, so a
// stalled traversal can always reach the live suffix.
func (n *concNode[T]) Next() Node[T] {
	for {
		nx := n.next.Load()
		if nx == nil {
			return nil
		}
		if nx.dead.Load() == 0 {
			return nx
		}
		n.next.CompareAndSwap(nx, nx.next.Load())
	}
}

// Remove wins the element by marking it dead. Exactly one caller
// observes true per element; physical unlink is left to later
// traversals.
func (n *concNode[T]) Remove() bool {
	if !n.dead.CompareAndSwap(0, 1) {
		return false
	}
	n.d.size.Add(decrement)
	return true
}
