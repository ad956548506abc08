// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagstack

// Deque is the minimal double-ended container contract the stack
// engine needs: insert at head, remove from head, and forward
// traversal with in-place unlink. Any implementation satisfying it can
// back a [Stack]; the package ships [LinkedDeque] for single-goroutine
// use and [ConcurrentDeque] for unsynchronized multi-goroutine use.
type Deque[T any] interface {
	// AddFirst inserts v at the head.
	AddFirst(v T)
	// RemoveFirst removes and returns the head element.
	// ok is false when the deque is empty.
	RemoveFirst() (v T, ok bool)
	// Front returns a traversal handle on the head element,
	// or nil when the deque is empty.
	Front() Node[T]
	// Len returns the number of elements present.
	Len() int
	// Clear removes all elements.
	Clear()
}

// Node is a traversal handle over one deque element. Traversal runs
// head to tail: Front, then Next until nil.
type Node[T any] interface {
	// Value returns the element at this node.
	Value() T
	// Next returns the handle on the following element, or nil at
	// the tail.
	Next() Node[T]
	// Remove unlinks the element, leaving elements on either side in
	// their relative order. Reports whether this call removed it;
	// false means a concurrent remover already won the element.
	Remove() bool
}
