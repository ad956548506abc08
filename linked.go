// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagstack

// LinkedDeque is a plain doubly-linked implementation of [Deque].
// It carries no synchronization: concurrent use from multiple
// goroutines is the caller's responsibility and is not supported.
// Use [ConcurrentDeque] for shared stacks.
type LinkedDeque[T any] struct {
	head *linkedNode[T]
	size int
}

type linkedNode[T any] struct {
	d     *LinkedDeque[T]
	value T
	prev  *linkedNode[T]
	next  *linkedNode[T]
	gone  bool
}

// NewLinkedDeque returns an empty single-goroutine deque.
func NewLinkedDeque[T any]() *LinkedDeque[T] {
	return &LinkedDeque[T]{}
}

// AddFirst inserts v at the head.
func (d *LinkedDeque[T]) AddFirst(v T) {
	n := &linkedNode[T]{d: d, value: v, next: d.head}
	if d.head != nil {
		d.head.prev = n
	}
	d.head = n
	d.size++
}

// RemoveFirst removes and returns the head element.
func (d *LinkedDeque[T]) RemoveFirst() (T, bool) {
	if d.head == nil {
		var zero T
		return zero, false
	}
	n := d.head
	n.unlink()
	return n.value, true
}

// Front returns the head traversal handle, or nil when empty.
func (d *LinkedDeque[T]) Front() Node[T] {
	if d.head == nil {
		return nil
	}
	return d.head
}

// Len returns the number of elements present.
func (d *LinkedDeque[T]) Len() int {
	return d.size
}

// Clear removes all elements.
func (d *LinkedDeque[T]) Clear() {
	d.head = nil
	d.size = 0
}

func (n *linkedNode[T]) Value() T {
	return n.value
}

func (n *linkedNode[T]) Next() Node[T] {
	if n.next == nil {
		return nil
	}
	return n.next
}

// Remove splices the element out in place. Idempotent: a second call
// on the same node reports false.
func (n *linkedNode[T]) Remove() bool {
	if n.gone {
		return false
	}
	n.unlink()
	return true
}

func (n *linkedNode[T]) unlink() {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		n.d.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.gone = true
	n.d.size--
}
