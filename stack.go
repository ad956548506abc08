// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagstack

import (
	"fmt"
	"iter"

	"github.com/google/uuid"
	"github.com/samber/mo"
)

// Stack is a last-in-first-out container of tagged items over any
// [Deque]. All ordering, search, and removal logic lives here; the
// container contributes storage and, for [ConcurrentDeque], the
// lock-free per-operation atomicity described in its documentation.
//
// Every predicate-based operation searches top to bottom and, for
// singular operations, stops at the first match. The most recently
// pushed matching item wins; callers layering scoped context values
// rely on that shadowing order.
type Stack[T any] struct {
	name string
	deq  Deque[Item[T]]
}

// Option configures a stack at construction time.
type Option func(*config)

type config struct {
	name string
}

// WithName assigns the stack's immutable identifier. Without it the
// stack generates a random UUID string. The name serves diagnostics
// only; it takes no part in equality or ordering.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// New builds a stack engine over the supplied container.
// Returns [ErrInvalidArgument] if the container is nil.
func New[T any](deq Deque[Item[T]], opts ...Option) (*Stack[T], error) {
	if deq == nil {
		return nil, fmt.Errorf("%w: nil deque", ErrInvalidArgument)
	}
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.name == "" {
		c.name = uuid.NewString()
	}
	return &Stack[T]{name: c.name, deq: deq}, nil
}

// NewLinked returns a stack over a [LinkedDeque]. Single-goroutine
// use only; see LinkedDeque.
func NewLinked[T any](opts ...Option) *Stack[T] {
	s, _ := New[T](NewLinkedDeque[Item[T]](), opts...)
	return s
}

// NewConcurrent returns a stack over a [ConcurrentDeque], safe for
// unsynchronized use by multiple goroutines.
func NewConcurrent[T any](opts ...Option) *Stack[T] {
	s, _ := New[T](NewConcurrentDeque[Item[T]](), opts...)
	return s
}

// Name returns the stack's immutable identifier.
func (s *Stack[T]) Name() string {
	return s.name
}

// Push wraps value with tags into a new item and inserts it at the
// top. Returns [ErrInvalidArgument] if the value is absent; the stack
// is untouched in that case.
func (s *Stack[T]) Push(value T, tags ...Tag) error {
	it, err := NewItem(value, Tags(tags...))
	if err != nil {
		return err
	}
	s.deq.AddFirst(it)
	return nil
}

// PushItem inserts an already constructed item at the top. Useful for
// transplanting items between stacks.
func (s *Stack[T]) PushItem(it Item[T]) {
	s.deq.AddFirst(it)
}

// Pop removes and returns the top item, or None when the stack is
// empty.
func (s *Stack[T]) Pop() mo.Option[Item[T]] {
	it, ok := s.deq.RemoveFirst()
	if !ok {
		return mo.None[Item[T]]()
	}
	return mo.Some(it)
}

// PopFirst removes and returns the topmost item matching pred, or
// None when nothing matches. The match is spliced out in place: items
// above it stay, in their relative order, above the gap.
func (s *Stack[T]) PopFirst(pred Predicate[T]) mo.Option[Item[T]] {
	for n := s.deq.Front(); n != nil; n = n.Next() {
		it := n.Value()
		if !pred(it) {
			continue
		}
		if n.Remove() {
			return mo.Some(it)
		}
		// lost the item to a concurrent remover; keep searching
	}
	return mo.None[Item[T]]()
}

// Peek returns the top item without removing it, or None when the
// stack is empty.
func (s *Stack[T]) Peek() mo.Option[Item[T]] {
	n := s.deq.Front()
	if n == nil {
		return mo.None[Item[T]]()
	}
	return mo.Some(n.Value())
}

// PeekFirst returns the topmost item matching pred without removing
// it, or None when nothing matches.
func (s *Stack[T]) PeekFirst(pred Predicate[T]) mo.Option[Item[T]] {
	return s.FindFirst(pred)
}

// FindFirst returns the topmost item matching pred, or None.
func (s *Stack[T]) FindFirst(pred Predicate[T]) mo.Option[Item[T]] {
	for n := s.deq.Front(); n != nil; n = n.Next() {
		if it := n.Value(); pred(it) {
			return mo.Some(it)
		}
	}
	return mo.None[Item[T]]()
}

// FindAll returns a lazy top-to-bottom sequence of all items matching
// pred. The sequence is finite and forward-only; ranging again
// re-scans the stack's state at that time. On a concurrent stack the
// traversal is weakly consistent.
func (s *Stack[T]) FindAll(pred Predicate[T]) iter.Seq[Item[T]] {
	return func(yield func(Item[T]) bool) {
		for n := s.deq.Front(); n != nil; n = n.Next() {
			if it := n.Value(); pred(it) && !yield(it) {
				return
			}
		}
	}
}

// Stream returns a lazy top-to-bottom sequence of all items whose tag
// set satisfies pred. The predicate receives the whole set, so AND,
// OR, and NOT combinations over several tags compose in one closure.
// Same traversal guarantees as [Stack.FindAll].
func (s *Stack[T]) Stream(pred func(TagSet) bool) iter.Seq[Item[T]] {
	return s.FindAll(func(it Item[T]) bool { return pred(it.Tags()) })
}

// RemoveAll removes every item matching pred, wherever located, and
// returns the count removed. Survivors keep their relative order.
//
// On a concurrent stack each removal is individually atomic but the
// sweep as a whole is not a snapshot: items pushed during the sweep
// may or may not be visited.
func (s *Stack[T]) RemoveAll(pred Predicate[T]) int {
	removed := 0
	for n := s.deq.Front(); n != nil; n = n.Next() {
		if pred(n.Value()) && n.Remove() {
			removed++
		}
	}
	return removed
}

// Len returns the number of items present.
func (s *Stack[T]) Len() int {
	return s.deq.Len()
}

// IsEmpty reports whether the stack has no items.
func (s *Stack[T]) IsEmpty() bool {
	return s.deq.Len() == 0
}

// Clear removes all items. Already popped or removed items are
// unaffected.
func (s *Stack[T]) Clear() {
	s.deq.Clear()
}
