// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagstack

import (
	"fmt"
	"hash/maphash"
	"reflect"

	"github.com/samber/lo"
)

// Item is an immutable value plus a set of classification tags.
// Items are created at push time (or directly via [NewItem]/[ItemOf])
// and never change afterwards; the tag set handed out by [Item.Tags]
// is a read-only view.
type Item[T any] struct {
	value T
	tags  TagSet
}

// NewItem wraps value with the given tag set.
// Returns [ErrInvalidArgument] if the value is absent (a nil pointer,
// interface, map, slice, function, or channel). The tag set may be
// empty; the zero TagSet is the empty set.
func NewItem[T any](value T, tags TagSet) (Item[T], error) {
	if absent(value) {
		return Item[T]{}, fmt.Errorf("%w: nil item value", ErrInvalidArgument)
	}
	return Item[T]{value: value, tags: tags}, nil
}

// ItemOf wraps value with tags given as an argument list.
// Panics if the value is absent; use [NewItem] to handle that case.
func ItemOf[T any](value T, tags ...Tag) Item[T] {
	return lo.Must(NewItem(value, Tags(tags...)))
}

// Value returns the carried value.
func (it Item[T]) Value() T {
	return it.value
}

// Tags returns a read-only view of the item's tag set.
func (it Item[T]) Tags() TagSet {
	return it.tags
}

// Equal reports structural equality: values compared with
// [reflect.DeepEqual], tag sets compared as sets.
func (it Item[T]) Equal(other Item[T]) bool {
	return it.tags.Equal(other.tags) && reflect.DeepEqual(it.value, other.value)
}

// String formats the item as Item(value;tags) for diagnostics.
func (it Item[T]) String() string {
	return fmt.Sprintf("Item(%v;%v)", it.value, it.tags)
}

// Hash returns a seeded hash of the item's value. Two Equal items of a
// value type without reference fields hash identically; the tag set is
// not mixed in, which keeps Hash consistent with [Item.Equal].
func Hash[T comparable](seed maphash.Seed, it Item[T]) uint64 {
	return maphash.Comparable(seed, it.value)
}

// absent reports whether v is a nil value of a nilable kind.
// Values of non-nilable kinds are never absent.
func absent(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map,
		reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
