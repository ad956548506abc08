// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagstack

// Predicate selects items during search, streaming, and removal.
type Predicate[T any] func(Item[T]) bool

// AllTags matches items whose tag set contains every given tag.
func AllTags[T any](tags ...Tag) Predicate[T] {
	return func(it Item[T]) bool { return it.Tags().HasAll(tags...) }
}

// AnyTag matches items whose tag set contains at least one given tag.
func AnyTag[T any](tags ...Tag) Predicate[T] {
	return func(it Item[T]) bool { return it.Tags().HasAny(tags...) }
}

// TagsMatch lifts a whole-tag-set predicate to an item predicate.
func TagsMatch[T any](pred func(TagSet) bool) Predicate[T] {
	return func(it Item[T]) bool { return pred(it.Tags()) }
}

// And matches items satisfying every predicate.
// And with no arguments matches everything.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(it Item[T]) bool {
		for _, p := range preds {
			if !p(it) {
				return false
			}
		}
		return true
	}
}

// Or matches items satisfying at least one predicate.
func Or[T any](preds ...Predicate[T]) Predicate[T] {
	return func(it Item[T]) bool {
		for _, p := range preds {
			if p(it) {
				return true
			}
		}
		return false
	}
}

// Not inverts a predicate.
func Not[T any](pred Predicate[T]) Predicate[T] {
	return func(it Item[T]) bool { return !pred(it) }
}
