// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagstack

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Tag is an opaque classification label. Tags carry no behavior of
// their own; the stack uses them only as equality-comparable filter
// keys over item tag sets.
type Tag string

// TagSet is an immutable set of tags. The zero value is the empty set.
//
// Sets are copy-on-construct: a TagSet never shares storage with the
// slice it was built from, and no operation mutates it, so the view an
// [Item] hands out cannot be changed behind the item's back.
type TagSet struct {
	m map[Tag]struct{}
}

// Tags builds a TagSet from the given tags. Duplicates collapse.
func Tags(tags ...Tag) TagSet {
	if len(tags) == 0 {
		return TagSet{}
	}
	m := make(map[Tag]struct{}, len(tags))
	for _, t := range tags {
		m[t] = struct{}{}
	}
	return TagSet{m: m}
}

// Has reports whether t is a member of the set.
func (s TagSet) Has(t Tag) bool {
	_, ok := s.m[t]
	return ok
}

// HasAll reports whether every given tag is a member of the set.
// HasAll with no arguments is vacuously true.
func (s TagSet) HasAll(tags ...Tag) bool {
	return lo.EveryBy(tags, s.Has)
}

// HasAny reports whether at least one given tag is a member of the set.
func (s TagSet) HasAny(tags ...Tag) bool {
	return lo.SomeBy(tags, s.Has)
}

// Len returns the number of tags in the set.
func (s TagSet) Len() int {
	return len(s.m)
}

// All iterates over the tags in unspecified order.
func (s TagSet) All() iter.Seq[Tag] {
	return maps.Keys(s.m)
}

// Slice returns the tags as a freshly allocated sorted slice.
func (s TagSet) Slice() []Tag {
	return slices.Sorted(maps.Keys(s.m))
}

// Equal reports whether both sets contain exactly the same tags.
func (s TagSet) Equal(other TagSet) bool {
	return maps.Equal(s.m, other.m)
}

// String formats the set as [a b c] with tags in sorted order.
func (s TagSet) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, t := range s.Slice() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(string(t))
	}
	b.WriteByte(']')
	return b.String()
}
