// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tagstack_test

import (
	"testing"

	"code.hybscloud.com/tagstack"
)

func TestTagSetMembership(t *testing.T) {
	s := tagstack.Tags("a", "b", "b")

	if got := s.Len(); got != 2 {
		t.Fatalf("Len got %d, want 2", got)
	}
	if !s.Has("a") || !s.Has("b") {
		t.Fatal("expected a and b to be members")
	}
	if s.Has("c") {
		t.Fatal("c must not be a member")
	}
}

func TestTagSetHasAllHasAny(t *testing.T) {
	s := tagstack.Tags("x", "y")

	if !s.HasAll("x", "y") {
		t.Fatal("HasAll(x, y) must hold")
	}
	if s.HasAll("x", "z") {
		t.Fatal("HasAll(x, z) must not hold")
	}
	if !s.HasAll() {
		t.Fatal("HasAll() must be vacuously true")
	}
	if !s.HasAny("z", "y") {
		t.Fatal("HasAny(z, y) must hold")
	}
	if s.HasAny("z", "w") {
		t.Fatal("HasAny(z, w) must not hold")
	}
}

func TestTagSetEqual(t *testing.T) {
	if !tagstack.Tags("a", "b").Equal(tagstack.Tags("b", "a")) {
		t.Fatal("order must not affect set equality")
	}
	if tagstack.Tags("a").Equal(tagstack.Tags("a", "b")) {
		t.Fatal("sets of different size must differ")
	}
	var zero tagstack.TagSet
	if !zero.Equal(tagstack.Tags()) {
		t.Fatal("zero TagSet must equal the empty set")
	}
}

func TestTagSetIterationAndString(t *testing.T) {
	s := tagstack.Tags("b", "a")

	seen := map[tagstack.Tag]bool{}
	for tag := range s.All() {
		seen[tag] = true
	}
	if len(seen) != 2 || !seen["a"] || !seen["b"] {
		t.Fatalf("All iterated %v, want a and b", seen)
	}
	if got := s.String(); got != "[a b]" {
		t.Fatalf("String got %q, want %q", got, "[a b]")
	}
}

func TestTagSetCopiesInput(t *testing.T) {
	tags := []tagstack.Tag{"a"}
	s := tagstack.Tags(tags...)
	tags[0] = "mutated"

	if !s.Has("a") || s.Has("mutated") {
		t.Fatal("TagSet must not share storage with its input slice")
	}
}
