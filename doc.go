// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tagstack provides a generic last-in-first-out container
// whose items carry a value plus a set of classification tags, with
// querying, streaming, and removal by tag-based predicates.
//
// # Architecture
//
//   - Engine: [Stack] implements all ordering, search, and removal
//     logic over the minimal [Deque] container contract
//     (insert-at-head, remove-from-head, forward traversal).
//   - Containers: [LinkedDeque] for single-goroutine use;
//     [ConcurrentDeque] is lock-free and safe for unsynchronized
//     multi-goroutine push/pop/peek/stream, with contention retry via
//     [code.hybscloud.com/iox.Backoff] and counters from
//     [code.hybscloud.com/atomix].
//   - Items: [Item] is an immutable value plus read-only [TagSet];
//     absent-capable results are [github.com/samber/mo.Option].
//   - Ordering: every predicate operation searches top to bottom; the
//     most recently pushed matching item wins, so a tag naming a scope
//     shadows older pushes in that scope.
//
// # Consistency
//
// On [ConcurrentDeque]-backed stacks, single-item operations are
// atomic with respect to one another. Traversals ([Stack.Stream],
// [Stack.FindAll], [Stack.RemoveAll]) are weakly consistent: each step
// observes a live item, but the walk is not an atomic snapshot and
// concurrent modifications may or may not be observed. No operation
// blocks; a predicate miss or an empty stack returns None immediately.
//
// # Example
//
//	s := tagstack.NewConcurrent[string]()
//	s.Push("fallback", "config")
//	s.Push("override", "config")
//	it, ok := s.PopFirst(tagstack.AllTags[string]("config")).Get()
//	// ok == true, it.Value() == "override"
package tagstack
