// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zfast

import (
	"sync/atomic"

	"github.com/succinct/zfast/internal/bitvec"
)

// Transform converts a domain value T into the prefix-free bit vector the
// trie actually stores and compares, playing the role the original
// TransformationStrategy interface plays in spec.md §6. Implementations
// must be deterministic and injective over the set of values ever passed
// to Add, and the produced vectors must be prefix-free: no inserted key's
// vector may be a proper prefix of another's. The trie does not check
// this; violating it is undefined behavior (see spec.md §7).
//
// FromBitVector inverts ToBitVector over the image of values the trie
// actually stores; Pred and Succ use it to hand back a T rather than the
// raw bit vector a matching leaf carries. A Transform that only ever
// needs Add/Contains may implement it by panicking, but any Transform
// used with Pred/Succ must make it a real inverse.
type Transform[T any] interface {
	ToBitVector(T) bitvec.Vector
	FromBitVector(bitvec.Vector) T
}

// Trie is a z-fast trie: a predecessor/successor dictionary over a dynamic
// set of distinct, prefix-free bit strings produced by Transform. The zero
// value is not ready to use; construct one with New.
type Trie[T any] struct {
	transform Transform[T]

	arena arena
	dict  *handleDict

	root       nodeIndex
	head, tail nodeIndex

	size         int
	exactRetries atomic.Int64
}

// New creates an empty Trie that converts values to bit vectors via t.
func New[T any](t Transform[T]) *Trie[T] {
	tr := &Trie[T]{transform: t, dict: newHandleDict(), root: nilIdx}
	tr.head = tr.arena.alloc()
	tr.tail = tr.arena.alloc()
	tr.arena.at(tr.head).next = tr.tail
	tr.arena.at(tr.tail).prev = tr.head
	return tr
}

// Size returns the number of distinct keys currently stored.
func (t *Trie[T]) Size() int { return t.size }

// NodeCount returns the total number of nodes ever allocated by the trie's
// arena, including internal nodes, leaves, and the two sentinels.
func (t *Trie[T]) NodeCount() int64 { return t.arena.Stats() }

// Remove is not supported: spec.md §9 notes that the reference
// implementation declares remove(Object) but delegates to an abstract
// base implementation that is incorrect for this data structure, so it is
// treated as out of scope here too.
func (t *Trie[T]) Remove(T) error {
	return ErrUnsupported
}
