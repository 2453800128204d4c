// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zfast

import "sync/atomic"

// arena owns every node[T] ever created by a Trie. Nodes are appended,
// never individually freed (the data structure does not support
// deletion), so a plain growable slice indexed by nodeIndex replaces the
// teacher's sync.Pool-based node recycling: there is nothing to recycle
// when nothing is ever returned.
type arena struct {
	nodes []node

	totalAllocated atomic.Int64
}

// alloc appends a zero-value node and returns its index.
func (a *arena) alloc() nodeIndex {
	a.totalAllocated.Add(1)
	a.nodes = append(a.nodes, node{left: nilIdx, right: nilIdx, jumpLeft: nilIdx, jumpRight: nilIdx, reference: nilIdx, prev: nilIdx, next: nilIdx})
	return nodeIndex(len(a.nodes) - 1)
}

// at returns a pointer into the arena's backing slice. Pointers are only
// valid until the next alloc call grows the slice, so callers must never
// hold one across an insertion step.
func (a *arena) at(i nodeIndex) *node {
	return &a.nodes[i]
}

// Stats reports the total number of nodes ever allocated by the arena.
func (a *arena) Stats() (totalAllocated int64) {
	return a.totalAllocated.Load()
}
