// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zfast

import (
	"math/bits"

	"github.com/succinct/zfast/internal/bitvec"
)

// nodeIndex is an index into a Trie's node arena. All node-to-node
// references (left/right children, jump pointers, leaf-list links, the
// internal/leaf back-reference) are indices rather than pointers: the
// trie, not the garbage collector, owns the lifetime of every node (see
// DESIGN.md, "node arena").
type nodeIndex int32

// nilIdx marks the absence of a node.
const nilIdx nodeIndex = -1

// node is either an internal node of the compacted binary trie or a leaf.
// A node is a leaf iff jumpLeft == nilIdx.
type node struct {
	key                bitvec.Vector
	parentExtentLength int
	extentLength       int

	left, right         nodeIndex // internal only
	jumpLeft, jumpRight nodeIndex // internal only; nilIdx <=> leaf

	reference nodeIndex // internal: its reference leaf; leaf: the internal node referencing it (itself for the root leaf of a one-key trie)

	prev, next nodeIndex // doubly linked leaf list; internal nodes leave these at nilIdx
}

func (n *node) isLeaf() bool { return n.jumpLeft == nilIdx }

func (n *node) isInternal() bool { return !n.isLeaf() }

// intercepts reports whether length h intercepts n: p < h <= e for
// internal nodes, and p < h for leaves (a leaf's extent is unbounded,
// since |key| == extentLength but the leaf represents every length beyond
// its parent's extent).
func (n *node) intercepts(h int) bool {
	if n.isLeaf() {
		return h > n.parentExtentLength
	}
	return h > n.parentExtentLength && h <= n.extentLength
}

// handleLength returns twoFattest(parentExtentLength, extentLength), the
// unique multiple of the largest power of two in (p, e].
func (n *node) handleLength() int {
	return twoFattest(n.parentExtentLength, n.extentLength)
}

// jumpLength returns the handle length plus its lowest set bit: the
// length used to select the jump-pointer target during setJumps and
// during ancestor repair on insertion.
func (n *node) jumpLength() int {
	h := n.handleLength()
	return h + (h & -h)
}

// handle returns the prefix of key of length handleLength.
func (n *node) handle() bitvec.Vector {
	return n.key.Prefix(n.handleLength())
}

// extent returns the prefix of key of length extentLength.
func (n *node) extent() bitvec.Vector {
	return n.key.Prefix(n.extentLength)
}

// twoFattest returns the 2-fattest integer in (l, r]: the integer in that
// range divisible by the largest power of two. l == r is a degenerate
// but legitimate call: it happens whenever the very first two keys
// inserted into the trie diverge at bit 0, since the root leaf's
// parentExtentLength is 0, and must return 0 rather than panic, the
// same value the reference implementation's shift arithmetic produces
// for that case.
//
// Example: twoFattest(5, 8) considers {6,7,8}; 8 = 2^3 is the most
// divisible by a power of two, so the result is 8.
func twoFattest(l, r int) int {
	diff := l ^ r
	msb := bits.Len64(uint64(diff)) - 1 // -1 when diff == 0
	mask := (^0) << uint(msb)           // shift count wraps to >=64, giving mask == 0
	return mask & r
}
