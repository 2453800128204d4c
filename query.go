// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zfast

import "github.com/succinct/zfast/internal/bitvec"

// Contains reports whether k is in the trie.
func (t *Trie[T]) Contains(k T) bool {
	if t.size == 0 {
		return false
	}
	v := t.transform.ToBitVector(k)
	_, exit, _ := t.exitSearch(v)
	return t.arena.at(exit).key.Equal(v)
}

// Pred returns the predecessor of k: the greatest stored key less than
// or equal to k in bit-vector order, and whether one exists.
func (t *Trie[T]) Pred(k T) (pred T, ok bool) {
	if t.size == 0 {
		return pred, false
	}
	leaf := t.boundaryLeaf(t.transform.ToBitVector(k), true)
	if leaf == t.head {
		return pred, false
	}
	return t.keyOf(leaf), true
}

// Succ returns the successor of k: the smallest stored key greater than
// or equal to k in bit-vector order, and whether one exists.
func (t *Trie[T]) Succ(k T) (succ T, ok bool) {
	if t.size == 0 {
		return succ, false
	}
	leaf := t.boundaryLeaf(t.transform.ToBitVector(k), false)
	if leaf == t.tail {
		return succ, false
	}
	return t.keyOf(leaf), true
}

func (t *Trie[T]) keyOf(idx nodeIndex) T {
	return t.transform.FromBitVector(t.arena.at(idx).key)
}

// exitSearch is the fast/exact fat-binary search shared by Contains,
// Pred and Succ, identical to the one add() runs inline (it additionally
// threads a fat-ancestor stack add needs for jump-pointer repair, which
// queries have no use for).
func (t *Trie[T]) exitSearch(v bitvec.Vector) (parent, exit nodeIndex, lcp int) {
	parent = t.getParentExitNode(v, nil, false)
	rightChild := t.isRightChild(parent, v, true)
	exit = t.exitNodeOf(parent, rightChild)
	lcp = t.arena.at(exit).key.Lcp(v)

	if !t.arena.at(exit).intercepts(lcp) {
		t.exactRetries.Add(1)
		parent = t.getParentExitNode(v, nil, true)
		rightChild = t.isRightChild(parent, v, false)
		exit = t.exitNodeOf(parent, rightChild)
		lcp = t.arena.at(exit).key.Lcp(v)
	}

	return parent, exit, lcp
}

// boundaryLeaf implements spec.md §4.5's pred/succ rule: locate the exit
// node, then follow the jump-pointer spine on the side v diverges toward
// until a leaf is reached. That leaf answers one of {pred, succ}
// directly; its list neighbor answers the other, since the two
// differ only in which side of the divergence they fall on.
//
// The divergence bit is v[lcp], the first bit where v leaves the exit
// node's key; a v that ends there counts as diverging left. When v is
// itself stored, the exit node is its leaf and that leaf answers both.
// For a single-element trie the answer follows directly from comparing v
// against the one stored key.
func (t *Trie[T]) boundaryLeaf(v bitvec.Vector, forPred bool) nodeIndex {
	if t.size == 1 {
		cmp := bitvec.Compare(v, t.arena.at(t.root).key)
		if forPred {
			if cmp >= 0 {
				return t.root
			}
			return t.head
		}
		if cmp <= 0 {
			return t.root
		}
		return t.tail
	}

	_, exit, lcp := t.exitSearch(v)
	if t.arena.at(exit).key.Equal(v) {
		return exit
	}

	walkStart := exit
	rightChild := lcp < v.Len() && v.Bit(lcp)

	if rightChild {
		leaf := walkStart
		for t.arena.at(leaf).isInternal() {
			leaf = t.arena.at(leaf).jumpRight
		}
		if forPred {
			return leaf
		}
		return t.arena.at(leaf).next
	}

	leaf := walkStart
	for t.arena.at(leaf).isInternal() {
		leaf = t.arena.at(leaf).jumpLeft
	}
	if forPred {
		return t.arena.at(leaf).prev
	}
	return leaf
}
