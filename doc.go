// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package zfast implements a z-fast trie: a predecessor/successor
// dictionary over a dynamic set of distinct, prefix-free bit strings.
// Membership, predecessor and successor queries run in time
// proportional to ℓ/w + log(max(ℓ, ℓ⁻, ℓ⁺)) with high probability, where
// w is a machine word and ℓ⁻/ℓ⁺ are the bit lengths of the query's
// predecessor and successor, by combining a compacted binary trie with
// a randomized fat-binary search over node handles and a signature-
// indexed open-addressed handle dictionary.
//
// Keys are supplied indirectly through a Transform, which the caller
// implements to turn a domain value into the prefix-free bit vector the
// trie actually compares; see internal/bitvec for the bit-vector
// contract such a Transform must satisfy.
//
// The trie never deletes: Add, Contains, Pred and Succ are its whole
// mutation and query surface, plus MarshalBinary/UnmarshalBinary for the stable
// on-disk form.
//
// internal/gf2 is an unrelated second component packaged alongside the
// trie: a GF(2) linear system solver (full and lazy Gaussian
// elimination) used by the minimal-perfect-hash constructions that
// consume this trie as a building block.
package zfast
