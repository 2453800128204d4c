// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package gf2 implements a linear system solver over GF(2), the field with
// two elements, used by minimal-perfect-hash constructions that sit beside
// the z-fast trie. It is independent of the trie package.
package gf2

import "github.com/bits-and-blooms/bitset"

// Equation represents Σ x_i ≡ c (mod 2) over a set of variable indices.
// c is carried as a full uint64: bit 0 is the GF(2) right-hand side that
// elimination solves for, and any higher bits ride along XORed through
// elimination unchanged, behaving as independent parallel systems sharing
// this equation's variable set (see DESIGN.md, "c beyond its low bit").
type Equation struct {
	vars *bitset.BitSet
	c    uint64
}

// NewEquation creates an equation with right-hand side c over a variable
// universe of size nvars (the total number of variables in the owning
// System).
func NewEquation(c uint64, nvars uint) *Equation {
	return &Equation{vars: bitset.New(nvars), c: c}
}

// Add includes variable i in the equation (its coefficient is always 1 in
// GF(2); including it twice cancels it out, matching XOR semantics).
func (e *Equation) Add(i uint) *Equation {
	if e.vars.Test(i) {
		e.vars.Clear(i)
	} else {
		e.vars.Set(i)
	}
	return e
}

// AddEquation XORs other into e: the variable set becomes the symmetric
// difference of the two sets, and c is XORed bitwise.
func (e *Equation) AddEquation(other *Equation) *Equation {
	e.vars.InPlaceSymmetricDifference(other.vars)
	e.c ^= other.c
	return e
}

// Variables returns the sorted indices of the variables with coefficient 1.
func (e *Equation) Variables() []uint32 {
	out := make([]uint32, 0, e.vars.Count())
	for i, ok := e.vars.NextSet(0); ok; i, ok = e.vars.NextSet(i + 1) {
		out = append(out, uint32(i))
	}
	return out
}

// IsEmpty reports whether the equation has no variables left.
func (e *Equation) IsEmpty() bool {
	return e.vars.None()
}

// C returns the current right-hand side.
func (e *Equation) C() uint64 { return e.c }

// IsUnsolvable reports whether the equation has collapsed to 0 = c with a
// nonzero c, which makes the system it belongs to infeasible.
func (e *Equation) IsUnsolvable() bool {
	return e.IsEmpty() && e.c != 0
}

// firstVar returns the smallest variable index present in e, and whether
// one exists.
func (e *Equation) firstVar() (uint, bool) {
	return e.vars.NextSet(0)
}

// clone returns an independent deep copy of e.
func (e *Equation) clone() *Equation {
	return &Equation{vars: e.vars.Clone(), c: e.c}
}

// satisfies reports whether assignment x satisfies e: the XOR of x[i] for
// every set variable i must equal e.c.
func (e *Equation) satisfies(x []uint64) bool {
	var acc uint64
	for i, ok := e.vars.NextSet(0); ok; i, ok = e.vars.NextSet(i + 1) {
		acc ^= x[i]
	}
	return acc == e.c
}
