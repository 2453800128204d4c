// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package gf2

import "sort"

// GaussianElimination performs standard GF(2) row reduction in place and,
// on success, writes a satisfying assignment into x (len(x) == s.NumVars).
// It returns false if the system is infeasible, in which case x is left in
// an unspecified state.
//
// Pivoting always selects the smallest variable present in the equation
// being reduced, matching the reference implementation's tie-break rule.
func (s *System) GaussianElimination(x []uint64) bool {
	pivotRow := make([]*Equation, s.NumVars)

	for _, orig := range s.Equations {
		cur := orig
		for {
			if cur.IsEmpty() {
				if cur.c != 0 {
					return false
				}
				break
			}
			pivot, _ := cur.firstVar()
			if pivotRow[pivot] == nil {
				pivotRow[pivot] = cur
				break
			}
			// reduce against the existing pivot row; never mutate a row
			// already installed as someone's pivot.
			cur = cur.clone().AddEquation(pivotRow[pivot])
		}
	}

	backSubstitute(pivotRow, x)
	return true
}

// backSubstitute assigns x from a set of pivot rows indexed by pivot
// variable (nil where no row has that pivot, i.e. a free variable that
// defaults to 0), processing pivots from largest to smallest so that every
// non-pivot variable referenced by a row is already resolved.
func backSubstitute(pivotRow []*Equation, x []uint64) {
	pivots := make([]int, 0, len(pivotRow))
	for v, e := range pivotRow {
		if e != nil {
			pivots = append(pivots, v)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(pivots)))

	for v, e := range pivotRow {
		if e == nil {
			x[v] = 0
		}
	}

	for _, v := range pivots {
		e := pivotRow[v]
		acc := e.c
		for _, w := range e.Variables() {
			if int(w) != v {
				acc ^= x[w]
			}
		}
		x[v] = acc
	}
}
