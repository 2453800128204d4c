// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package gf2

// LazyGaussianElimination solves the system with a structured approach
// that exploits the sparsity typical of minimal-perfect-hash workloads:
// most equations have exactly three variables and most variables occur in
// only a handful of equations.
//
// Phase 1 (peeling) repeatedly finds a variable that occurs in exactly one
// remaining equation and resolves it through that equation, removing the
// equation from the active set. Phase 2 runs standard GaussianElimination
// on whatever equations peeling could not remove (the "core"). Returns
// false under the same conditions as GaussianElimination.
func (s *System) LazyGaussianElimination(x []uint64) bool {
	degree := make([]int, s.NumVars)
	varEqs := make([][]uint32, s.NumVars)

	for idx, eq := range s.Equations {
		for _, v := range eq.Variables() {
			degree[v]++
			varEqs[v] = append(varEqs[v], uint32(idx))
		}
	}

	consumed := make([]bool, len(s.Equations))

	type peelStep struct {
		v     uint
		eqIdx uint32
	}
	var stack []peelStep

	queue := make([]uint, 0, s.NumVars)
	for v := uint(0); v < s.NumVars; v++ {
		if degree[v] == 1 {
			queue = append(queue, v)
		}
	}

	for len(queue) > 0 {
		v := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if degree[v] != 1 {
			continue // stale entry, v was resolved through a different edge already
		}

		var eqIdx uint32
		found := false
		for len(varEqs[v]) > 0 {
			cand := varEqs[v][len(varEqs[v])-1]
			varEqs[v] = varEqs[v][:len(varEqs[v])-1]
			if !consumed[cand] {
				eqIdx = cand
				found = true
				break
			}
		}
		if !found {
			continue
		}

		consumed[eqIdx] = true
		stack = append(stack, peelStep{v: v, eqIdx: eqIdx})

		for _, w32 := range s.Equations[eqIdx].Variables() {
			w := uint(w32)
			if w == v {
				continue
			}
			degree[w]--
			if degree[w] == 1 {
				queue = append(queue, w)
			}
		}
	}

	core := NewSystem(s.NumVars)
	for idx, eq := range s.Equations {
		if !consumed[idx] {
			core.Add(eq)
		}
	}

	if !core.GaussianElimination(x) {
		return false
	}

	// Back-substitute in reverse peeling order: the variable peeled last
	// depends only on variables resolved by the core or peeled even later,
	// so undoing the stack top-down keeps every dependency already solved.
	for i := len(stack) - 1; i >= 0; i-- {
		step := stack[i]
		eq := s.Equations[step.eqIdx]
		acc := eq.c
		for _, w := range eq.Variables() {
			if uint(w) != step.v {
				acc ^= x[w]
			}
		}
		x[step.v] = acc
	}

	return true
}
