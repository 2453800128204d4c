// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package gf2

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSystemCopyIndependent reproduces the "copy is independent" law: mutating
// the copy must never affect the original.
func TestSystemCopyIndependent(t *testing.T) {
	s := NewSystem(3)
	s.Add(NewEquation(1, 3).Add(0).Add(1))

	cp := s.Copy()
	cp.Equations[0].Add(2)

	require.Equal(t, []uint32{0, 1}, s.Equations[0].Variables())
	require.Equal(t, []uint32{0, 1, 2}, cp.Equations[0].Variables())
}

// TestSystemCheck exercises Check against a known-good and known-bad
// assignment for a tiny two-equation system.
func TestSystemCheck(t *testing.T) {
	s := NewSystem(2)
	s.Add(NewEquation(1, 2).Add(0))
	s.Add(NewEquation(0, 2).Add(1))

	require.True(t, s.Check([]uint64{1, 0}))
	require.False(t, s.Check([]uint64{0, 0}))
	require.False(t, s.Check([]uint64{1, 1}))
}

// TestSeedScenario1Solvable is spec scenario 1: size=2, one equation {0}=2 is solvable.
func TestSeedScenario1Solvable(t *testing.T) {
	s := NewSystem(2)
	s.Add(NewEquation(2, 2).Add(0))

	for _, elim := range eliminators() {
		x := make([]uint64, s.NumVars)
		ok := elim(s.Copy(), x)
		require.True(t, ok)
		require.True(t, s.Check(x))
	}
}

// TestSeedScenario2Unsolvable is spec scenario 2: size=1, equations {0}=2 and {0}=1
// contradict each other (0 XOR'd with itself in the shared variable leaves
// a 0 = 3 residual, a nonzero constant), so both variants must fail.
func TestSeedScenario2Unsolvable(t *testing.T) {
	s := NewSystem(1)
	s.Add(NewEquation(2, 1).Add(0))
	s.Add(NewEquation(1, 1).Add(0))

	for _, elim := range eliminators() {
		x := make([]uint64, s.NumVars)
		ok := elim(s.Copy(), x)
		require.False(t, ok)
	}
}

// TestSeedScenario3RedundantSolvable is spec scenario 3: size=1, equations {0}=2 and {0}=2 are
// redundant, not contradictory, so the system remains solvable.
func TestSeedScenario3RedundantSolvable(t *testing.T) {
	s := NewSystem(1)
	s.Add(NewEquation(2, 1).Add(0))
	s.Add(NewEquation(2, 1).Add(0))

	for _, elim := range eliminators() {
		x := make([]uint64, s.NumVars)
		ok := elim(s.Copy(), x)
		require.True(t, ok)
		require.True(t, s.Check(x))
	}
}

// TestSeedScenario4Solvable is spec scenario 4: size=11, a six-equation system typical of
// a minimal-perfect-hash construction (each equation has exactly three
// variables), solvable by both variants.
func TestSeedScenario4Solvable(t *testing.T) {
	s := NewSystem(11)
	s.Add(NewEquation(0, 11).Add(1).Add(4).Add(10))
	s.Add(NewEquation(2, 11).Add(1).Add(4).Add(9))
	s.Add(NewEquation(0, 11).Add(0).Add(6).Add(8))
	s.Add(NewEquation(1, 11).Add(0).Add(6).Add(9))
	s.Add(NewEquation(2, 11).Add(2).Add(4).Add(8))
	s.Add(NewEquation(0, 11).Add(2).Add(6).Add(10))

	for _, elim := range eliminators() {
		x := make([]uint64, s.NumVars)
		ok := elim(s.Copy(), x)
		require.True(t, ok)
		require.True(t, s.Check(x))
	}
}

// TestCBeyondLowBitRidesAlong checks the open-question resolution: higher
// bits of c behave as an independent parallel system XORed alongside the
// low (GF(2)) bit through elimination.
func TestCBeyondLowBitRidesAlong(t *testing.T) {
	s := NewSystem(2)
	s.Add(NewEquation(0b101, 2).Add(0))     // x0 = 0b101
	s.Add(NewEquation(0b011, 2).Add(0).Add(1)) // x0 ^ x1 = 0b011

	for _, elim := range eliminators() {
		x := make([]uint64, s.NumVars)
		ok := elim(s.Copy(), x)
		require.True(t, ok)
		require.Equal(t, uint64(0b101), x[0])
		require.Equal(t, uint64(0b101^0b011), x[1])
	}
}

func eliminators() []func(s *System, x []uint64) bool {
	return []func(s *System, x []uint64) bool{
		(*System).GaussianElimination,
		(*System).LazyGaussianElimination,
	}
}
