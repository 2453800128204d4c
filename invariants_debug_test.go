// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

//go:build zfastdebug

package zfast

import (
	"math/rand"
	"testing"
)

// TestAssertInvariantsDoesNotPanic exercises the zfastdebug-tagged assertion
// path against a random workload of the same size as the one
// trie_test.go's TestInvariants checks without the tag, so a build with -tags zfastdebug gets its own
// direct confirmation that assertInvariants agrees there is nothing wrong.
func TestAssertInvariantsDoesNotPanic(t *testing.T) {
	prng := rand.New(rand.NewSource(2024))
	tr := New[uint16](bits10{})

	seen := map[uint16]bool{}
	for len(seen) < 400 {
		k := uint16(prng.Intn(1024))
		if seen[k] {
			continue
		}
		seen[k] = true
		tr.Add(k) // panics on a violated invariant under this build tag
	}
}
