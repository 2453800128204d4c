// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

//go:build !zfastdebug

package zfast

// assertInvariants is a no-op in production builds; see invariants_debug.go
// for the zfastdebug-tagged implementation.
func (t *Trie[T]) assertInvariants() {}
