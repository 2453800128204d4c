// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zfast

import (
	"strings"
	"testing"
)

func TestDebugStringEmptyTrie(t *testing.T) {
	tr := New[uint16](bits10{})
	if got := tr.debugString(); got != "(empty)\n" {
		t.Errorf("debugString() on empty trie = %q, want %q", got, "(empty)\n")
	}
}

func TestDebugStringMentionsEveryLeaf(t *testing.T) {
	tr := New[uint16](bits10{})
	keys := []uint16{10, 20, 30, 512, 900}
	for _, k := range keys {
		tr.Add(k)
	}

	dump := tr.debugString()
	if n := strings.Count(dump, "leaf["); n != len(keys) {
		t.Errorf("debugString() has %d leaf lines, want %d:\n%s", n, len(keys), dump)
	}
}
