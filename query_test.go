// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zfast

import (
	"math/rand"
	"sort"
	"testing"
)

func TestPredSuccEmptyTrie(t *testing.T) {
	tr := New[uint16](bits10{})
	if _, ok := tr.Pred(5); ok {
		t.Error("Pred on empty trie should report ok == false")
	}
	if _, ok := tr.Succ(5); ok {
		t.Error("Succ on empty trie should report ok == false")
	}
}

// TestPredSuccSingleton exercises the boundaryLeaf size==1 branch from
// every angle: querying the stored key itself, something before it, and
// something after it.
func TestPredSuccSingleton(t *testing.T) {
	tr := New[uint16](bits10{})
	tr.Add(500)

	if p, ok := tr.Pred(500); !ok || p != 500 {
		t.Errorf("Pred(500) = (%d, %v), want (500, true)", p, ok)
	}
	if s, ok := tr.Succ(500); !ok || s != 500 {
		t.Errorf("Succ(500) = (%d, %v), want (500, true)", s, ok)
	}

	if p, ok := tr.Pred(600); !ok || p != 500 {
		t.Errorf("Pred(600) = (%d, %v), want (500, true)", p, ok)
	}
	if _, ok := tr.Succ(600); ok {
		t.Error("Succ(600) with only 500 stored should report ok == false")
	}

	if _, ok := tr.Pred(400); ok {
		t.Error("Pred(400) with only 500 stored should report ok == false")
	}
	if s, ok := tr.Succ(400); !ok || s != 500 {
		t.Errorf("Succ(400) = (%d, %v), want (500, true)", s, ok)
	}
}

// TestPredSuccAgainstSortedReference builds a trie over many random 10-bit
// keys and checks Pred/Succ against a plain sorted-slice reference for
// every possible 10-bit probe, stored keys and absent ones alike.
func TestPredSuccAgainstSortedReference(t *testing.T) {
	prng := rand.New(rand.NewSource(7))

	tr := New[uint16](bits10{})
	seen := map[uint16]bool{}
	for len(seen) < 300 {
		k := uint16(prng.Intn(1024))
		if seen[k] {
			continue
		}
		seen[k] = true
		tr.Add(k)
	}

	sorted := make([]uint16, 0, len(seen))
	for k := range seen {
		sorted = append(sorted, k)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	for probe := 0; probe < 1024; probe++ {
		p := uint16(probe)

		wantPred, wantPredOK := refPred(sorted, p)
		gotPred, gotPredOK := tr.Pred(p)
		if gotPredOK != wantPredOK || (wantPredOK && gotPred != wantPred) {
			t.Fatalf("Pred(%d) = (%d, %v), want (%d, %v)", p, gotPred, gotPredOK, wantPred, wantPredOK)
		}

		wantSucc, wantSuccOK := refSucc(sorted, p)
		gotSucc, gotSuccOK := tr.Succ(p)
		if gotSuccOK != wantSuccOK || (wantSuccOK && gotSucc != wantSucc) {
			t.Fatalf("Succ(%d) = (%d, %v), want (%d, %v)", p, gotSucc, gotSuccOK, wantSucc, wantSuccOK)
		}
	}
}

// refPred returns the greatest element of sorted (ascending) that is <= p.
func refPred(sorted []uint16, p uint16) (uint16, bool) {
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i] > p })
	if i == 0 {
		return 0, false
	}
	return sorted[i-1], true
}

// refSucc returns the smallest element of sorted (ascending) that is >= p.
func refSucc(sorted []uint16, p uint16) (uint16, bool) {
	i := sort.Search(len(sorted), func(i int) bool { return sorted[i] >= p })
	if i == len(sorted) {
		return 0, false
	}
	return sorted[i], true
}
