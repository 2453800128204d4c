// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitvec

// Signature is the canonical handle signature: the value the handle
// dictionary is keyed by. It must agree with PreprocessedHash.Signature
// at the same prefix length for any vector sharing that prefix, since
// the fat-binary search computes signatures by preprocessing the query
// key and reads prefix signatures off it, while node registration
// computes the same signature directly from the node's own handle
// vector. Both route through mix/fmix64 over only the bits in range, so
// the two agree.
func Signature(v Vector) uint64 {
	return Preprocess(v, 0).Signature(v.Len())
}

// PreprocessedHash is the amortized-O(1)-per-prefix hash state built once
// over a source vector. spaolacci/murmur3 has no public API for resuming a
// digest mid-stream, so the word-at-a-time mixer below plays that role: it
// folds in one word per preprocessing step and can be queried for any
// prefix length in O(1) by re-mixing only the (masked) partial last word.
type PreprocessedHash struct {
	seed uint64
	// wordState[i] is the running mix after folding in words[0:i].
	wordState []uint64
	v         Vector
}

// Preprocess builds incremental state over v so that signatures of any
// prefix of v can be produced in O(1) amortized time.
func Preprocess(v Vector, seed uint64) PreprocessedHash {
	state := make([]uint64, len(v.words)+1)
	state[0] = seed ^ 0x9E3779B97F4A7C15 // golden-ratio constant, spreads small seeds
	for i, w := range v.words {
		state[i+1] = mix(state[i], w)
	}
	return PreprocessedHash{seed: seed, wordState: state, v: v}
}

// Signature returns the signature of v[0:prefixLen], the prefix of the
// vector this state was built from. O(1) amortized: the only
// non-constant-time step is masking the partial trailing word.
func (p PreprocessedHash) Signature(prefixLen int) uint64 {
	fullWords := prefixLen / wordBits
	rem := prefixLen % wordBits
	state := p.wordState[fullWords]
	if rem != 0 {
		partial := p.v.words[fullWords] & (^uint64(0) << uint(wordBits-rem))
		state = mix(state, partial^uint64(rem))
	}
	return fmix64(state)
}

// mix folds one 64-bit word into a running state using murmur3's own
// 64-bit multiply/rotate constants.
func mix(state, word uint64) uint64 {
	const (
		c1 = 0x87c37b91114253d5
		c2 = 0x4cf5ad432745937f
	)
	k := word * c1
	k = rotl64(k, 31)
	k *= c2
	state ^= k
	state = rotl64(state, 27)
	state = state*5 + 0x52dce729
	return state
}

func rotl64(x uint64, r uint) uint64 {
	return (x << r) | (x >> (64 - r))
}

// fmix64 is murmur3's finalizer, used to avalanche the mixed state before
// it is handed out as a signature.
func fmix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}
