// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zfast

import "github.com/succinct/zfast/internal/bitvec"

// bits10 transforms a uint16 restricted to its low 10 bits into a 10-bit
// vector, left-aligned into a single word. Fixed-width keys are trivially
// prefix-free (two vectors of equal length can only be a prefix of one
// another if they are identical), which is exactly what the trie's
// Transform contract requires and keeps test key generation simple.
type bits10 struct{}

func (bits10) ToBitVector(v uint16) bitvec.Vector {
	word := uint64(v&1023) << 54
	return bitvec.New([]uint64{word}, 10)
}

func (bits10) FromBitVector(v bitvec.Vector) uint16 {
	return uint16(v.Words()[0] >> 54)
}
