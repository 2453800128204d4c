// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/succinct/zfast/internal/bitvec"
)

// iso88591 implements zfast.Transform[string] by packing each byte of the
// string as Go stores it (its UTF-8 encoding) into 8 bits, preceded by a
// 64-bit big-endian header recording the payload's bit length. For ASCII
// input these are the ISO-8859-1 bytes; other characters are not
// converted to single Latin-1 bytes. Two distinct strings only ever produce vectors of
// equal length when their byte lengths are equal, in which case equal
// vectors imply equal strings; the fixed-width header otherwise rules out
// one vector being a proper prefix of another, which is what the trie
// requires of any Transform (see spec.md §7).
type iso88591 struct{}

func (iso88591) ToBitVector(s string) bitvec.Vector {
	payload := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		payload[i] = s[i]
	}
	return lengthPrefixed(payload, len(payload)*8)
}

func (iso88591) FromBitVector(v bitvec.Vector) string {
	payload := unprefix(v)
	b := make([]byte, len(payload))
	copy(b, payload)
	return string(b)
}

// utf16 implements zfast.Transform[string] the same way as iso88591, but
// packs each rune as a 16-bit UTF-16 code unit (no surrogate pair
// splitting; this CLI targets the BMP subset the reference tool's
// ISO-8859-1/UTF-16 choice implies).
type utf16 struct{}

func (utf16) ToBitVector(s string) bitvec.Vector {
	runes := []rune(s)
	payload := make([]byte, len(runes)*2)
	for i, r := range runes {
		payload[2*i] = byte(r >> 8)
		payload[2*i+1] = byte(r)
	}
	return lengthPrefixed(payload, len(payload)*8)
}

func (utf16) FromBitVector(v bitvec.Vector) string {
	payload := unprefix(v)
	runes := make([]rune, len(payload)/2)
	for i := range runes {
		runes[i] = rune(payload[2*i])<<8 | rune(payload[2*i+1])
	}
	return string(runes)
}

const headerBits = 64

// lengthPrefixed packs a 64-bit big-endian bit-length header ahead of
// payload's first n bits.
func lengthPrefixed(payload []byte, n int) bitvec.Vector {
	header := make([]byte, 8)
	for i := 0; i < 8; i++ {
		header[i] = byte(uint64(n) >> uint(56-8*i))
	}
	full := append(header, payload...)
	return bitvec.FromBytes(full, headerBits+n)
}

// unprefix strips the length header written by lengthPrefixed and returns
// the raw payload bytes.
func unprefix(v bitvec.Vector) []byte {
	words := v.Words()
	var n uint64
	for i := 0; i < 8; i++ {
		byt := byte(words[0] >> uint(56-8*i))
		n = n<<8 | uint64(byt)
	}
	payloadBytes := (int(n) + 7) / 8

	out := make([]byte, payloadBytes)
	for i := 0; i < payloadBytes; i++ {
		bitPos := headerBits + i*8
		word := bitPos / 64
		shift := 64 - 8 - bitPos%64
		out[i] = byte(words[word] >> uint(shift))
	}
	return out
}
