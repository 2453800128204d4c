// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zfast

import (
	"bytes"
	"encoding/binary"

	"github.com/succinct/zfast/internal/bitvec"
)

// MarshalBinary encodes the trie in the stable form of spec.md §6: an
// 8-byte big-endian size, followed (if size > 0) by a preorder DFS of
// the trie: one flag byte (0 leaf, 1 internal) and an 8-byte
// big-endian pathLength (extentLength - parentExtentLength) per node,
// leaves additionally carrying their key's bit-vector encoding
// (8-byte bit length, then that many bits packed big-endian into
// 8-byte words).
func (t *Trie[T]) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	var u64 [8]byte

	binary.BigEndian.PutUint64(u64[:], uint64(t.size))
	buf.Write(u64[:])

	if t.size > 0 {
		t.writeNode(&buf, t.root)
	}
	return buf.Bytes(), nil
}

func (t *Trie[T]) writeNode(buf *bytes.Buffer, idx nodeIndex) {
	n := t.arena.at(idx)
	var u64 [8]byte

	if n.isInternal() {
		buf.WriteByte(1)
		binary.BigEndian.PutUint64(u64[:], uint64(n.extentLength-n.parentExtentLength))
		buf.Write(u64[:])
		t.writeNode(buf, n.left)
		t.writeNode(buf, n.right)
		return
	}

	buf.WriteByte(0)
	binary.BigEndian.PutUint64(u64[:], uint64(n.extentLength-n.parentExtentLength))
	buf.Write(u64[:])
	writeVector(buf, n.key)
}

func writeVector(buf *bytes.Buffer, v bitvec.Vector) {
	var u64 [8]byte
	binary.BigEndian.PutUint64(u64[:], uint64(v.Len()))
	buf.Write(u64[:])
	for _, w := range v.Words() {
		binary.BigEndian.PutUint64(u64[:], w)
		buf.Write(u64[:])
	}
}

// UnmarshalBinary decodes data produced by MarshalBinary into t, which
// must be empty (freshly constructed by New). It reconstructs the node
// graph, the leaf list and the handle dictionary in a single preorder
// pass using four parallel stacks, the same scheme the reference
// implementation's readNode uses: a leafStack of leaves awaiting
// adoption as some ancestor's reference leaf; a jumpStack/depthStack of
// internal nodes whose jump pointers are still unresolved; and a
// segmentStack/dirStack run-length-encoding the left/right turns taken
// to reach the node currently being read, which caps how far up
// jumpStack a freshly materialized node may serve as a jump target.
func (t *Trie[T]) UnmarshalBinary(data []byte) error {
	if t.size != 0 {
		return ErrCorruptStream
	}

	r := &byteReader{data: data}
	size, err := r.uint64()
	if err != nil {
		return err
	}
	if size == 0 {
		return nil
	}

	d := &deserializer[T]{t: t, r: r}
	root, err := d.readNode(0, 0)
	if err != nil {
		return err
	}

	if size == 1 {
		// Mirrors Add's size==0 branch: the lone root leaf self-references,
		// since it is simultaneously the trie's only leaf and the node
		// that would otherwise "reference" it. readNode already linked it
		// into the leaf list via the general leaf path.
		t.arena.at(root).reference = root
	}

	t.root = root
	t.size = int(size)
	t.assertInvariants()
	return nil
}

type byteReader struct {
	data []byte
	pos  int
}

func (r *byteReader) uint64() (uint64, error) {
	if len(r.data)-r.pos < 8 {
		return 0, ErrCorruptStream
	}
	v := binary.BigEndian.Uint64(r.data[r.pos:])
	r.pos += 8
	return v, nil
}

func (r *byteReader) byte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, ErrCorruptStream
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *byteReader) vector(n int) (bitvec.Vector, error) {
	need := (n + 63) / 64
	if len(r.data)-r.pos < need*8 {
		return bitvec.Vector{}, ErrCorruptStream
	}
	words := make([]uint64, need)
	for i := range words {
		words[i] = binary.BigEndian.Uint64(r.data[r.pos:])
		r.pos += 8
	}
	return bitvec.New(words, n), nil
}

type deserializer[T any] struct {
	t *Trie[T]
	r *byteReader

	leafStack    []nodeIndex
	jumpStack    []nodeIndex
	depthStack   []int
	segmentStack []int
	dirStack     []bool
}

func (d *deserializer[T]) readNode(depth, parentExtentLength int) (nodeIndex, error) {
	flag, err := d.r.byte()
	if err != nil {
		return nilIdx, err
	}
	isInternal := flag == 1

	pathLength, err := d.r.uint64()
	if err != nil {
		return nilIdx, err
	}

	idx := d.t.arena.alloc()
	extentLength := parentExtentLength + int(pathLength)
	nd := d.t.arena.at(idx)
	nd.parentExtentLength = parentExtentLength
	nd.extentLength = extentLength

	if len(d.dirStack) > 0 {
		maxDepthDelta := d.segmentStack[len(d.segmentStack)-1]
		dir := d.dirStack[len(d.dirStack)-1]

		for len(d.jumpStack) > 0 {
			ancIdx := d.jumpStack[len(d.jumpStack)-1]
			anc := d.t.arena.at(ancIdx)
			jumpLength := anc.jumpLength()
			ancDepth := d.depthStack[len(d.depthStack)-1]

			// An empty-extent root has jumpLength 0 and jumps to its
			// children, which the depth-1 case accepts.
			if depth-ancDepth <= maxDepthDelta && (jumpLength > parentExtentLength || depth-ancDepth == 1) && (!isInternal || jumpLength <= extentLength) {
				if dir {
					anc.jumpRight = idx
				} else {
					anc.jumpLeft = idx
				}
				d.jumpStack = d.jumpStack[:len(d.jumpStack)-1]
				d.depthStack = d.depthStack[:len(d.depthStack)-1]
			} else {
				break
			}
		}
	}

	if !isInternal {
		n, err := d.r.uint64()
		if err != nil {
			return nilIdx, err
		}
		v, err := d.r.vector(int(n))
		if err != nil {
			return nilIdx, err
		}
		d.t.arena.at(idx).key = v
		d.leafStack = append(d.leafStack, idx)
		listAddBefore(&d.t.arena, d.t.tail, idx)
		return idx, nil
	}

	d.pushTurn(false)
	d.jumpStack = append(d.jumpStack, idx)
	d.depthStack = append(d.depthStack, depth)
	left, err := d.readNode(depth+1, extentLength)
	if err != nil {
		return nilIdx, err
	}
	d.popTurn()

	d.pushTurn(true)
	d.jumpStack = append(d.jumpStack, idx)
	d.depthStack = append(d.depthStack, depth)
	right, err := d.readNode(depth+1, extentLength)
	if err != nil {
		return nilIdx, err
	}
	d.popTurn()

	refLeaf := d.leafStack[len(d.leafStack)-1]
	d.leafStack = d.leafStack[:len(d.leafStack)-1]

	nd = d.t.arena.at(idx)
	nd.left = left
	nd.right = right
	nd.key = d.t.arena.at(refLeaf).key
	nd.reference = refLeaf
	d.t.arena.at(refLeaf).reference = idx

	d.t.dict.addNew(&d.t.arena, idx, bitvec.Signature(d.t.arena.at(idx).handle()))

	return idx, nil
}

// pushTurn extends the run-length-encoded turn path with direction dir,
// merging into the top segment when the last turn already went the
// same way.
func (d *deserializer[T]) pushTurn(dir bool) {
	if len(d.dirStack) == 0 || d.dirStack[len(d.dirStack)-1] != dir {
		d.segmentStack = append(d.segmentStack, 1)
		d.dirStack = append(d.dirStack, dir)
		return
	}
	d.segmentStack[len(d.segmentStack)-1]++
}

// popTurn undoes the effect of the matching pushTurn after a subtree
// has been fully read.
func (d *deserializer[T]) popTurn() {
	top := d.segmentStack[len(d.segmentStack)-1]
	if top != 1 {
		d.segmentStack[len(d.segmentStack)-1] = top - 1
		return
	}
	d.segmentStack = d.segmentStack[:len(d.segmentStack)-1]
	d.dirStack = d.dirStack[:len(d.dirStack)-1]
}
