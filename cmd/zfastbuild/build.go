// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/succinct/zfast/internal/bitvec"

	"go.uber.org/zap"

	"github.com/succinct/zfast"
)

// rawTransform builds bit vectors directly from each line's bytes, with no
// length header: the caller is asserting the input lines are themselves
// already prefix-free (e.g. fixed-width keys).
type rawTransform struct{}

func (rawTransform) ToBitVector(s string) bitvec.Vector {
	return bitvec.FromBytes([]byte(s), len(s)*8)
}

func (rawTransform) FromBitVector(v bitvec.Vector) string {
	n := (v.Len() + 7) / 8
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		word := i / 8
		shift := 56 - 8*(i%8)
		b[i] = byte(v.Words()[word] >> uint(shift))
	}
	return string(b)
}

// openInput opens path for reading, or stdin when path is "-", optionally
// unwrapping a gzip stream.
func openInput(path string, gz bool) (io.ReadCloser, error) {
	var f io.ReadCloser
	if path == "-" || path == "" {
		f = io.NopCloser(os.Stdin)
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		f = file
	}

	if !gz {
		return f, nil
	}

	r, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening gzip stream: %w", err)
	}
	return struct {
		io.Reader
		io.Closer
	}{r, f}, nil
}

// buildTrie reads newline-separated strings from r, transforming each
// through tr, and inserts them into a fresh Trie, logging progress every
// logEvery lines.
func buildTrie(log *zap.SugaredLogger, r io.Reader, tr zfast.Transform[string], logEvery int) (*zfast.Trie[string], int, error) {
	t := zfast.New(tr)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n := 0
	dups := 0
	for scanner.Scan() {
		line := scanner.Text()
		if !t.Add(line) {
			dups++
		}
		n++
		if logEvery > 0 && n%logEvery == 0 {
			log.Infow("building", "lines", n, "size", t.Size())
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, n, fmt.Errorf("reading input: %w", err)
	}

	m := t.Metrics()
	log.Infow("build complete",
		"lines", n,
		"size", t.Size(),
		"duplicates", dups,
		"probes", m.Probes,
		"exactRetries", m.ExactRetries,
		"dictResizes", m.DictResizes,
		"nodes", m.Nodes,
	)
	return t, n, nil
}
