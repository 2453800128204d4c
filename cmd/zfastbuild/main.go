// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command zfastbuild builds a z-fast trie from a newline-separated list of
// strings and writes its serialized form to a file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/succinct/zfast"
)

func main() {
	var (
		input    string
		output   string
		gz       bool
		encoding string
		logEvery int
	)

	root := &cobra.Command{
		Use:   "zfastbuild",
		Short: "Build a serialized z-fast trie from a newline-separated string list",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck
			log := logger.Sugar()

			tr, err := transformFor(encoding)
			if err != nil {
				return err
			}

			in, err := openInput(input, gz)
			if err != nil {
				return err
			}
			defer in.Close()

			t, _, err := buildTrie(log, in, tr, logEvery)
			if err != nil {
				return err
			}

			data, err := t.MarshalBinary()
			if err != nil {
				return fmt.Errorf("serializing trie: %w", err)
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}

			log.Infow("wrote serialized trie", "path", output, "bytes", len(data))
			return nil
		},
	}

	root.Flags().StringVarP(&input, "input", "i", "-", "input file, or - for stdin")
	root.Flags().StringVarP(&output, "output", "o", "trie.bin", "output file for the serialized trie")
	root.Flags().BoolVarP(&gz, "gzip", "z", false, "input is gzip-compressed")
	root.Flags().StringVarP(&encoding, "encoding", "e", "utf16", "key encoding: iso-8859-1, utf16, or raw")
	root.Flags().IntVar(&logEvery, "log-every", 100000, "log build progress every N lines (0 disables)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func transformFor(encoding string) (zfast.Transform[string], error) {
	switch encoding {
	case "iso-8859-1", "iso88591", "latin1":
		return iso88591{}, nil
	case "utf16", "utf-16":
		return utf16{}, nil
	case "raw":
		return rawTransform{}, nil
	default:
		return nil, fmt.Errorf("unknown encoding %q: want iso-8859-1, utf16, or raw", encoding)
	}
}
