// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zfast

import "errors"

// ErrUnsupported is returned by Remove: the trie does not support
// deletion. It has no iteration or sorted-set view methods at all.
var ErrUnsupported = errors.New("zfast: unsupported operation")

// ErrCorruptStream is returned by Unmarshal when the serialized form is
// malformed or truncated.
var ErrCorruptStream = errors.New("zfast: corrupt serialized trie")
