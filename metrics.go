// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package zfast

// Metrics is a snapshot of the lightweight counters a Trie accumulates
// over its lifetime: how many handle-dictionary probes were spent, how
// often a fast-mode search had to be retried in exact mode, and how many
// times the handle dictionary doubled. None of these affect behavior;
// they exist so cmd/zfastbuild can log build progress, mirroring the
// node/resize counters bart's Table exposes via its own Stats call.
type Metrics struct {
	Probes       int64
	ExactRetries int64
	DictResizes  int64
	Nodes        int64
}

// Metrics returns a snapshot of the trie's running counters.
func (t *Trie[T]) Metrics() Metrics {
	probes, resizes := t.dict.Stats()
	return Metrics{
		Probes:       probes,
		ExactRetries: t.exactRetries.Load(),
		DictResizes:  resizes,
		Nodes:        t.arena.Stats(),
	}
}
