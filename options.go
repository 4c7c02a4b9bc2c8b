package smt

import (
	"log/slog"

	"github.com/itzmeanjan/sparse-merkle-tree/core"
	"github.com/itzmeanjan/sparse-merkle-tree/store"
)

// Option configures a Tree at construction time.
type Option func(*Tree)

// WithStore sets the backing NodeStore. The default is an empty
// store.Memory.
func WithStore(s store.NodeStore) Option {
	return func(t *Tree) { t.store = s }
}

// WithLogger sets the structured logger used for diagnostic-level tree
// events. The default discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tree) { t.logger = l }
}

// WithMetrics attaches a Metrics instance the tree updates as it runs.
// Without this option the tree keeps no counters at all.
func WithMetrics(m *Metrics) Option {
	return func(t *Tree) { t.metrics = m }
}

// WithRoot seeds the tree with a pre-existing root digest, for resuming
// work against a NodeStore populated by a previous process. The store
// itself is the source of truth for branch nodes; this only sets the
// in-memory root pointer to match.
func WithRoot(root core.Hash256) Option {
	return func(t *Tree) { t.root = root }
}
