package store

import "github.com/itzmeanjan/sparse-merkle-tree/core"

// Memory is a reference NodeStore backed by a Go map. It is not safe for
// concurrent use: the tree engine is single-writer, and Memory provides
// no internal synchronization of its own, matching that contract.
type Memory struct {
	nodes map[core.InternalKey]core.BranchNode
}

// NewMemory constructs an empty in-memory node store.
func NewMemory() *Memory {
	return &Memory{nodes: make(map[core.InternalKey]core.BranchNode)}
}

// Get implements NodeStore.
func (m *Memory) Get(key core.InternalKey) (core.BranchNode, bool, error) {
	node, ok := m.nodes[key]
	return node, ok, nil
}

// Insert implements NodeStore.
func (m *Memory) Insert(key core.InternalKey, node core.BranchNode) error {
	m.nodes[key] = node
	return nil
}

// Remove implements NodeStore.
func (m *Memory) Remove(key core.InternalKey) error {
	delete(m.nodes, key)
	return nil
}

// Len returns the number of stored branch nodes, mainly useful for tests
// asserting on compaction (spec's testable property 7: no store entries
// for fully-empty subtrees).
func (m *Memory) Len() int {
	return len(m.nodes)
}
