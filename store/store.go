package store

import "github.com/itzmeanjan/sparse-merkle-tree/core"

// NodeStore is an abstract mapping from InternalKey to BranchNode.
//
// Get on a missing key returns (core.BranchNode{}, false, nil); the ok
// result lets callers tell a missing entry apart from a stored branch,
// including a stored (zero, zero) branch. Insert and Remove are
// otherwise infallible from the tree engine's perspective — the error
// return exists solely to let storage-layer I/O errors (disk, network)
// propagate unchanged.
type NodeStore interface {
	Get(key core.InternalKey) (core.BranchNode, bool, error)
	Insert(key core.InternalKey, node core.BranchNode) error
	Remove(key core.InternalKey) error
}
