package smt

import "sync/atomic"

// Metrics accumulates counters for a Tree's lifetime. The zero value is
// ready to use. All fields are safe for concurrent reads via the atomic
// accessors; the tree itself is single-writer.
type Metrics struct {
	updates         atomic.Uint64
	gets            atomic.Uint64
	proofsBuilt     atomic.Uint64
	proofsVerified  atomic.Uint64
	proofsRejected  atomic.Uint64
	storeCorruption atomic.Uint64
}

// Updates returns the number of completed Update calls.
func (m *Metrics) Updates() uint64 { return m.updates.Load() }

// Gets returns the number of completed Get calls.
func (m *Metrics) Gets() uint64 { return m.gets.Load() }

// ProofsBuilt returns the number of MerkleProof calls that succeeded.
func (m *Metrics) ProofsBuilt() uint64 { return m.proofsBuilt.Load() }

// ProofsVerified returns the number of Tree.VerifyProof calls that
// returned true. Direct MerkleProof.Verify calls are not counted.
func (m *Metrics) ProofsVerified() uint64 { return m.proofsVerified.Load() }

// ProofsRejected returns the number of Tree.VerifyProof calls that
// returned false or an error.
func (m *Metrics) ProofsRejected() uint64 { return m.proofsRejected.Load() }

// StoreCorruption returns the number of times a walk detected a
// NodeStore invariant violation.
func (m *Metrics) StoreCorruption() uint64 { return m.storeCorruption.Load() }
