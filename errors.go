package smt

import "errors"

// Sentinel errors forming the error taxonomy surfaced across operations.
// Callers should compare with errors.Is; storage-backend errors are
// returned as the NodeStore produced them and keep their own kind.
var (
	// ErrEmptyKeys is returned by proof construction when the caller
	// passes an empty key list against a non-empty root, and by
	// verification when the leaf list is empty against a non-empty root.
	ErrEmptyKeys = errors.New("smt: empty key list")

	// ErrNonIncreasingKeys is returned by Verify when its leaf list is
	// not strictly increasing in byte-lexicographic order: either it
	// contains a duplicate key, or it is not sorted. The deterministic
	// order is part of the wire contract, so Verify never sorts or
	// dedupes on the caller's behalf. Tree.MerkleProof, by contrast,
	// sorts and dedupes its query keys itself and does not return this.
	ErrNonIncreasingKeys = errors.New("smt: keys not sorted and deduplicated")

	// ErrCorruptedProof is returned when a MerkleProof's bitmap and path
	// are inconsistent during verification: the path is exhausted before
	// the bitmap says it should be, or bytes remain unconsumed at the end.
	ErrCorruptedProof = errors.New("smt: corrupted proof")

	// ErrCorruptedStore is returned when a branch node read during a walk
	// violates the tree's invariants (e.g. merge(L, R) would be zero but
	// the store claims the parent's digest is otherwise). This indicates
	// a bug in the caller's NodeStore or tampered storage, not a bug in
	// this package's algorithmics.
	ErrCorruptedStore = errors.New("smt: corrupted store")
)
