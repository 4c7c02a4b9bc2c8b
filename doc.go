// Package smt implements a compacted sparse Merkle tree (CSMT) over a
// 256-bit key space with a configurable cryptographic hash. The tree
// authenticates a mapping from 256-bit keys to 256-bit values and
// produces compact inclusion proofs for one or many leaves at once.
//
// Chains of single-sibling internal nodes collapse under the merge rule
// (merge(x, 0) = x): an empty sibling never costs a hash call, and a run
// of empty siblings contributes nothing to a proof's path or bitmap.
// Leaves are encoded as H(0x00||key||value) rather than a raw value
// hash, which is what keeps the root unique under that zero-absorbing
// merge rule.
//
// Example:
//
//	hasher := hash.TurboShake128Factory()
//	tree := smt.New(hasher)
//	tree.Update(key, value)
//	leaf, _ := tree.Get(key)
//	proof, err := tree.MerkleProof([]core.Key{key})
//	ok, err := proof.Verify(hasher, tree.Root(), []smt.LeafQuery{{Key: key, Leaf: leaf}})
package smt
