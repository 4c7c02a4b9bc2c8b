// Package core defines the fundamental data structures of a compacted
// sparse Merkle tree over a 256-bit key space: the digest type, key-path
// bit addressing, internal-node addressing, and the branch-node shape.
//
// All types here are pure computation with no I/O dependencies and no
// knowledge of hashing, storage, or proof construction.
package core
