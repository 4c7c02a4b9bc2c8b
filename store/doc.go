// Package store defines the node-store capability the tree engine relies
// on to persist BranchNode records, plus an in-memory reference
// implementation. A node store is a capability handle (an interface),
// not a base type to extend — alternative backends (disk, LSM) implement
// the same small interface.
package store
