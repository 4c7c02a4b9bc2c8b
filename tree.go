package smt

import (
	"io"
	"log/slog"

	"github.com/itzmeanjan/sparse-merkle-tree/core"
	"github.com/itzmeanjan/sparse-merkle-tree/store"
)

// Tree is a compacted sparse Merkle tree keyed by 256-bit paths. The zero
// value is not usable; construct with New.
type Tree struct {
	root    core.Hash256
	store   store.NodeStore
	hasher  core.Factory
	logger  *slog.Logger
	metrics *Metrics
}

// New constructs an empty Tree (root == core.Zero) using hasher for every
// leaf and internal digest it computes. hasher is required: this package
// carries no implicit default, so callers reach into the hash package
// (hash.TurboShake128Factory or hash.Blake3Factory, depending on build
// tags) or supply their own core.Factory.
func New(hasher core.Factory, opts ...Option) *Tree {
	t := &Tree{
		hasher: hasher,
		store:  store.NewMemory(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Root returns the current root digest. An empty tree has root
// core.Zero.
func (t *Tree) Root() core.Hash256 {
	return t.root
}

// Update inserts, overwrites, or (with value == core.Zero) deletes the
// leaf at key. It is idempotent: updating a key to the value it already
// holds leaves the root unchanged.
func (t *Tree) Update(key core.Key, value core.Hash256) error {
	leaf := core.LeafHash(t.hasher, key, value)
	if value.IsZero() {
		leaf = core.Zero
	}

	siblings, err := t.collectSiblings(key)
	if err != nil {
		return err
	}

	cur := leaf
	for h := 0; h < 256; h++ {
		bit := key.Bit(h)
		branch := core.BranchNode{}.WithChild(bit, cur).WithChild(1-bit, siblings[h])

		parent := core.NewInternalKey(core.ParentPath(key, h), h+1)
		if branch.IsEmpty() {
			if err := t.store.Remove(parent); err != nil {
				return err
			}
		} else {
			if err := t.store.Insert(parent, branch); err != nil {
				return err
			}
		}
		cur = core.Merge(t.hasher, branch.Left, branch.Right)
	}

	t.root = cur
	if t.metrics != nil {
		t.metrics.updates.Add(1)
	}
	t.logger.Debug("tree update", "key", key, "root", t.root)
	return nil
}

// collectSiblings walks from the root down to height 0, returning the
// sibling digest encountered at every height for key. Heights below the
// first absent parent are left at core.Zero: once a parent is missing
// the remaining subtree holds nothing for any key, so there is nothing
// further to read.
func (t *Tree) collectSiblings(key core.Key) ([256]core.Hash256, error) {
	var siblings [256]core.Hash256
	for h := 255; h >= 0; h-- {
		parent := core.NewInternalKey(core.ParentPath(key, h), h+1)
		branch, ok, err := t.store.Get(parent)
		if err != nil {
			return siblings, err
		}
		if !ok {
			break
		}
		_, sibling := branch.Child(key.Bit(h))
		siblings[h] = sibling
	}
	return siblings, nil
}

// Get returns the leaf digest stored at key, or core.Zero if key has
// never been populated (or was deleted). It returns ErrCorruptedStore if
// the walk finds the store violating the tree's invariants.
func (t *Tree) Get(key core.Key) (core.Hash256, error) {
	if t.metrics != nil {
		t.metrics.gets.Add(1)
	}
	cur := t.root
	for h := 255; h >= 0; h-- {
		if cur.IsZero() {
			return core.Zero, nil
		}
		parent := core.NewInternalKey(core.ParentPath(key, h), h+1)
		branch, ok, err := t.store.Get(parent)
		if err != nil {
			return core.Zero, err
		}
		if !ok {
			// Update stores a branch at every height of a populated
			// path, so a store written only by Update does not reach
			// here with a non-zero digest; cur is returned unchanged.
			return cur, nil
		}
		if !core.Merge(t.hasher, branch.Left, branch.Right).Equal(cur) {
			if t.metrics != nil {
				t.metrics.storeCorruption.Add(1)
			}
			return core.Zero, ErrCorruptedStore
		}
		child, _ := branch.Child(key.Bit(h))
		cur = child
	}
	return cur, nil
}

// Validate walks every branch node reachable from the root and checks
// the tree's structural invariants: every reachable node has at least
// one non-zero child, and merging a node's children reproduces the
// digest its parent (or the root, for the topmost node) actually holds
// for it. It returns ErrCorruptedStore on the first violation found.
func (t *Tree) Validate() error {
	if t.root.IsZero() {
		return nil
	}

	type frame struct {
		prefix core.Hash256
		height int
		digest core.Hash256
	}
	stack := []frame{{prefix: core.Zero, height: 256, digest: t.root}}
	visited := 0

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		key := core.NewInternalKey(f.prefix, f.height)
		branch, ok, err := t.store.Get(key)
		if err != nil {
			return err
		}
		if !ok {
			// f.digest is a terminal leaf digest; nothing further to walk.
			continue
		}
		if branch.IsEmpty() {
			if t.metrics != nil {
				t.metrics.storeCorruption.Add(1)
			}
			return ErrCorruptedStore
		}
		if !core.Merge(t.hasher, branch.Left, branch.Right).Equal(f.digest) {
			if t.metrics != nil {
				t.metrics.storeCorruption.Add(1)
			}
			return ErrCorruptedStore
		}
		visited++

		childHeight := f.height - 1
		if !branch.Left.IsZero() {
			stack = append(stack, frame{prefix: f.prefix, height: childHeight, digest: branch.Left})
		}
		if !branch.Right.IsZero() {
			rightPrefix := f.prefix
			setHighBit(&rightPrefix, childHeight)
			stack = append(stack, frame{prefix: rightPrefix, height: childHeight, digest: branch.Right})
		}
	}

	if counter, ok := t.store.(interface{ Len() int }); ok {
		if counter.Len() != visited {
			return ErrCorruptedStore
		}
	}
	return nil
}

// setHighBit sets the bit selecting the right child at height into
// prefix, used to extend a path-prefix while walking down for Validate.
func setHighBit(prefix *core.Hash256, height int) {
	idx := 255 - height
	byteIdx := idx / 8
	bitIdx := uint(7 - idx%8)
	prefix[byteIdx] |= 1 << bitIdx
}
