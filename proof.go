package smt

import "github.com/itzmeanjan/sparse-merkle-tree/core"

// LeafQuery pairs a key with the leaf digest a verifier believes is
// stored there. Verify takes a slice of these rather than (key, value)
// pairs: the leaf encoding binds the value in already, and a verifier
// that only knows a claimed digest (not the preimage) can still check
// it against a proof.
type LeafQuery struct {
	Key  core.Key
	Leaf core.Hash256
}

// MerkleProof authenticates a set of (key, leaf digest) pairs against a
// tree root, without requiring access to the tree or its NodeStore.
//
// LeavesBitmap holds one 256-bit mask per leaf, in the same sorted order
// the leaves were queried in: bit h is set iff the sibling at height h
// for that leaf's lineage is non-zero and was not already supplied by a
// neighboring leaf in the same proof. MerklePath holds those siblings,
// in the order their bitmap bits are encountered during verification's
// bottom-up fold (height 0 upward, left to right within a height).
type MerkleProof struct {
	LeavesBitmap []Bitmap
	MerklePath   []core.Hash256
}

// proofEntry is a node in the bottom-up fold's working set: a subtree
// digest together with the inclusive range, in the sorted leaf list, of
// original leaves it currently represents. Entries with lo == hi are
// still distinct leaf lineages; lo < hi means two or more lineages have
// already merged and move in lockstep from here up.
type proofEntry struct {
	lo, hi int
	digest core.Hash256
}

// MerkleProof builds a MerkleProof for keys against the tree's current
// state. keys need not be sorted or deduplicated; construction does
// both before walking. An empty keys list is only valid against an
// empty tree, matching Verify's handling of the same case.
func (t *Tree) MerkleProof(keys []core.Key) (*MerkleProof, error) {
	if len(keys) == 0 {
		if t.root.IsZero() {
			if t.metrics != nil {
				t.metrics.proofsBuilt.Add(1)
			}
			return &MerkleProof{}, nil
		}
		return nil, ErrEmptyKeys
	}

	sorted := append([]core.Key(nil), keys...)
	core.SortHash256(sorted)
	uniq := sorted[:1]
	for _, k := range sorted[1:] {
		if !k.Equal(uniq[len(uniq)-1]) {
			uniq = append(uniq, k)
		}
	}

	leaves := make([]core.Hash256, len(uniq))
	for i, k := range uniq {
		leaf, err := t.Get(k)
		if err != nil {
			return nil, err
		}
		leaves[i] = leaf
	}

	bitmap := make([]Bitmap, len(uniq))
	entries := make([]proofEntry, len(uniq))
	for i, leaf := range leaves {
		entries[i] = proofEntry{lo: i, hi: i, digest: leaf}
	}

	var path []core.Hash256
	for h := 0; h < 256; h++ {
		next := make([]proofEntry, 0, len(entries))
		for i := 0; i < len(entries); {
			e := entries[i]
			repKey := uniq[e.lo]

			if i+1 < len(entries) {
				other := entries[i+1]
				if core.ParentPath(repKey, h).Equal(core.ParentPath(uniq[other.lo], h)) {
					left, right := orderChildren(repKey, h, e.digest, other.digest)
					next = append(next, proofEntry{lo: e.lo, hi: other.hi, digest: core.Merge(t.hasher, left, right)})
					i += 2
					continue
				}
			}

			parent := core.NewInternalKey(core.ParentPath(repKey, h), h+1)
			branch, ok, err := t.store.Get(parent)
			if err != nil {
				return nil, err
			}
			var sibling core.Hash256
			if ok {
				_, sibling = branch.Child(repKey.Bit(h))
			}
			nonZero := !sibling.IsZero()
			for idx := e.lo; idx <= e.hi; idx++ {
				bitmap[idx].Set(h, nonZero)
			}
			if nonZero {
				path = append(path, sibling)
			}

			left, right := orderChildren(repKey, h, e.digest, sibling)
			next = append(next, proofEntry{lo: e.lo, hi: e.hi, digest: core.Merge(t.hasher, left, right)})
			i++
		}
		entries = next
	}

	if len(entries) != 1 || !entries[0].digest.Equal(t.root) {
		return nil, ErrCorruptedStore
	}

	if t.metrics != nil {
		t.metrics.proofsBuilt.Add(1)
	}
	return &MerkleProof{LeavesBitmap: bitmap, MerklePath: path}, nil
}

// Verify checks whether leaves (sorted ascending by Key, with no
// duplicates) are exactly the leaves p proves against root, using
// hasher for every internal merge. Unlike construction, Verify never
// sorts or deduplicates on the caller's behalf: a proof is only sound
// for the exact ordered input it was built for.
//
// A (false, nil) result means the proof is well-formed but does not
// authenticate these leaves against this root. A non-nil error means
// the proof or input was structurally invalid (wrong shape, unsorted,
// bitmap/path mismatch) and no verification verdict was reached.
func (p *MerkleProof) Verify(hasher core.Factory, root core.Hash256, leaves []LeafQuery) (bool, error) {
	if len(leaves) == 0 {
		if root.IsZero() {
			return true, nil
		}
		return false, ErrEmptyKeys
	}
	for i := 1; i < len(leaves); i++ {
		if !leaves[i-1].Key.Less(leaves[i].Key) {
			return false, ErrNonIncreasingKeys
		}
	}
	if len(p.LeavesBitmap) != len(leaves) {
		return false, ErrCorruptedProof
	}

	entries := make([]proofEntry, len(leaves))
	for i, l := range leaves {
		entries[i] = proofEntry{lo: i, hi: i, digest: l.Leaf}
	}

	pathIdx := 0
	for h := 0; h < 256; h++ {
		next := make([]proofEntry, 0, len(entries))
		for i := 0; i < len(entries); {
			e := entries[i]
			repKey := leaves[e.lo].Key

			bit := p.LeavesBitmap[e.lo].Get(h)
			for idx := e.lo + 1; idx <= e.hi; idx++ {
				if p.LeavesBitmap[idx].Get(h) != bit {
					return false, ErrCorruptedProof
				}
			}

			// Pairing with an adjacent lineage only applies when both
			// sides' bits are zero; a set bit always consumes MerklePath.
			if !bit && i+1 < len(entries) {
				other := entries[i+1]
				otherBit := p.LeavesBitmap[other.lo].Get(h)
				if !otherBit && core.ParentPath(repKey, h).Equal(core.ParentPath(leaves[other.lo].Key, h)) {
					left, right := orderChildren(repKey, h, e.digest, other.digest)
					next = append(next, proofEntry{lo: e.lo, hi: other.hi, digest: core.Merge(hasher, left, right)})
					i += 2
					continue
				}
			}

			var sibling core.Hash256
			if bit {
				if pathIdx >= len(p.MerklePath) {
					return false, ErrCorruptedProof
				}
				sibling = p.MerklePath[pathIdx]
				pathIdx++
				if sibling.IsZero() {
					return false, ErrCorruptedProof
				}
			}

			left, right := orderChildren(repKey, h, e.digest, sibling)
			next = append(next, proofEntry{lo: e.lo, hi: e.hi, digest: core.Merge(hasher, left, right)})
			i++
		}
		entries = next
	}

	if pathIdx != len(p.MerklePath) {
		return false, ErrCorruptedProof
	}
	if len(entries) != 1 {
		return false, ErrCorruptedProof
	}
	return entries[0].digest.Equal(root), nil
}

// VerifyProof checks p against the tree's own hasher and current root,
// recording the outcome in the tree's Metrics (if attached). It is a
// convenience wrapper around p.Verify for callers who still hold a Tree;
// p.Verify itself never touches a Tree, so a proof can be shipped to a
// verifier who only has the root digest and the hasher.
func (t *Tree) VerifyProof(p *MerkleProof, leaves []LeafQuery) (bool, error) {
	ok, err := p.Verify(t.hasher, t.root, leaves)
	if t.metrics != nil {
		if err != nil {
			t.metrics.proofsRejected.Add(1)
		} else if ok {
			t.metrics.proofsVerified.Add(1)
		} else {
			t.metrics.proofsRejected.Add(1)
		}
	}
	return ok, err
}

// orderChildren returns (self, other) arranged as (left, right)
// according to key's bit at height.
func orderChildren(key core.Key, height int, self, other core.Hash256) (left, right core.Hash256) {
	if key.Bit(height) == 0 {
		return self, other
	}
	return other, self
}
