package core

// InternalKey addresses an internal (non-leaf) subtree root: the
// path-prefix from the root to that subtree, plus the height of the
// subtree root. Height ranges from 1 (the parent of a height-0 leaf
// position) to 256 (the parent of the topmost, height-255, position,
// immediately below the root). At height h only the top 256-h bits of
// Prefix are semantically meaningful; the bottom h bits must be zero.
// NewInternalKey enforces that masking so InternalKey is safe to use as
// a map key directly.
type InternalKey struct {
	Prefix Hash256
	Height int
}

// NewInternalKey builds an InternalKey, masking prefix down to its
// canonical form at height.
func NewInternalKey(prefix Hash256, height int) InternalKey {
	return InternalKey{Prefix: clearBelow(prefix, height), Height: height}
}

// Equal reports whether two InternalKeys address the same subtree.
func (k InternalKey) Equal(other InternalKey) bool {
	return k.Height == other.Height && k.Prefix.Equal(other.Prefix)
}
