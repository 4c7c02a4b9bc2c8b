package smt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itzmeanjan/sparse-merkle-tree/core"
	"github.com/itzmeanjan/sparse-merkle-tree/store"
)

func TestValidateDetectsTamperedBranch(t *testing.T) {
	mem := store.NewMemory()
	tree := New(testFactory(), WithStore(mem))

	k0, k1 := keyFrom(0x00), keyFrom(0x01)
	require.NoError(t, tree.Update(k0, valueFrom(0x01)))
	require.NoError(t, tree.Update(k1, valueFrom(0x02)))
	require.NoError(t, tree.Validate())

	parent := core.NewInternalKey(core.ParentPath(k0, 0), 1)
	branch, ok, err := mem.Get(parent)
	require.NoError(t, err)
	require.True(t, ok)

	tampered := branch
	tampered.Left[0] ^= 0xFF
	require.NoError(t, mem.Insert(parent, tampered))

	assert.ErrorIs(t, tree.Validate(), ErrCorruptedStore)
}

func TestValidateDetectsEmptyBranchLeftBehind(t *testing.T) {
	mem := store.NewMemory()
	tree := New(testFactory(), WithStore(mem))

	k0 := keyFrom(0x00)
	require.NoError(t, tree.Update(k0, valueFrom(0x01)))

	parent := core.NewInternalKey(core.ParentPath(k0, 0), 1)
	require.NoError(t, mem.Insert(parent, core.BranchNode{}))

	assert.ErrorIs(t, tree.Validate(), ErrCorruptedStore)
}
