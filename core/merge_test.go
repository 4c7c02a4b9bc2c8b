package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fnvHasher is a trivial deterministic Hasher used only to exercise the
// shape of Merge/LeafHash; it is not cryptographic.
type fnvHasher struct {
	buf []byte
}

func (h *fnvHasher) Write(p []byte) { h.buf = append(h.buf, p...) }

func (h *fnvHasher) Sum() Hash256 {
	var out Hash256
	var acc uint64 = 1469598103934665603
	for _, b := range h.buf {
		acc ^= uint64(b)
		acc *= 1099511628211
	}
	for i := 0; i < 32; i++ {
		out[i] = byte(acc >> (uint(i%8) * 8))
	}
	return out
}

func fakeFactory() Factory {
	return func() Hasher { return &fnvHasher{} }
}

func TestMergeZeroAbsorption(t *testing.T) {
	f := fakeFactory()

	assert.True(t, Merge(f, Zero, Zero).IsZero())

	right := Hash256{0x42}
	assert.Equal(t, right, Merge(f, Zero, right))

	left := Hash256{0x24}
	assert.Equal(t, left, Merge(f, left, Zero))
}

func TestMergeNonZeroHashesBothChildren(t *testing.T) {
	f := fakeFactory()

	left := Hash256{0x01}
	right := Hash256{0x02}

	got := Merge(f, left, right)
	want := f.Sum([]byte{internalTag}, left[:], right[:])
	require.Equal(t, want, got)

	// Order matters: merge is not commutative.
	swapped := Merge(f, right, left)
	assert.NotEqual(t, got, swapped)
}

func TestLeafHashBindsKeyAndValue(t *testing.T) {
	f := fakeFactory()

	k1 := Hash256{0x01}
	k2 := Hash256{0x02}
	v := Hash256{0xAA}

	l1 := LeafHash(f, k1, v)
	l2 := LeafHash(f, k2, v)
	assert.NotEqual(t, l1, l2, "distinct keys with the same value must not collide")

	want := f.Sum([]byte{leafTag}, k1[:], v[:])
	assert.Equal(t, want, l1)
}
