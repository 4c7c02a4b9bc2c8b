//go:build !noblake3

package hash

import (
	"github.com/zeebo/blake3"

	"github.com/itzmeanjan/sparse-merkle-tree/core"
)

type blake3Hasher struct {
	h *blake3.Hasher
}

// NewBlake3 constructs a core.Hasher backed by BLAKE3-256.
func NewBlake3() core.Hasher {
	return &blake3Hasher{h: blake3.New()}
}

func (h *blake3Hasher) Write(p []byte) {
	// blake3.Hasher.Write never returns an error.
	_, _ = h.h.Write(p)
}

func (h *blake3Hasher) Sum() core.Hash256 {
	var out core.Hash256
	sum := h.h.Sum(nil)
	copy(out[:], sum)
	return out
}

// Blake3Factory is a core.Factory producing fresh BLAKE3-256 accumulators.
func Blake3Factory() core.Factory {
	return func() core.Hasher { return NewBlake3() }
}
