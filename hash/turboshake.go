//go:build !noturboshake

package hash

import (
	"golang.org/x/crypto/sha3"

	"github.com/itzmeanjan/sparse-merkle-tree/core"
)

// turboShake128DomainSep is the customization byte for the extendable
// output function. The tree's own domain separation (leaf vs. internal
// tags) happens one layer up in core.Merge/core.LeafHash; this byte
// separates this library's usage of TurboSHAKE128 from unrelated callers
// of the same primitive.
const turboShake128DomainSep = 0x1F

type turboShake128Hasher struct {
	xof sha3.ShakeHash
}

// NewTurboShake128 constructs a core.Hasher backed by TurboSHAKE128,
// truncating the extendable output stream to 32 bytes.
func NewTurboShake128() core.Hasher {
	return &turboShake128Hasher{xof: sha3.NewTurboShake128(turboShake128DomainSep)}
}

func (h *turboShake128Hasher) Write(p []byte) {
	h.xof.Write(p)
}

func (h *turboShake128Hasher) Sum() core.Hash256 {
	var out core.Hash256
	h.xof.Read(out[:])
	return out
}

// TurboShake128Factory is a core.Factory producing fresh TurboSHAKE128
// accumulators.
func TurboShake128Factory() core.Factory {
	return func() core.Hasher { return NewTurboShake128() }
}
