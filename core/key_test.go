package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParentPathClearsBottomBits(t *testing.T) {
	var key Key
	key[31] = 0xFF // every bit at heights 0..7 set

	parent := ParentPath(key, 3) // clears heights 0..3
	for h := 0; h <= 3; h++ {
		assert.Equal(t, uint8(0), parent.Bit(h), "height %d must be cleared", h)
	}
	for h := 4; h < 8; h++ {
		assert.Equal(t, key.Bit(h), parent.Bit(h), "height %d must be preserved", h)
	}
}

func TestSiblingPathFlipsOneBit(t *testing.T) {
	var key Key
	sib := SiblingPath(key, 10)

	assert.Equal(t, uint8(1), sib.Bit(10), "sibling flips the bit at the given height")
	for h := 0; h < 10; h++ {
		assert.Equal(t, uint8(0), sib.Bit(h), "bits below height must be cleared")
	}
}

func TestSiblingOfSiblingIsOriginalPrefix(t *testing.T) {
	var key Key
	key[0] = 0x80
	s1 := SiblingPath(key, 255)
	s2 := SiblingPath(s1, 255)
	assert.Equal(t, ParentPath(key, 254), s2)
}
