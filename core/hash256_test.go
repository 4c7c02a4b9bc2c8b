package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash256IsZero(t *testing.T) {
	var z Hash256
	assert.True(t, z.IsZero())

	nz := z
	nz[31] = 1
	assert.False(t, nz.IsZero())
}

func TestHash256Bit(t *testing.T) {
	var k Key
	k[0] = 0x80 // MSB of byte 0 set

	require.Equal(t, uint8(1), k.Bit(255), "bit at height 255 reads the MSB")
	for h := 0; h < 255; h++ {
		require.Equal(t, uint8(0), k.Bit(h))
	}

	var k2 Key
	k2[31] = 0x01 // LSB of last byte set
	assert.Equal(t, uint8(1), k2.Bit(0), "bit at height 0 reads the LSB")
}

func TestHash256Compare(t *testing.T) {
	a := Hash256{0x00}
	b := Hash256{0x01}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, 0, a.Compare(a))
}

func TestSortHash256(t *testing.T) {
	hs := []Hash256{{0x03}, {0x01}, {0x02}}
	SortHash256(hs)
	assert.Equal(t, []Hash256{{0x01}, {0x02}, {0x03}}, hs)
}
