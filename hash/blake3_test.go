//go:build !noblake3

package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/itzmeanjan/sparse-merkle-tree/core"
)

func TestBlake3Deterministic(t *testing.T) {
	f := Blake3Factory()

	a := f.Sum([]byte("hello"))
	b := f.Sum([]byte("hello"))
	assert.Equal(t, a, b)

	c := f.Sum([]byte("world"))
	assert.NotEqual(t, a, c)
}

func TestBlake3NeverZero(t *testing.T) {
	f := Blake3Factory()
	got := f.Sum([]byte{})
	assert.NotEqual(t, core.Zero, got)
}
