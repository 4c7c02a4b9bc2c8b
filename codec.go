package smt

import (
	"encoding/binary"
	"fmt"

	"github.com/itzmeanjan/sparse-merkle-tree/core"
)

// Wire format:
//
//	leaves_count uint32 big-endian
//	leaves_count * 32-byte bitmap, one per leaf, in sorted order
//	path_len     uint32 big-endian
//	path_len * 32-byte digest
//
// All multi-byte integers are big-endian, matching encoding/binary's
// BigEndian throughout this package.
const uint32Size = 4

// MarshalBinary implements encoding.BinaryMarshaler.
func (p *MerkleProof) MarshalBinary() ([]byte, error) {
	size := uint32Size + len(p.LeavesBitmap)*32 + uint32Size + len(p.MerklePath)*32
	buf := make([]byte, size)

	off := 0
	binary.BigEndian.PutUint32(buf[off:], uint32(len(p.LeavesBitmap)))
	off += uint32Size
	for _, bm := range p.LeavesBitmap {
		copy(buf[off:], bm[:])
		off += 32
	}

	binary.BigEndian.PutUint32(buf[off:], uint32(len(p.MerklePath)))
	off += uint32Size
	for _, h := range p.MerklePath {
		copy(buf[off:], h[:])
		off += 32
	}

	return buf, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It validates
// only the wire shape (declared lengths match the bytes actually
// present); it does not validate that the decoded proof is internally
// consistent or sound against any particular root — Verify does that.
func (p *MerkleProof) UnmarshalBinary(data []byte) error {
	if len(data) < uint32Size {
		return fmt.Errorf("smt: proof truncated before leaves_count: %w", ErrCorruptedProof)
	}
	off := 0
	leavesCount := binary.BigEndian.Uint32(data[off:])
	off += uint32Size

	needed := int(leavesCount) * 32
	if len(data[off:]) < needed {
		return fmt.Errorf("smt: proof truncated in leaves bitmap: %w", ErrCorruptedProof)
	}
	bitmap := make([]Bitmap, leavesCount)
	for i := range bitmap {
		copy(bitmap[i][:], data[off:off+32])
		off += 32
	}

	if len(data[off:]) < uint32Size {
		return fmt.Errorf("smt: proof truncated before path_len: %w", ErrCorruptedProof)
	}
	pathLen := binary.BigEndian.Uint32(data[off:])
	off += uint32Size

	needed = int(pathLen) * 32
	if len(data[off:]) != needed {
		return fmt.Errorf("smt: proof has trailing or missing path bytes: %w", ErrCorruptedProof)
	}
	path := make([]core.Hash256, pathLen)
	for i := range path {
		copy(path[i][:], data[off:off+32])
		off += 32
	}

	p.LeavesBitmap = bitmap
	p.MerklePath = path
	return nil
}
