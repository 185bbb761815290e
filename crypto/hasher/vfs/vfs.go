// Package vfs provides the SHA-256 tree hasher of the verifiable
// file index. Importing it registers the hasher under VFSHasher.
package vfs

import (
	"github.com/fchen-group/dynamic-verifiable-data-access/crypto"
	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/hasher"
	"github.com/fchen-group/dynamic-verifiable-data-access/utils"
)

func init() {
	hasher.RegisterHasher(VFSHasher, New)
}

// VFSHasher is the identity of the SHA-256 slot hasher.
const VFSHasher = "VFS SHA-256 Hasher"

type vfsHasher struct{}

// New returns an instance of the VFS hasher.
func New() hasher.TreeHasher {
	return &vfsHasher{}
}

func (vh *vfsHasher) Digest(ms ...[]byte) []byte {
	return crypto.Digest(ms...)
}

func (vfsHasher) ID() string {
	return VFSHasher
}

func (vh *vfsHasher) Size() int {
	return crypto.HashSizeByte
}

func (vh *vfsHasher) HashInterior(left, right []byte) []byte {
	return vh.Digest(left, right)
}

func (vh *vfsHasher) HashLeaf(index uint32, token []byte, tombstone bool) []byte {
	return vh.Digest(
		utils.UInt32ToBytes(index),
		token,
		[]byte{utils.BoolToByte(tombstone)},
	)
}
