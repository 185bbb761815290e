package protocol

import (
	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/hasher"
)

// Version is the version of the index protocol.
const Version = "1.0"

// Params is the public description of an outsourced index:
// besides the root, all a data user needs to check the
// cloud's proofs. This includes the protocol version, the
// tree hasher in use, and the height of the tree, which fixes
// the number of slots the probe sequence runs over.
type Params struct {
	Version    string
	HashID     string
	TreeHeight uint32
}

// NewParams returns a new Params for a tree of the given height
// hashed with h.
func NewParams(h hasher.TreeHasher, height uint32) *Params {
	return &Params{
		Version:    Version,
		HashID:     h.ID(),
		TreeHeight: height,
	}
}

// LeafSize returns the number of slots, 2^TreeHeight.
func (p *Params) LeafSize() uint32 {
	return uint32(1) << p.TreeHeight
}
