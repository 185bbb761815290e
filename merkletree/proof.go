package merkletree

import (
	"bytes"
	"errors"

	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/hasher"
)

var (
	// ErrMalformedProof indicates a proof that does not have the shape
	// of a search result for a tree of the expected height.
	ErrMalformedProof = errors.New("[merkletree] Malformed proof")
	// ErrQueryMismatch indicates a proof for a different token
	// than the one queried.
	ErrQueryMismatch = errors.New("[merkletree] Proof answers a different query")
	// ErrIndicesMismatch indicates that the visited slots do not follow
	// the probe sequence of the queried token.
	ErrIndicesMismatch = errors.New("[merkletree] Visited slots do not follow the probe sequence")
	// ErrUnexpectedSlot indicates that the search stopped too early
	// or went on past a slot where it should have stopped.
	ErrUnexpectedSlot = errors.New("[merkletree] Search did not stop at the right slot")
	// ErrBadLeafHash indicates that a slot record does not hash to
	// the leaf digest of its authentication path.
	ErrBadLeafHash = errors.New("[merkletree] Invalid leaf hash")
	// ErrUnequalTreeHashes indicates an authentication path that does
	// not fold to the trusted root.
	ErrUnequalTreeHashes = errors.New("[merkletree] Unequal tree hashes")
	// ErrExistenceMismatch indicates that the claimed answer does not
	// match the slot the search stopped at.
	ErrExistenceMismatch = errors.New("[merkletree] Existence flag does not match the terminal slot")
)

// AuthenticationPath holds the sibling pairs of a leaf, bottom up,
// and then the root: entries 2l and 2l+1 are the left and right node
// on level l above the leaves, and the last entry is the root.
type AuthenticationPath [][]byte

// Height returns the number of levels covered by ap.
func (ap AuthenticationPath) Height() uint32 {
	return uint32(len(ap) / 2)
}

// Root returns the root the path claims to lead to.
func (ap AuthenticationPath) Root() []byte {
	if len(ap) == 0 {
		return nil
	}
	return ap[len(ap)-1]
}

func (ap AuthenticationPath) wellFormed(height uint32, size int) bool {
	if len(ap) != int(2*height+1) {
		return false
	}
	for _, d := range ap {
		if len(d) != size {
			return false
		}
	}
	return true
}

// Verify checks that leaf sits at index under the trusted root:
// on each level the running digest must be the node at the index's
// side of the pair, and folding all pairs must give the root.
func (ap AuthenticationPath) Verify(h hasher.TreeHasher, index uint32, leaf, root []byte) error {
	height := ap.Height()
	if !ap.wellFormed(height, h.Size()) || uint64(index)>>height != 0 {
		return ErrMalformedProof
	}
	digest := leaf
	pos := index
	for l := uint32(0); l < height; l++ {
		left, right := ap[2*l], ap[2*l+1]
		side := left
		if pos&1 == 1 {
			side = right
		}
		if !bytes.Equal(digest, side) {
			if l == 0 {
				return ErrBadLeafHash
			}
			return ErrUnequalTreeHashes
		}
		digest = h.HashInterior(left, right)
		pos >>= 1
	}
	if !bytes.Equal(digest, ap.Root()) || !bytes.Equal(ap.Root(), root) {
		return ErrUnequalTreeHashes
	}
	return nil
}

// RootWith returns the root the tree would have if the leaf at index
// were replaced by leaf, keeping every other node of ap.
func (ap AuthenticationPath) RootWith(h hasher.TreeHasher, index uint32, leaf []byte) []byte {
	digest := leaf
	pos := index
	for l := uint32(0); l < ap.Height(); l++ {
		left, right := ap[2*l], ap[2*l+1]
		if pos&1 == 0 {
			left = digest
		} else {
			right = digest
		}
		digest = h.HashInterior(left, right)
		pos >>= 1
	}
	return digest
}

// ProofNode is one visited slot of a search together
// with its authentication path.
type ProofNode struct {
	Slot     Slot
	AuthPath AuthenticationPath
}

type ProofType int

const (
	undeterminedProof ProofType = iota
	ProofOfAbsence
	ProofOfInclusion
)

func (t ProofType) String() string {
	switch t {
	case ProofOfAbsence:
		return "absence"
	case ProofOfInclusion:
		return "inclusion"
	default:
		return "undetermined"
	}
}

// Proof is the answer to a search: the queried token, whether it
// was found, and every slot the probe sequence visited, the last one
// being where the search stopped.
type Proof struct {
	QueryToken Token
	Existing   bool
	Visited    []*ProofNode
}

// ProofType returns ProofOfInclusion if the proof claims
// the token is stored, and ProofOfAbsence otherwise.
func (p *Proof) ProofType() ProofType {
	if p.Existing {
		return ProofOfInclusion
	}
	return ProofOfAbsence
}

// Terminal returns the slot the search stopped at,
// or nil if the proof is empty.
func (p *Proof) Terminal() *ProofNode {
	if len(p.Visited) == 0 {
		return nil
	}
	return p.Visited[len(p.Visited)-1]
}

// Verify checks p as the answer to a search of token in a tree of the
// given height whose root is trusted. It recomputes the probe sequence
// from token, checks every visited slot's authentication path against
// root, and checks that the search stopped at the first slot holding
// token or never occupied, or else ran through the whole sequence, and
// that Existing matches where it stopped.
func (p *Proof) Verify(h hasher.TreeHasher, token Token, root []byte, height uint32) error {
	if height < 1 || height > MaxTreeHeight {
		return ErrMalformedProof
	}
	size := uint32(1) << height
	if len(p.Visited) == 0 || len(p.Visited) > maxProbes(size) {
		return ErrMalformedProof
	}
	if token.IsSentinel() {
		return ErrSentinelToken
	}
	if p.QueryToken != token {
		return ErrQueryMismatch
	}

	seq := newProbeSequence(token, size)
	// a walk may only end on a slot that stops the search,
	// or after the whole probe sequence
	full := len(p.Visited) == maxProbes(size)
	var last probeResult
	for i, node := range p.Visited {
		if node == nil || !node.Slot.wellFormed() ||
			!node.AuthPath.wellFormed(height, h.Size()) {
			return ErrMalformedProof
		}
		index, _ := seq.Next()
		if node.Slot.Index != index {
			return ErrIndicesMismatch
		}
		last = node.Slot.probe(token)
		terminal := i == len(p.Visited)-1
		switch {
		case !terminal && last != probeContinue:
			return ErrUnexpectedSlot
		case terminal && last == probeContinue && !full:
			return ErrUnexpectedSlot
		}
		if err := node.AuthPath.Verify(h, index, hashSlot(h, node.Slot), root); err != nil {
			return err
		}
	}

	if p.Existing != (last == probeFound) {
		return ErrExistenceMismatch
	}
	return nil
}
