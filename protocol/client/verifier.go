// Implements the checks a data user performs on the cloud's answers:
// the verification of search proofs against the trusted root.

package client

import (
	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/hasher"
	"github.com/fchen-group/dynamic-verifiable-data-access/merkletree"
	"github.com/fchen-group/dynamic-verifiable-data-access/protocol"
)

// A Verifier stores the state a data user needs to check the cloud:
// the public parameters of the index and the latest trusted root,
// both obtained from the data owner.
type Verifier struct {
	params *protocol.Params
	hasher hasher.TreeHasher
	root   []byte
}

// New creates a Verifier for the index described by params,
// trusting root as its current root digest.
// It returns an error if params name an unknown hasher.
func New(params *protocol.Params, root []byte) (*Verifier, error) {
	h, err := hasher.Hasher(params.HashID)
	if err != nil {
		return nil, err
	}
	return &Verifier{
		params: params,
		hasher: h,
		root:   append([]byte(nil), root...),
	}, nil
}

// Params returns the public parameters of the index.
func (v *Verifier) Params() *protocol.Params {
	return v.params
}

// Root returns the trusted root digest.
func (v *Verifier) Root() []byte {
	return v.root
}

// SetRoot replaces the trusted root, e.g. after the owner
// has published the root of an update.
func (v *Verifier) SetRoot(root []byte) {
	v.root = append([]byte(nil), root...)
}

// Hasher returns the tree hasher of the index.
func (v *Verifier) Hasher() hasher.TreeHasher {
	return v.hasher
}

// VerifyProof checks proof as the answer to a search of token,
// using only token and the trusted root. It returns nil if every
// check passes, and otherwise the protocol.ErrorCode of the first
// failing check.
func (v *Verifier) VerifyProof(token merkletree.Token, proof *merkletree.Proof) error {
	if proof == nil {
		return protocol.CheckMalformedProof
	}
	err := proof.Verify(v.hasher, token, v.root, v.params.TreeHeight)
	switch err {
	case merkletree.ErrMalformedProof, merkletree.ErrSentinelToken:
		return protocol.CheckMalformedProof
	case merkletree.ErrQueryMismatch:
		return protocol.CheckBadQuery
	case merkletree.ErrIndicesMismatch, merkletree.ErrUnexpectedSlot:
		return protocol.CheckBadProbeSequence
	case merkletree.ErrBadLeafHash:
		return protocol.CheckBadLeaf
	case merkletree.ErrUnequalTreeHashes:
		return protocol.CheckBadAuthPath
	case merkletree.ErrExistenceMismatch:
		return protocol.CheckBadExistenceFlag
	case nil:
		return nil
	default:
		panic("[vfs] Unknown error: " + err.Error())
	}
}

// Verify reports whether proof is a valid answer to a search of token.
// A false result means the cloud is faulty or dishonest.
func (v *Verifier) Verify(token merkletree.Token, proof *merkletree.Proof) bool {
	return v.VerifyProof(token, proof) == nil
}

// VerifySearch checks the cloud's response msg to a SearchRequest
// for token, and returns whether the file exists.
// The error code of msg must agree with the type of the proof.
func (v *Verifier) VerifySearch(token merkletree.Token, msg *protocol.Response) (bool, error) {
	if err := msg.Validate(); err != nil {
		return false, err
	}
	sp, ok := msg.CloudResponse.(*protocol.SearchProof)
	if !ok {
		return false, protocol.ErrMalformedMessage
	}
	proofType := sp.Proof.ProofType()
	switch {
	case msg.Error == protocol.ReqSuccess && proofType == merkletree.ProofOfInclusion:
	case msg.Error == protocol.ReqNotFound && proofType == merkletree.ProofOfAbsence:
	default:
		return false, protocol.ErrMalformedMessage
	}
	if err := v.VerifyProof(token, sp.Proof); err != nil {
		return false, err
	}
	return sp.Proof.Existing, nil
}
