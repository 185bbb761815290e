// Package owner implements the data owner's side of the verifiable file
// index: deriving tokens from filenames, building the dictionary that is
// outsourced to the cloud, and checking the cloud's updates before
// accepting a new root.
//
// After outsourcing, the owner keeps only its PRF key, the public
// parameters, and the latest root. An update response from the cloud
// carries the search proof of the token taken before the update; the
// owner checks it against its root, plans the same single-slot rewrite
// the cloud should have made, and recomputes the new root from the
// rewritten slot's authentication path. The cloud's claimed root is
// never trusted on its own.
package owner

import (
	"bytes"
	"errors"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/hasher"
	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/prf"
	"github.com/fchen-group/dynamic-verifiable-data-access/merkletree"
	"github.com/fchen-group/dynamic-verifiable-data-access/protocol"
	"github.com/fchen-group/dynamic-verifiable-data-access/protocol/client"
)

// ErrNotOutsourced indicates an update checked before
// the owner has outsourced its files.
var ErrNotOutsourced = errors.New("[owner] Files have not been outsourced")

// An Owner holds the secret key of the data owner and,
// once it has outsourced its files, a Verifier trusting
// the latest root.
type Owner struct {
	key    prf.PrivateKey
	hasher hasher.TreeHasher
	*client.Verifier
}

// New creates an Owner keyed with key, hashing its tree with h.
func New(key prf.PrivateKey, h hasher.TreeHasher) *Owner {
	return &Owner{
		key:    key,
		hasher: h,
	}
}

// DeriveQuery returns the token standing for filename.
func (o *Owner) DeriveQuery(filename string) merkletree.Token {
	var t merkletree.Token
	copy(t[:], o.key.Compute([]byte(filename)))
	return t
}

// Outsource derives the tokens of filenames, dropping duplicates,
// and builds the dictionary to hand over to the cloud at the given
// load factor. The owner keeps the root and the public parameters.
func (o *Owner) Outsource(filenames []string, loadFactor float64) (*merkletree.Dictionary, *protocol.Params, error) {
	seen := mapset.NewSet[string]()
	tokens := make([]merkletree.Token, 0, len(filenames))
	for _, name := range filenames {
		if !seen.Add(name) {
			continue
		}
		tokens = append(tokens, o.DeriveQuery(name))
	}
	d, err := merkletree.NewDictionary(o.hasher, tokens, loadFactor)
	if err != nil {
		return nil, nil, err
	}
	params := protocol.NewParams(o.hasher, d.Height())
	v, err := client.New(params, d.Root())
	if err != nil {
		return nil, nil, err
	}
	o.Verifier = v
	return d, params, nil
}

// Outsourced reports whether the owner has outsourced its files.
func (o *Owner) Outsourced() bool {
	return o.Verifier != nil
}

// NewAddRequest returns the request adding the file of token t.
func (o *Owner) NewAddRequest(t merkletree.Token) *protocol.Request {
	return &protocol.Request{
		Type:    protocol.AddType,
		Request: &protocol.AddRequest{Token: t},
	}
}

// NewDeleteRequest returns the request deleting the file of token t.
func (o *Owner) NewDeleteRequest(t merkletree.Token) *protocol.Request {
	return &protocol.Request{
		Type:    protocol.DeleteType,
		Request: &protocol.DeleteRequest{Token: t},
	}
}

// VerifyUpdate checks the cloud's response msg to an add or delete
// request (requestType) for token t, and moves the owner's trusted root
// forward if the cloud applied the update as expected.
//
// The pre-update proof must verify against the current root, and the
// error code must agree with it. A no-op must leave the root unchanged.
// Otherwise the cloud's new root must equal the one recomputed from
// the proof, or VerifyUpdate returns protocol.CheckBadUpdate.
func (o *Owner) VerifyUpdate(requestType int, t merkletree.Token, msg *protocol.Response) error {
	if !o.Outsourced() {
		return ErrNotOutsourced
	}
	if err := msg.Validate(); err != nil {
		return err
	}
	up, ok := msg.CloudResponse.(*protocol.UpdateProof)
	if !ok {
		return protocol.ErrMalformedMessage
	}
	if err := o.VerifyProof(t, up.Proof); err != nil {
		return err
	}

	var mu *merkletree.Mutation
	var err error
	switch requestType {
	case protocol.AddType:
		mu, err = merkletree.PlanAdd(up.Proof)
		if err != nil || (mu == nil) != (msg.Error == protocol.ReqExisted) {
			return protocol.ErrMalformedMessage
		}
	case protocol.DeleteType:
		mu, err = merkletree.PlanDelete(up.Proof)
		if err != nil || (mu == nil) != (msg.Error == protocol.ReqNotFound) {
			return protocol.ErrMalformedMessage
		}
	default:
		return protocol.ErrMalformedMessage
	}

	expected := o.Root()
	if mu != nil {
		expected = mu.Root(o.Hasher())
	}
	if !bytes.Equal(expected, up.Root) {
		return protocol.CheckBadUpdate
	}
	o.SetRoot(expected)
	return nil
}
