// This module implements the cloud side of the verifiable file index:
// the untrusted storage provider that holds the outsourced dictionary
// and answers search and update requests with proofs.

package cloud

import (
	"github.com/fchen-group/dynamic-verifiable-data-access/merkletree"
	"github.com/fchen-group/dynamic-verifiable-data-access/protocol"
)

// A Cloud holds the dictionary outsourced by a data owner
// and its public parameters.
type Cloud struct {
	dict   *merkletree.Dictionary
	params *protocol.Params
}

// New constructs a new Cloud serving the given dictionary.
// params are the public parameters the owner published
// along with it.
func New(dict *merkletree.Dictionary, params *protocol.Params) *Cloud {
	return &Cloud{
		dict:   dict,
		params: params,
	}
}

// Params returns the public parameters of the index.
func (c *Cloud) Params() *protocol.Params {
	return c.params
}

// Root returns the cloud's current root digest.
func (c *Cloud) Root() []byte {
	return c.dict.Root()
}

// Dictionary returns the underlying dictionary.
func (c *Cloud) Dictionary() *merkletree.Dictionary {
	return c.dict
}

// Search answers a SearchRequest req with a proof of the probe walk
// of the requested token, and returns a tuple of the form
// (response, error).
// The response (which also includes the error code) is supposed to
// be sent back to the client. The returned error is used by the cloud
// for logging purposes.
//
// A request with the sentinel token is considered malformed.
func (c *Cloud) Search(req *protocol.SearchRequest) (*protocol.Response, protocol.ErrorCode) {
	if req == nil {
		return malformed()
	}
	p, err := c.dict.Search(req.Token)
	if err != nil {
		return errorResponse(err)
	}
	return protocol.NewSearchProof(p)
}

// Add answers an AddRequest req. It stores the requested token unless
// it is already stored, and returns the search proof taken before the
// update together with the new root.
// The error code is ReqExisted if the token was already stored.
func (c *Cloud) Add(req *protocol.AddRequest) (*protocol.Response, protocol.ErrorCode) {
	if req == nil {
		return malformed()
	}
	u, err := c.dict.Add(req.Token)
	if err != nil {
		return errorResponse(err)
	}
	e := protocol.ReqSuccess
	if u.Mutation == nil {
		e = protocol.ReqExisted
	}
	return protocol.NewUpdateProof(u.Proof, u.Root, e)
}

// Delete answers a DeleteRequest req. It tombstones the slot of the
// requested token if the token is stored, and returns the search proof
// taken before the update together with the new root.
// The error code is ReqNotFound if the token was not stored.
func (c *Cloud) Delete(req *protocol.DeleteRequest) (*protocol.Response, protocol.ErrorCode) {
	if req == nil {
		return malformed()
	}
	u, err := c.dict.Delete(req.Token)
	if err != nil {
		return errorResponse(err)
	}
	e := protocol.ReqSuccess
	if u.Mutation == nil {
		e = protocol.ReqNotFound
	}
	return protocol.NewUpdateProof(u.Proof, u.Root, e)
}

// HandleRequest dispatches req to the operation of its type.
func (c *Cloud) HandleRequest(req *protocol.Request) *protocol.Response {
	var res *protocol.Response
	switch req.Type {
	case protocol.SearchType:
		msg, _ := req.Request.(*protocol.SearchRequest)
		res, _ = c.Search(msg)
	case protocol.AddType:
		msg, _ := req.Request.(*protocol.AddRequest)
		res, _ = c.Add(msg)
	case protocol.DeleteType:
		msg, _ := req.Request.(*protocol.DeleteRequest)
		res, _ = c.Delete(msg)
	case protocol.ParamsType:
		res, _ = protocol.NewParamsResponse(c.params)
	default:
		res, _ = malformed()
	}
	return res
}

func malformed() (*protocol.Response, protocol.ErrorCode) {
	return protocol.NewErrorResponse(protocol.ErrMalformedMessage),
		protocol.ErrMalformedMessage
}

func errorResponse(err error) (*protocol.Response, protocol.ErrorCode) {
	e := protocol.ErrCloud
	switch err {
	case merkletree.ErrSentinelToken:
		e = protocol.ErrMalformedMessage
	case merkletree.ErrCapacityExhausted:
		e = protocol.ErrCapacityExhausted
	}
	return protocol.NewErrorResponse(e), e
}
