// Defines the message format of the index protocols
// and constructors for the response messages for each
// protocol.

package protocol

import "github.com/fchen-group/dynamic-verifiable-data-access/merkletree"

// The types of requests clients send to the cloud.
const (
	SearchType = iota
	AddType
	DeleteType
	ParamsType
)

// A Request message defines the data a client must send to the cloud
// for a particular request.
type Request struct {
	Type    int
	Request interface{}
}

// A SearchRequest is a message with the token of a filename that a data
// user sends to the cloud to learn whether the file exists.
//
// The response to a successful request is a SearchProof, with ReqSuccess
// if the file exists and ReqNotFound otherwise.
type SearchRequest struct {
	Token merkletree.Token
}

// An AddRequest is a message with the token of a filename that the data
// owner sends to the cloud to add the file to the index.
//
// The response to a successful request is an UpdateProof, with ReqSuccess
// if the file was added and ReqExisted if it was already there.
type AddRequest struct {
	Token merkletree.Token
}

// A DeleteRequest is a message with the token of a filename that the
// data owner sends to the cloud to remove the file from the index.
//
// The response to a successful request is an UpdateProof, with ReqSuccess
// if the file was removed and ReqNotFound if it was not there.
type DeleteRequest struct {
	Token merkletree.Token
}

// A ParamsRequest asks the cloud for the public parameters
// of the index it holds.
type ParamsRequest struct{}

// A Response message indicates the result of a client request
// along with the cloud's answer, if any.
type Response struct {
	Error         ErrorCode
	CloudResponse `json:",omitempty"`
}

// A CloudResponse is a message that includes cryptographic proofs
// about the index that the cloud sends back to a client.
// It is either a SearchProof, an UpdateProof or a Params.
type CloudResponse interface{}

// A SearchProof is the answer to a SearchRequest.
type SearchProof struct {
	Proof *merkletree.Proof
}

// An UpdateProof is the answer to an AddRequest or a DeleteRequest:
// the search proof of the token before the update, and the root of
// the tree after it. The owner plans the same update from the proof
// and checks that it leads to the same root.
type UpdateProof struct {
	Proof *merkletree.Proof
	Root  []byte
}

// NewErrorResponse creates a new response message indicating the error
// that occurred while a client request was being processed.
func NewErrorResponse(e ErrorCode) *Response {
	return &Response{Error: e}
}

// NewSearchProof creates the response message to a SearchRequest
// from the search proof p.
// The returned error code is ReqSuccess if p proves the inclusion
// of the token, and ReqNotFound otherwise.
func NewSearchProof(p *merkletree.Proof) (*Response, ErrorCode) {
	e := ReqSuccess
	if p.ProofType() == merkletree.ProofOfAbsence {
		e = ReqNotFound
	}
	return &Response{
		Error:         e,
		CloudResponse: &SearchProof{Proof: p},
	}, e
}

// NewUpdateProof creates the response message to an AddRequest or
// a DeleteRequest with the given error code e.
func NewUpdateProof(p *merkletree.Proof, root []byte, e ErrorCode) (*Response, ErrorCode) {
	return &Response{
		Error: e,
		CloudResponse: &UpdateProof{
			Proof: p,
			Root:  root,
		},
	}, e
}

// NewParamsResponse creates the response message to a ParamsRequest.
func NewParamsResponse(params *Params) (*Response, ErrorCode) {
	return &Response{
		Error:         ReqSuccess,
		CloudResponse: params,
	}, ReqSuccess
}

// Validate returns the error code of msg if it reports an error,
// ErrMalformedMessage if its content is missing or incomplete,
// and nil otherwise.
func (msg *Response) Validate() error {
	if Errors[msg.Error] {
		return msg.Error
	}
	switch cr := msg.CloudResponse.(type) {
	case *SearchProof:
		if cr.Proof == nil || len(cr.Proof.Visited) == 0 {
			return ErrMalformedMessage
		}
		return nil
	case *UpdateProof:
		if cr.Proof == nil || len(cr.Proof.Visited) == 0 || len(cr.Root) == 0 {
			return ErrMalformedMessage
		}
		return nil
	case *Params:
		if cr.TreeHeight == 0 || cr.HashID == "" {
			return ErrMalformedMessage
		}
		return nil
	}
	// msg.CloudResponse is nil or of an unknown type
	return ErrMalformedMessage
}
