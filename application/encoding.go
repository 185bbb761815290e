// Defines methods/functions to encode/decode messages between the
// parties. Currently this module supports JSON marshal/unmarshal only.

package application

import (
	"encoding/json"

	"github.com/fchen-group/dynamic-verifiable-data-access/protocol"
)

// MarshalRequest returns a JSON encoding of the client's request.
func MarshalRequest(reqType int, request interface{}) ([]byte, error) {
	return json.Marshal(&protocol.Request{
		Type:    reqType,
		Request: request,
	})
}

// UnmarshalRequest parses a JSON-encoded request msg and
// creates the corresponding protocol.Request, which will be handled
// by the cloud.
func UnmarshalRequest(msg []byte) (*protocol.Request, error) {
	var content json.RawMessage
	req := protocol.Request{
		Request: &content,
	}
	if err := json.Unmarshal(msg, &req); err != nil {
		return nil, err
	}
	var request interface{}
	switch req.Type {
	case protocol.SearchType:
		request = new(protocol.SearchRequest)
	case protocol.AddType:
		request = new(protocol.AddRequest)
	case protocol.DeleteType:
		request = new(protocol.DeleteRequest)
	case protocol.ParamsType:
		request = new(protocol.ParamsRequest)
	default:
		return nil, protocol.ErrMalformedMessage
	}
	if err := json.Unmarshal(content, request); err != nil {
		return nil, err
	}
	req.Request = request
	return &req, nil
}

// MarshalResponse returns a JSON encoding of the cloud's response.
func MarshalResponse(response *protocol.Response) ([]byte, error) {
	return json.Marshal(response)
}

// UnmarshalResponse decodes the given message into a protocol.Response
// according to the given request type t. The request types are integer
// constants defined in the protocol package.
func UnmarshalResponse(t int, msg []byte) *protocol.Response {
	type Response struct {
		Error         protocol.ErrorCode
		CloudResponse json.RawMessage
	}
	var res Response
	if err := json.Unmarshal(msg, &res); err != nil {
		return malformedResponse()
	}

	// CloudResponse is omitempty for the places
	// where Error is in Errors
	if res.CloudResponse == nil || string(res.CloudResponse) == "null" {
		if !protocol.Errors[res.Error] {
			return malformedResponse()
		}
		return protocol.NewErrorResponse(res.Error)
	}

	var response interface{}
	switch t {
	case protocol.SearchType:
		response = new(protocol.SearchProof)
	case protocol.AddType, protocol.DeleteType:
		response = new(protocol.UpdateProof)
	case protocol.ParamsType:
		response = new(protocol.Params)
	default:
		return malformedResponse()
	}
	if err := json.Unmarshal(res.CloudResponse, response); err != nil {
		return malformedResponse()
	}
	return &protocol.Response{
		Error:         res.Error,
		CloudResponse: response,
	}
}

func malformedResponse() *protocol.Response {
	return protocol.NewErrorResponse(protocol.ErrMalformedMessage)
}
