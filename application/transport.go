package application

import (
	"github.com/fchen-group/dynamic-verifiable-data-access/protocol"
)

// A Handler processes a decoded request and returns the response
// to send back.
type Handler func(req *protocol.Request) *protocol.Response

// Loopback delivers requests to an in-process Handler in their JSON
// wire encoding, and decodes the responses the same way a remote
// client would. It stands in for a network transport.
type Loopback struct {
	handler Handler
	logger  *Logger
}

// NewLoopback returns a Loopback serving requests with handler.
// Error responses are logged to logger.
func NewLoopback(handler Handler, logger *Logger) *Loopback {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Loopback{
		handler: handler,
		logger:  logger,
	}
}

// Do encodes request of type reqType, hands it to the handler, and
// decodes the handler's response.
// It returns an error only if the request cannot be encoded.
func (lb *Loopback) Do(reqType int, request interface{}) (*protocol.Response, error) {
	msg, err := MarshalRequest(reqType, request)
	if err != nil {
		return nil, err
	}
	return UnmarshalResponse(reqType, lb.serve(msg)), nil
}

// serve handles a single encoded request msg
// and returns the encoded response.
func (lb *Loopback) serve(msg []byte) []byte {
	var response *protocol.Response
	req, err := UnmarshalRequest(msg)
	if err != nil {
		lb.logger.Error("Cannot decode request", "error", err.Error())
		response = protocol.NewErrorResponse(protocol.ErrMalformedMessage)
	} else {
		response = lb.handler(req)
		if protocol.Errors[response.Error] {
			lb.logger.Warn(response.Error.Error(), "request type", req.Type)
		}
	}

	res, e := MarshalResponse(response)
	if e != nil {
		panic(e)
	}
	return res
}
