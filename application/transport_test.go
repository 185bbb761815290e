package application

import (
	"testing"

	"github.com/fchen-group/dynamic-verifiable-data-access/protocol"
	"github.com/fchen-group/dynamic-verifiable-data-access/protocol/cloud"
)

func TestLoopback(t *testing.T) {
	c := cloud.NewTestCloud(t, files...)
	lb := NewLoopback(c.HandleRequest, nil)

	res, err := lb.Do(protocol.SearchType, &protocol.SearchRequest{Token: token("ab1")})
	if err != nil {
		t.Fatal(err)
	}
	if res.Error != protocol.ReqSuccess {
		t.Error("Expect", protocol.ReqSuccess, "got", res.Error)
	}
	if _, ok := res.CloudResponse.(*protocol.SearchProof); !ok {
		t.Error("Expect a SearchProof")
	}

	res, err = lb.Do(protocol.ParamsType, &protocol.ParamsRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if p, ok := res.CloudResponse.(*protocol.Params); !ok || p.TreeHeight != 4 {
		t.Error("Unexpected params response", res)
	}
}

func TestLoopbackMalformed(t *testing.T) {
	c := cloud.NewTestCloud(t, files...)
	lb := NewLoopback(c.HandleRequest, NewNopLogger())
	res := UnmarshalResponse(protocol.SearchType, lb.serve([]byte("garbage")))
	if res.Error != protocol.ErrMalformedMessage {
		t.Error("Expect", protocol.ErrMalformedMessage, "got", res.Error)
	}
	res, err := lb.Do(protocol.SearchType, &protocol.SearchRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Error != protocol.ErrMalformedMessage {
		t.Error("Expect", protocol.ErrMalformedMessage, "got", res.Error)
	}
}
