package application

import (
	"encoding/json"
	"testing"

	"github.com/fchen-group/dynamic-verifiable-data-access/merkletree"
	"github.com/fchen-group/dynamic-verifiable-data-access/protocol"
	"github.com/fchen-group/dynamic-verifiable-data-access/protocol/client"
	"github.com/fchen-group/dynamic-verifiable-data-access/protocol/cloud"
	"github.com/google/go-cmp/cmp"
)

var files = []string{"a", "aaa", "ab1", "b23", "c"}

func token(name string) merkletree.Token {
	return merkletree.StaticTokens(name)[0]
}

func TestUnmarshalErrorResponse(t *testing.T) {
	errResponse := protocol.NewErrorResponse(protocol.ErrMalformedMessage)
	msg, err := json.Marshal(errResponse)
	if err != nil {
		t.Fatal(err)
	}
	res := UnmarshalResponse(protocol.SearchType, msg)
	if res.Error != protocol.ErrMalformedMessage {
		t.Error("Expect error", protocol.ErrMalformedMessage,
			"got", res.Error)
	}
}

func TestUnmarshalMalformedErrorResponse(t *testing.T) {
	errResponse := protocol.NewErrorResponse(protocol.ReqNotFound)
	msg, err := json.Marshal(errResponse)
	if err != nil {
		t.Fatal(err)
	}
	res := UnmarshalResponse(protocol.SearchType, msg)
	if res.Error != protocol.ErrMalformedMessage {
		t.Error("Expect error", protocol.ErrMalformedMessage,
			"got", res.Error)
	}
}

func TestUnmarshalGarbage(t *testing.T) {
	res := UnmarshalResponse(protocol.SearchType, []byte("{not json"))
	if res.Error != protocol.ErrMalformedMessage {
		t.Error("Expect error", protocol.ErrMalformedMessage, "got", res.Error)
	}
	if _, err := UnmarshalRequest([]byte(`{"Type":42,"Request":{}}`)); err != protocol.ErrMalformedMessage {
		t.Error("Expect error", protocol.ErrMalformedMessage, "got", err)
	}
}

func TestRequestRoundTrip(t *testing.T) {
	msg, err := MarshalRequest(protocol.DeleteType, &protocol.DeleteRequest{Token: token("a")})
	if err != nil {
		t.Fatal(err)
	}
	req, err := UnmarshalRequest(msg)
	if err != nil {
		t.Fatal(err)
	}
	del, ok := req.Request.(*protocol.DeleteRequest)
	if req.Type != protocol.DeleteType || !ok {
		t.Fatal("Unexpected request", req)
	}
	if del.Token != token("a") {
		t.Error("Token changed in transit")
	}
}

func TestUnmarshalSearchProof(t *testing.T) {
	c := cloud.NewTestCloud(t, files...)
	v, err := client.New(c.Params(), c.Root())
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"aaa", "zzz"} {
		res, _ := c.Search(&protocol.SearchRequest{Token: token(name)})
		msg, err := MarshalResponse(res)
		if err != nil {
			t.Fatal(err)
		}
		decoded := UnmarshalResponse(protocol.SearchType, msg)
		if diff := cmp.Diff(res, decoded); diff != "" {
			t.Error("Response changed in transit (-sent +received):\n", diff)
		}
		if _, err := v.VerifySearch(token(name), decoded); err != nil {
			t.Error("Decoded proof of", name, "does not verify:", err)
		}
	}
}

func TestUnmarshalUpdateAndParams(t *testing.T) {
	c := cloud.NewTestCloud(t, files...)
	res, _ := c.Add(&protocol.AddRequest{Token: token("new")})
	msg, _ := MarshalResponse(res)
	decoded := UnmarshalResponse(protocol.AddType, msg)
	if diff := cmp.Diff(res, decoded); diff != "" {
		t.Error("Response changed in transit (-sent +received):\n", diff)
	}

	res, _ = protocol.NewParamsResponse(c.Params())
	msg, _ = MarshalResponse(res)
	decoded = UnmarshalResponse(protocol.ParamsType, msg)
	if diff := cmp.Diff(res, decoded); diff != "" {
		t.Error("Response changed in transit (-sent +received):\n", diff)
	}
}

func TestUnmarshalResponseUnknownType(t *testing.T) {
	msg, err := MarshalResponse(&protocol.Response{
		Error:         protocol.ReqSuccess,
		CloudResponse: &protocol.SearchProof{},
	})
	if err != nil {
		t.Fatal(err)
	}
	res := UnmarshalResponse(42, msg)
	if res.Error != protocol.ErrMalformedMessage {
		t.Error("Expect error", protocol.ErrMalformedMessage, "got", res.Error)
	}
}
