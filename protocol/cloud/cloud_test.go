package cloud

import (
	"bytes"
	"testing"

	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/hasher/vfs"
	"github.com/fchen-group/dynamic-verifiable-data-access/merkletree"
	"github.com/fchen-group/dynamic-verifiable-data-access/protocol"
)

func token(name string) merkletree.Token {
	return merkletree.StaticTokens(name)[0]
}

func TestSearch(t *testing.T) {
	c := NewTestCloud(t, "a", "aaa", "ab1", "b23", "c")
	tests := []struct {
		name string
		want protocol.ErrorCode
	}{
		{"a", protocol.ReqSuccess},
		{"c", protocol.ReqSuccess},
		{"x", protocol.ReqNotFound},
	}
	for _, tt := range tests {
		res, e := c.Search(&protocol.SearchRequest{Token: token(tt.name)})
		if e != tt.want || res.Error != tt.want {
			t.Error(tt.name, "Expect", tt.want, "got", e)
		}
		sp, ok := res.CloudResponse.(*protocol.SearchProof)
		if !ok {
			t.Fatal("Expect a SearchProof")
		}
		if sp.Proof.QueryToken != token(tt.name) {
			t.Error("Proof answers a different query")
		}
	}
}

func TestBadRequests(t *testing.T) {
	c := NewTestCloud(t, "a")
	tests := []struct {
		name string
		req  *protocol.Request
		want protocol.ErrorCode
	}{
		{"sentinel search", &protocol.Request{Type: protocol.SearchType,
			Request: &protocol.SearchRequest{Token: merkletree.Sentinel}}, protocol.ErrMalformedMessage},
		{"sentinel add", &protocol.Request{Type: protocol.AddType,
			Request: &protocol.AddRequest{}}, protocol.ErrMalformedMessage},
		{"wrong payload", &protocol.Request{Type: protocol.DeleteType,
			Request: &protocol.SearchRequest{Token: token("a")}}, protocol.ErrMalformedMessage},
		{"unknown type", &protocol.Request{Type: 42}, protocol.ErrMalformedMessage},
	}
	for _, tt := range tests {
		if res := c.HandleRequest(tt.req); res.Error != tt.want {
			t.Errorf("Expect %v for %s, got %v", tt.want, tt.name, res.Error)
		}
	}
}

func TestAddDelete(t *testing.T) {
	c := NewTestCloud(t, "a", "aaa", "ab1", "b23", "c")
	before := c.Root()

	res := c.HandleRequest(&protocol.Request{Type: protocol.DeleteType,
		Request: &protocol.DeleteRequest{Token: token("aaa")}})
	if res.Error != protocol.ReqSuccess {
		t.Fatal("Expect", protocol.ReqSuccess, "got", res.Error)
	}
	up := res.CloudResponse.(*protocol.UpdateProof)
	if !bytes.Equal(up.Root, c.Root()) || bytes.Equal(up.Root, before) {
		t.Error("Unexpected root after delete")
	}
	if !up.Proof.Existing {
		t.Error("Expect the pre-update proof to show the deleted token")
	}

	res = c.HandleRequest(&protocol.Request{Type: protocol.DeleteType,
		Request: &protocol.DeleteRequest{Token: token("aaa")}})
	if res.Error != protocol.ReqNotFound {
		t.Error("Expect", protocol.ReqNotFound, "got", res.Error)
	}

	res = c.HandleRequest(&protocol.Request{Type: protocol.AddType,
		Request: &protocol.AddRequest{Token: token("aaa")}})
	if res.Error != protocol.ReqSuccess {
		t.Fatal("Expect", protocol.ReqSuccess, "got", res.Error)
	}
	if !bytes.Equal(c.Root(), before) {
		t.Error("Re-adding the deleted token did not restore the root")
	}

	res = c.HandleRequest(&protocol.Request{Type: protocol.AddType,
		Request: &protocol.AddRequest{Token: token("aaa")}})
	if res.Error != protocol.ReqExisted {
		t.Error("Expect", protocol.ReqExisted, "got", res.Error)
	}
}

func TestParamsRequest(t *testing.T) {
	c := NewTestCloud(t, "a", "aaa", "ab1", "b23", "c")
	res := c.HandleRequest(&protocol.Request{Type: protocol.ParamsType,
		Request: &protocol.ParamsRequest{}})
	params, ok := res.CloudResponse.(*protocol.Params)
	if res.Error != protocol.ReqSuccess || !ok {
		t.Fatal("Expect params, got", res.Error)
	}
	if params.TreeHeight != 4 {
		t.Error("Expect tree height", 4, "got", params.TreeHeight)
	}
}

func TestCapacityExhausted(t *testing.T) {
	d, err := merkletree.NewDictionary(vfs.New(), nil, 1)
	if err != nil {
		t.Fatal(err)
	}
	c := New(d, nil)
	names := []string{"f0", "f1", "f2", "f3", "f4"}
	var last protocol.ErrorCode
	for _, name := range names {
		_, last = c.Add(&protocol.AddRequest{Token: token(name)})
		if last == protocol.ErrCapacityExhausted {
			break
		}
	}
	if last != protocol.ErrCapacityExhausted {
		t.Error("Expect", protocol.ErrCapacityExhausted, "got", last)
	}
}
