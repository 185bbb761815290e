package protocol

import (
	"testing"

	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/hasher/vfs"
	"github.com/fchen-group/dynamic-verifiable-data-access/merkletree"
)

func TestNewSearchProof(t *testing.T) {
	d := merkletree.StaticDictionary(t, 0.5, "alice", "bob")
	for _, tc := range []struct {
		name string
		want ErrorCode
	}{
		{"alice", ReqSuccess},
		{"carol", ReqNotFound},
	} {
		p, err := d.Search(merkletree.StaticTokens(tc.name)[0])
		if err != nil {
			t.Fatal(err)
		}
		res, e := NewSearchProof(p)
		if e != tc.want || res.Error != tc.want {
			t.Error(tc.name, "Expect", tc.want, "got", e)
		}
		if err := res.Validate(); err != nil {
			t.Error("Unexpected validation error", err)
		}
	}
}

func TestValidate(t *testing.T) {
	params := NewParams(vfs.New(), 4)
	for _, tc := range []struct {
		name string
		msg  *Response
		want error
	}{
		{"error code", NewErrorResponse(ErrCapacityExhausted), ErrCapacityExhausted},
		{"no content", &Response{Error: ReqSuccess}, ErrMalformedMessage},
		{"nil proof", &Response{Error: ReqSuccess, CloudResponse: &SearchProof{}}, ErrMalformedMessage},
		{"empty proof", &Response{Error: ReqSuccess,
			CloudResponse: &SearchProof{Proof: &merkletree.Proof{}}}, ErrMalformedMessage},
		{"update without root", &Response{Error: ReqSuccess,
			CloudResponse: &UpdateProof{Proof: &merkletree.Proof{
				Visited: []*merkletree.ProofNode{{}},
			}}}, ErrMalformedMessage},
		{"params", &Response{Error: ReqSuccess, CloudResponse: params}, nil},
		{"bad params", &Response{Error: ReqSuccess, CloudResponse: &Params{}}, ErrMalformedMessage},
		{"unknown content", &Response{Error: ReqSuccess, CloudResponse: "hi"}, ErrMalformedMessage},
	} {
		if err := tc.msg.Validate(); err != tc.want {
			t.Error(tc.name, "Expect", tc.want, "got", err)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	for e := ReqSuccess; e <= ErrMalformedMessage; e++ {
		if e.Error() == "" {
			t.Error("Missing message for error code", int(e))
		}
	}
	for e := CheckPassed; e <= CheckBadUpdate; e++ {
		if e.Error() == "" {
			t.Error("Missing message for check code", int(e))
		}
	}
}

func TestParams(t *testing.T) {
	p := NewParams(vfs.New(), 4)
	if p.LeafSize() != 16 {
		t.Error("Expect", 16, "got", p.LeafSize())
	}
	if p.HashID != vfs.VFSHasher || p.Version != Version {
		t.Error("Unexpected params", p)
	}
}
