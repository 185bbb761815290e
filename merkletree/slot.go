package merkletree

import (
	"encoding/hex"
	"errors"

	"github.com/fchen-group/dynamic-verifiable-data-access/crypto"
	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/hasher"
)

var (
	// ErrMalformedToken indicates a token of the wrong length.
	ErrMalformedToken = errors.New("[merkletree] Malformed token")
	// ErrSentinelToken indicates an attempt to store or look up
	// the reserved sentinel token.
	ErrSentinelToken = errors.New("[merkletree] The sentinel token is reserved")
)

// A Token is the opaque stand-in for a filename, the output
// of the owner's PRF.
type Token [crypto.HashSizeByte]byte

// Sentinel is the reserved all-zero token of empty and deleted slots.
// A derived token is assumed never to equal it.
var Sentinel Token

// NewToken copies b into a Token.
func NewToken(b []byte) (Token, error) {
	var t Token
	if len(b) != len(t) {
		return t, ErrMalformedToken
	}
	copy(t[:], b)
	return t, nil
}

// IsSentinel reports whether t is the sentinel token.
func (t Token) IsSentinel() bool {
	return t == Sentinel
}

func (t Token) String() string {
	return hex.EncodeToString(t[:])
}

// MarshalText encodes t as a hex string.
func (t Token) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a hex string into t.
func (t *Token) UnmarshalText(text []byte) error {
	b, err := hex.DecodeString(string(text))
	if err != nil {
		return err
	}
	tok, err := NewToken(b)
	if err != nil {
		return err
	}
	*t = tok
	return nil
}

// A Slot is a leaf record of the slot table.
// Index always equals the slot's position in the table,
// and a tombstoned slot always holds the sentinel token.
type Slot struct {
	Index     uint32
	Token     Token
	Tombstone bool
}

type probeResult int

const (
	probeContinue probeResult = iota
	probeFound
	probeEmpty
	// probeExhausted ends a walk that visited every slot without
	// meeting the token or a never-occupied slot.
	probeExhausted
)

// probe classifies s for a search of t: the search stops at t or at a
// slot that was never occupied, and moves on past other tokens and
// tombstones.
func (s *Slot) probe(t Token) probeResult {
	switch {
	case s.Tombstone:
		return probeContinue
	case s.Token == t:
		return probeFound
	case s.Token.IsSentinel():
		return probeEmpty
	default:
		return probeContinue
	}
}

func (s *Slot) wellFormed() bool {
	return !s.Tombstone || s.Token.IsSentinel()
}

func hashSlot(h hasher.TreeHasher, s Slot) []byte {
	return h.HashLeaf(s.Index, s.Token[:], s.Tombstone)
}
