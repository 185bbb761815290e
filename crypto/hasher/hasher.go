package hasher

import (
	"fmt"

	"github.com/fchen-group/dynamic-verifiable-data-access/crypto"
)

// Hash represents the output of the used hash function.
type Hash [crypto.HashSizeByte]byte

// TreeHasher provides hash functions for the authentication tree
// built over the slot table.
type TreeHasher interface {
	// ID returns the name of the cryptographic hash function.
	ID() string
	// Size returns the size of the hash output in bytes.
	Size() int
	// Digest hashes all passed byte slices. The passed slices won't be mutated.
	Digest(ms ...[]byte) []byte

	// HashInterior computes the hash of an interior node as: H(left || right)
	HashInterior(left, right []byte) []byte

	// HashLeaf computes the hash of a slot as:
	// H(index || token || tombstone)
	HashLeaf(index uint32, token []byte, tombstone bool) []byte
}

var hashers = make(map[string]TreeHasher)

// RegisterHasher registers a hasher for use.
func RegisterHasher(h string, f func() TreeHasher) {
	if _, ok := hashers[h]; ok {
		panic(fmt.Sprintf("RegisterHasher(%v) is already registered", h))
	}
	hashers[h] = f()
}

// Hasher returns a TreeHasher.
func Hasher(h string) (TreeHasher, error) {
	if f, ok := hashers[h]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("Hasher(%v) is unknown hasher", h)
}
