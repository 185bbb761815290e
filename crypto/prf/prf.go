// Package prf implements the keyed pseudorandom function used to turn
// plaintext filenames into opaque fixed-length tokens.
//
//     PRF : keys -> names -> tokens
//         PRF_k(n) = HMAC-SHA256(k, n)
//
// The cloud only ever sees PRF_k(n). Without k it can neither recover n
// from a token nor compute the token of a name of its choice.
package prf

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// PrivateKeySize is the size of a PRF key in bytes (256 bits).
	PrivateKeySize = 32
	// Size is the size of a PRF output in bytes.
	Size = sha256.Size
)

// keyInfo is the HKDF context string binding derived keys to this PRF.
var keyInfo = []byte("vfs token prf v1")

var (
	// ErrInvalidKey indicates that the PRF could not be keyed,
	// either because the key material has the wrong size or
	// because the entropy source failed.
	ErrInvalidKey = errors.New("[prf] Invalid PRF key material")
)

// PrivateKey is the secret key of the data owner.
type PrivateKey [PrivateKeySize]byte

// GenerateKey creates a PRF key using rnd for randomness.
// If rnd is nil, crypto/rand is used.
func GenerateKey(rnd io.Reader) (sk PrivateKey, err error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	if _, err = io.ReadFull(rnd, sk[:]); err != nil {
		return sk, ErrInvalidKey
	}
	return sk, nil
}

// NewKeyFromSeed deterministically derives a PRF key from seed
// using HKDF-SHA256. The same seed always yields the same key.
// seed must be at least PrivateKeySize bytes long.
func NewKeyFromSeed(seed []byte) (PrivateKey, error) {
	if len(seed) < PrivateKeySize {
		return PrivateKey{}, ErrInvalidKey
	}
	return GenerateKey(hkdf.New(sha256.New, seed, nil, keyInfo))
}

// NewKeyFromBytes wraps raw key bytes, e.g. read from a key file.
func NewKeyFromBytes(b []byte) (PrivateKey, error) {
	var sk PrivateKey
	if len(b) != PrivateKeySize {
		return sk, ErrInvalidKey
	}
	copy(sk[:], b)
	return sk, nil
}

// Compute returns PRF_k(m). The passed slice won't be mutated.
func (sk PrivateKey) Compute(m []byte) []byte {
	h := hmac.New(sha256.New, sk[:])
	h.Write(m)
	return h.Sum(nil)
}
