package crypto

import (
	"crypto/rand"
	"crypto/sha256"
)

const (
	// HashSizeByte is the size of the hash output in bytes.
	HashSizeByte = sha256.Size
	// HashID identifies the used hash as a string.
	HashID = "SHA-256"
)

// Digest hashes all passed byte slices.
// The passed slices won't be mutated.
func Digest(ms ...[]byte) []byte {
	h := sha256.New()
	for _, m := range ms {
		h.Write(m)
	}
	return h.Sum(nil)
}

// MakeRand returns a random slice of bytes.
// It returns an error if there was a problem while generating
// the random slice.
// It is different from the 'standard' random byte generation as it
// hashes its output before returning it; by hashing the system's
// PRNG output before it is used as key material, we aim to make the
// random output less predictable (even if the system's PRNG isn't
// as unpredictable as desired).
func MakeRand() ([]byte, error) {
	r := make([]byte, HashSizeByte)
	if _, err := rand.Read(r); err != nil {
		return nil, err
	}
	return Digest(r), nil
}
