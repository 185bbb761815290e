// Package crypto contains some cryptographic routines, to:
// - hash arbitrary data (`Digest`) using SHA-256
// - generate a random slice of bytes
// - derive opaque file tokens under a secret key (see the prf subpackage)
// - hash the leaves and interior nodes of the authentication tree
// (see the hasher subpackage).
package crypto
