/*
Package merkletree implements the authenticated dictionary behind the
verifiable file index: an open-addressing slot table of opaque file tokens
and a hash authentication tree built over it.

Slot Table

The slot table is an array of 2^h slots. Each slot holds its own index,
a token, and a tombstone flag. A token is placed by a deterministic probe
sequence: h1 and h2 read the first and second 4-byte little endian words
of the token, and any further probe steps linearly by 101. The same
sequence is replayed by bulk insertion, search, add, delete and by the
client when it verifies a proof, so the client can tell which slots the
cloud had to show it. The all-zero token is reserved as the sentinel of
an empty or deleted slot. Deleted slots keep a tombstone: a search probes
past them, and a later add may reuse them.

Authentication Tree

The authentication tree is a complete binary tree stored in an array,
root at 0 and the children of node i at 2i+1 and 2i+2. Its leaves are
the hashes of the slots, H(index || token || tombstone), and every
interior node is H(left || right). Updating one slot rehashes only the
leaf and its ancestors.

Proofs

A search returns a Proof listing every slot the probe sequence visited,
each with its authentication path: the pair of sibling digests on every
level from the leaf up, followed by the root. Verification recomputes
the probe sequence from the query token alone, checks every path against
the trusted root, and checks that the last slot is consistent with the
claimed answer. Any tampering with a slot, a digest, or the token makes
verification fail.
*/
package merkletree
