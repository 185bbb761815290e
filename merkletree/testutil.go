package merkletree

import (
	"encoding/binary"
	"testing"

	"github.com/fchen-group/dynamic-verifiable-data-access/crypto"
	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/hasher"
	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/hasher/vfs"
)

var staticPRFKey = crypto.NewStaticTestPRFKey()

// StaticTokens derives the tokens of names under the static
// test key, for _tests_.
func StaticTokens(names ...string) []Token {
	tokens := make([]Token, len(names))
	for i, n := range names {
		copy(tokens[i][:], staticPRFKey.Compute([]byte(n)))
	}
	return tokens
}

// StaticDictionary returns a dictionary of names built with the
// static test key and the VFS hasher, for _tests_.
func StaticDictionary(t testing.TB, loadFactor float64, names ...string) *Dictionary {
	d, err := NewDictionary(vfs.New(), StaticTokens(names...), loadFactor)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

// craftedToken returns a token whose h1 and h2 words are w1 and w2,
// marked by tag so that crafted tokens with the same words differ.
func craftedToken(w1, w2 uint32, tag byte) Token {
	var tok Token
	binary.LittleEndian.PutUint32(tok[0:4], w1)
	binary.LittleEndian.PutUint32(tok[4:8], w2)
	tok[31] = tag | 0x80
	return tok
}

func newDictionaryWithHeight(h hasher.TreeHasher, height uint32) *Dictionary {
	table := newSlotTable(height)
	return &Dictionary{hasher: h, table: table, tree: NewAuthTree(h, table)}
}
