package vfs

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/fchen-group/dynamic-verifiable-data-access/crypto"
)

func newTestProtocol(t testing.TB, names ...string) *Protocol {
	p := New(crypto.NewStaticTestPRFKey(), 0.5, nil)
	if err := p.Outsource(names); err != nil {
		t.Fatal(err)
	}
	return p
}

func generateNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = "file-" + strconv.Itoa(i) + ".dat"
	}
	return names
}

// randomExisting returns a random name among names.
func randomExisting(r *rand.Rand, names []string) string {
	return names[r.Intn(len(names))]
}

// randomNonExisting returns a name that is not among names,
// which all come from generateNames.
func randomNonExisting(r *rand.Rand) string {
	return "missing-" + strconv.Itoa(r.Int()) + ".dat"
}
