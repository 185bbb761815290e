package cloud

import (
	"testing"

	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/hasher/vfs"
	"github.com/fchen-group/dynamic-verifiable-data-access/merkletree"
	"github.com/fchen-group/dynamic-verifiable-data-access/protocol"
)

// NewTestCloud creates a Cloud holding names, outsourced with the
// static test key at load factor 0.5, for testing the protocol.
func NewTestCloud(t testing.TB, names ...string) *Cloud {
	d := merkletree.StaticDictionary(t, 0.5, names...)
	return New(d, protocol.NewParams(vfs.New(), d.Height()))
}
