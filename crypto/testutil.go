package crypto

import (
	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/prf"
)

// staticSeed mirrors the fixed all-0xff seed the experiments use
// to make runs reproducible.
var staticSeed = []byte{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// NewStaticTestPRFKey returns a static PRF private key for _tests_.
func NewStaticTestPRFKey() prf.PrivateKey {
	sk, err := prf.NewKeyFromSeed(staticSeed)
	if err != nil {
		panic(err)
	}
	return sk
}
