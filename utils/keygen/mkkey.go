// Executable keygen writes a PRF key for a data owner.
// With -seed, the key is derived from the given hex seed,
// so that the same seed always yields the same tokens.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/prf"
	"github.com/fchen-group/dynamic-verifiable-data-access/utils"
)

const PRF_SECRET string = "prf.key"

func main() {
	var out = flag.String("out", PRF_SECRET, "Path of the generated key")
	var seed = flag.String("seed", "", "Hex-encoded seed to derive the key from")
	flag.Parse()

	if err := mkPRFKey(*out, *seed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func mkPRFKey(path, seedHex string) error {
	var key prf.PrivateKey
	var err error
	if seedHex == "" {
		key, err = prf.GenerateKey(nil)
	} else {
		seed, decodeErr := hex.DecodeString(seedHex)
		if decodeErr != nil {
			return fmt.Errorf("Malformed seed: %v", decodeErr)
		}
		key, err = prf.NewKeyFromSeed(seed)
	}
	if err != nil {
		return err
	}
	return utils.WriteFile(path, key[:], 0600)
}
