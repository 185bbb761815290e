package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMkPRFKeyFromSeed(t *testing.T) {
	dir := t.TempDir()
	seed := strings.Repeat("ff", 32)
	p1 := filepath.Join(dir, "1.key")
	p2 := filepath.Join(dir, "2.key")
	if err := mkPRFKey(p1, seed); err != nil {
		t.Fatal(err)
	}
	if err := mkPRFKey(p2, seed); err != nil {
		t.Fatal(err)
	}
	k1, _ := os.ReadFile(p1)
	k2, _ := os.ReadFile(p2)
	if len(k1) != 32 || !bytes.Equal(k1, k2) {
		t.Error("Expect the same 32-byte key from the same seed, got", k1, k2)
	}
	if err := mkPRFKey(p1, seed); err == nil {
		t.Error("Expect an existing key to be kept")
	}
}

func TestMkPRFKeyBadSeed(t *testing.T) {
	dir := t.TempDir()
	for _, seed := range []string{"zz", "ff"} {
		if err := mkPRFKey(filepath.Join(dir, seed), seed); err == nil {
			t.Error("Expect an error for seed", seed)
		}
	}
}

func TestMkPRFKeyRandom(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "1.key")
	p2 := filepath.Join(dir, "2.key")
	if err := mkPRFKey(p1, ""); err != nil {
		t.Fatal(err)
	}
	if err := mkPRFKey(p2, ""); err != nil {
		t.Fatal(err)
	}
	k1, _ := os.ReadFile(p1)
	k2, _ := os.ReadFile(p2)
	if bytes.Equal(k1, k2) {
		t.Error("Expect two fresh keys to differ")
	}
}
