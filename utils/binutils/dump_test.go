package binutils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fchen-group/dynamic-verifiable-data-access/merkletree"
)

func TestDumpTree(t *testing.T) {
	d := merkletree.StaticDictionary(t, 0.5, "a", "aaa", "ab1", "b23", "c")
	if _, err := d.Delete(merkletree.StaticTokens("aaa")[0]); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := DumpTree(&buf, d); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"level 0:",
		"level 4:",
		"  [15] ",
		"4 occupied, 1 tombstoned, 11 empty",
		"slot 7: tombstone",
		"slot 10: " + merkletree.StaticTokens("a")[0].String(),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expect %q in dump:\n%s", want, out)
		}
	}
	if strings.Contains(out, "slot 0: empty") {
		t.Error("Empty slots must not be listed")
	}
}

func TestDumpProof(t *testing.T) {
	d := merkletree.StaticDictionary(t, 0.5, "a", "aaa", "ab1", "b23", "c")
	p, err := d.Search(merkletree.StaticTokens("zzz")[0])
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := DumpProof(&buf, p); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"proof of absence, 2 slot(s) visited",
		"slot 3: " + merkletree.StaticTokens("c")[0].String(),
		"slot 14: empty",
		"level 3:",
		"root:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expect %q in dump:\n%s", want, out)
		}
	}
}
