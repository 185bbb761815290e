// Package binutils provides helpers shared by the command-line tools:
// human-readable hex dumps of the authentication tree and of proofs.
package binutils

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/fchen-group/dynamic-verifiable-data-access/merkletree"
)

// DumpTree writes every level of d's tree, root first, followed by
// the non-empty slots of the table.
func DumpTree(w io.Writer, d *merkletree.Dictionary) error {
	for depth := uint32(0); depth <= d.Height(); depth++ {
		if _, err := fmt.Fprintf(w, "level %d:\n", depth); err != nil {
			return err
		}
		for i, digest := range d.Level(depth) {
			if _, err := fmt.Fprintf(w, "  [%d] %s\n", i, hex.EncodeToString(digest)); err != nil {
				return err
			}
		}
	}
	stats := d.Stats()
	if _, err := fmt.Fprintf(w, "slots: %d occupied, %d tombstoned, %d empty (load factor %.3f)\n",
		stats.Occupied, stats.Tombstoned, stats.Empty, stats.LoadFactor()); err != nil {
		return err
	}
	for i := uint32(0); i < stats.Size; i++ {
		s, err := d.Slot(i)
		if err != nil {
			return err
		}
		if s.Token.IsSentinel() && !s.Tombstone {
			continue
		}
		if _, err := fmt.Fprintf(w, "  %s\n", formatSlot(s)); err != nil {
			return err
		}
	}
	return nil
}

// DumpProof writes the visited slots of p with their
// authentication paths, bottom up.
func DumpProof(w io.Writer, p *merkletree.Proof) error {
	if _, err := fmt.Fprintf(w, "query %s: proof of %s, %d slot(s) visited\n",
		p.QueryToken, p.ProofType(), len(p.Visited)); err != nil {
		return err
	}
	for _, node := range p.Visited {
		if _, err := fmt.Fprintf(w, "  %s\n", formatSlot(node.Slot)); err != nil {
			return err
		}
		ap := node.AuthPath
		for l := uint32(0); l < ap.Height(); l++ {
			if _, err := fmt.Fprintf(w, "    level %d: %s %s\n", l,
				hex.EncodeToString(ap[2*l]), hex.EncodeToString(ap[2*l+1])); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "    root:    %s\n", hex.EncodeToString(ap.Root())); err != nil {
			return err
		}
	}
	return nil
}

func formatSlot(s merkletree.Slot) string {
	switch {
	case s.Tombstone:
		return fmt.Sprintf("slot %d: tombstone", s.Index)
	case s.Token.IsSentinel():
		return fmt.Sprintf("slot %d: empty", s.Index)
	default:
		return fmt.Sprintf("slot %d: %s", s.Index, s.Token)
	}
}
