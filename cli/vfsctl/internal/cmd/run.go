package cmd

import (
	"fmt"
	"io"

	"github.com/fchen-group/dynamic-verifiable-data-access/application/vfs"
	"github.com/fchen-group/dynamic-verifiable-data-access/cli"
	"github.com/fchen-group/dynamic-verifiable-data-access/utils/binutils"
	"github.com/spf13/cobra"
)

// nonExistingName is looked up by the walk-through and must never
// be reported as existing.
const nonExistingName = "this file does not exist"

var runCmd = cli.NewRunCommand("the correctness walk-through",
	`Outsource the files named by the configuration and check the index:
every file must be found with a valid proof, a missing name must be
proven absent, and the first file must disappear after a delete and
come back after an add.`, runFunc)

func init() {
	RootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolP("verbose", "v", false, "Dump the tree and the proofs")
}

func runFunc(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	p, names, err := loadProtocol(cmd)
	if err != nil {
		return err
	}
	if err := p.Outsource(names); err != nil {
		return err
	}
	return walkThrough(cmd.OutOrStdout(), p, names, verbose)
}

func loadProtocol(cmd *cobra.Command) (*vfs.Protocol, []string, error) {
	file, _ := cmd.Flags().GetString("config")
	conf := new(vfs.Config)
	if err := conf.Load(file, "toml"); err != nil {
		return nil, nil, err
	}
	names, err := conf.Files()
	if err != nil {
		return nil, nil, err
	}
	return vfs.NewFromConfig(conf), names, nil
}

func walkThrough(w io.Writer, p *vfs.Protocol, names []string, verbose bool) error {
	params := p.Params()
	fmt.Fprintf(w, "outsourced %d file(s): tree height %d, %d slots\n",
		len(names), params.TreeHeight, params.LeafSize())
	if verbose {
		if err := binutils.DumpTree(w, p.Cloud().Dictionary()); err != nil {
			return err
		}
	}

	for _, name := range names {
		if err := expect(w, p, name, true, verbose); err != nil {
			return err
		}
	}
	if err := expect(w, p, nonExistingName, false, verbose); err != nil {
		return err
	}

	if len(names) > 0 {
		victim := names[0]
		if err := p.Delete(p.DeriveQuery(victim)); err != nil {
			return err
		}
		fmt.Fprintf(w, "deleted %q\n", victim)
		if err := expect(w, p, victim, false, verbose); err != nil {
			return err
		}
		if err := p.Add(p.DeriveQuery(victim)); err != nil {
			return err
		}
		fmt.Fprintf(w, "added %q\n", victim)
		if err := expect(w, p, victim, true, verbose); err != nil {
			return err
		}
	}

	stats := p.Stats()
	fmt.Fprintf(w, "slots: %d occupied, %d tombstoned, %d empty (load factor %.3f)\n",
		stats.Occupied, stats.Tombstoned, stats.Empty, stats.LoadFactor())
	fmt.Fprintln(w, "all checks passed")
	return nil
}

// expect searches name, verifies the proof and checks the answer.
func expect(w io.Writer, p *vfs.Protocol, name string, existing, verbose bool) error {
	t := p.DeriveQuery(name)
	proof, err := p.Search(t)
	if err != nil {
		return fmt.Errorf("search %q: %v", name, err)
	}
	if verbose {
		if err := binutils.DumpProof(w, proof); err != nil {
			return err
		}
	}
	if err := p.VerifyProof(t, proof); err != nil {
		return fmt.Errorf("verify %q: %v", name, err)
	}
	if proof.Existing != existing {
		return fmt.Errorf("%q: expected existing=%v, got %v", name, existing, proof.Existing)
	}
	fmt.Fprintf(w, "%-24q exists=%-5v verified (%d slot(s) visited)\n",
		name, proof.Existing, len(proof.Visited))
	return nil
}
