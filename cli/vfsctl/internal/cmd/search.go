package cmd

import (
	"fmt"

	"github.com/fchen-group/dynamic-verifiable-data-access/utils/binutils"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search NAME...",
	Short: "Check whether files exist in the index.",
	Long: `Outsource the files named by the configuration, then search each NAME
and verify the cloud's proof against the owner's root.`,
	Args: cobra.MinimumNArgs(1),
	RunE: searchRunFunc,
}

func init() {
	RootCmd.AddCommand(searchCmd)
	searchCmd.Flags().BoolP("verbose", "v", false, "Dump the proofs")
}

func searchRunFunc(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	p, names, err := loadProtocol(cmd)
	if err != nil {
		return err
	}
	if err := p.Outsource(names); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, name := range args {
		t := p.DeriveQuery(name)
		proof, err := p.Search(t)
		if err != nil {
			return err
		}
		if verbose {
			if err := binutils.DumpProof(w, proof); err != nil {
				return err
			}
		}
		verified := "verified"
		if err := p.VerifyProof(t, proof); err != nil {
			verified = "REJECTED: " + err.Error()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, existence(proof.Existing), verified)
	}
	return nil
}

func existence(existing bool) string {
	if existing {
		return "exists"
	}
	return "absent"
}
