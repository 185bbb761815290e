package cmd

import (
	"github.com/fchen-group/dynamic-verifiable-data-access/cli"
)

var versionCmd = cli.NewVersionCommand("vfsctl")

func init() {
	RootCmd.AddCommand(versionCmd)
}
