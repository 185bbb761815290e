// Package cmd implements the CLI commands of vfsctl.
package cmd

import (
	"github.com/fchen-group/dynamic-verifiable-data-access/cli"
)

// RootCmd represents the base "vfsctl" command when called without any subcommands.
var RootCmd = cli.NewRootCommand("vfsctl",
	"Verifiable file index tool",
	`vfsctl outsources the names of the files in a directory as opaque
tokens, and checks every answer of the cloud against a single root
digest.`)

func init() {
	RootCmd.PersistentFlags().StringP("config", "c", "vfs.toml",
		"Path to the index configuration file")
}
