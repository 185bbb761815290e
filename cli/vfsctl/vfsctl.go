// Executable vfsctl outsources a directory to an in-process cloud
// and checks the verifiable file index built over it.
package main

import (
	"github.com/fchen-group/dynamic-verifiable-data-access/cli"
	"github.com/fchen-group/dynamic-verifiable-data-access/cli/vfsctl/internal/cmd"
)

func main() {
	cli.Execute(cmd.RootCmd)
}
