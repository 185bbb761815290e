package cmd

import (
	"path/filepath"

	"github.com/fchen-group/dynamic-verifiable-data-access/application"
	"github.com/fchen-group/dynamic-verifiable-data-access/application/vfs"
	"github.com/fchen-group/dynamic-verifiable-data-access/cli"
	"github.com/spf13/cobra"
)

var initCmd = cli.NewInitCommand("vfsctl", initRunFunc)

func init() {
	RootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("dir", "d", ".", "Location of directory for storing generated files")
	initCmd.Flags().StringP("files", "f", "files", "Directory whose files are outsourced")
	initCmd.Flags().Float64P("load-factor", "l", vfs.DefaultLoadFactor, "Load factor of the slot table, in (0, 1]")
}

func initRunFunc(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	files, _ := cmd.Flags().GetString("files")
	loadFactor, _ := cmd.Flags().GetFloat64("load-factor")

	logger := &application.LoggerConfig{
		EnableStacktrace: true,
		Environment:      "development",
		Path:             "vfsctl.log",
	}
	conf := vfs.NewConfig(filepath.Join(dir, "vfs.toml"), "toml",
		files, loadFactor, "prf.key", logger)
	if err := conf.Save(); err != nil {
		return err
	}
	return application.SavePRFKey(filepath.Join(dir, "prf.key"))
}
