package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the rpt2ogd77 version and build platform",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), versionString())
	},
}

// versionString returns e.g. "rpt2ogd77 1.2.0 (go1.17.13 linux/amd64)".
// Builds without linker version report "devel".
func versionString() string {
	v := version
	if v == "" {
		v = "devel"
	}
	return fmt.Sprintf("rpt2ogd77 %s (%s %s/%s)", v, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
