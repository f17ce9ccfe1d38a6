package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is stamped with -ldflags at release time; "(devel)" means a local build.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the installed version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tenk %s %s/%s\n", version, runtime.GOOS, runtime.GOARCH)
	},
}
