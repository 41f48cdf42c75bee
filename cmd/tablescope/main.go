// Command tablescope is an interactive viewer for tabular result sets.
package main

import (
	"fmt"
	"os"

	"github.com/tablescope/tablescope/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
