// Command pager renders line-oriented input as pages of styled text.
package main

import (
	"fmt"
	"os"

	"github.com/textfeature/pagination/internal/cli"
	"github.com/textfeature/pagination/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps errors to an exit code.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
