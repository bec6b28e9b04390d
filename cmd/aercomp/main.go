// Command aercomp compares mechanical aerators for shrimp farms.
package main

import (
	"context"
	"os"

	"github.com/oxyfarm/aercomp/internal/cli"
	"github.com/oxyfarm/aercomp/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps failure to a process exit code.
// Split from main so tests can exercise it.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.ExecuteContext(context.Background()); err != nil {
		return 1
	}
	return 0
}
