// Package main provides dtypeinfo, a command-line utility that prints the
// tensor data type tables.
package main

import (
	"fmt"
	"os"

	"github.com/scigolib/dtype/internal/cli"
)

func main() {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	_ = cli.Logger().Sync()
	os.Exit(cli.GetExitCode(err))
}
