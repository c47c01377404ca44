// Package cli implements the dtypeinfo command, which prints the data type
// tables and resolves plain, wire and name encodings of a tag.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "yaml"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "yaml"}

// NewRootCommand creates the root command for dtypeinfo.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "dtypeinfo",
		Short: "Inspect tensor data type metadata",
		Long:  "Print storage sizes, limits and encodings of the tensor data types.",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.Verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return WrapExitError(ExitCommandError, "logger setup failed", err)
				}
				SetLogger(l)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|yaml)")

	cmd.AddCommand(NewTableCommand(opts))
	cmd.AddCommand(NewLookupCommand(opts))

	return cmd
}
