package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/scigolib/dtype"
)

type lookupOptions struct {
	plain int
	wire  int
	name  string
}

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &lookupOptions{}

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Resolve a data type from its plain code, wire code or name",
		Long: `Resolve one data type through the tag codec and print its row.

Exactly one of --plain, --wire or --name must be given. Codes that do not
map to a data type exit with status 2.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dt, err := resolve(cmd, opts)
			if err != nil {
				Logger().Debug("lookup failed", zap.Error(err))
				return WrapExitError(ExitCommandError, "lookup failed", err)
			}
			Logger().Debug("resolved data type",
				zap.Stringer("dtype", dt),
				zap.Int("plain", dtype.ToInt(dt)))

			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if err := formatter.WriteRows([]Row{buildRow(dt, wireCodes())}); err != nil {
				return WrapExitError(ExitFailure, "write row", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.plain, "plain", 0, "plain integer code")
	cmd.Flags().IntVar(&opts.wire, "wire", 0, "serialization wire code")
	cmd.Flags().StringVar(&opts.name, "name", "", "data type name")
	cmd.MarkFlagsMutuallyExclusive("plain", "wire", "name")
	cmd.MarkFlagsOneRequired("plain", "wire", "name")

	return cmd
}

func resolve(cmd *cobra.Command, opts *lookupOptions) (dtype.DataType, error) {
	switch {
	case cmd.Flags().Changed("plain"):
		return dtype.FromInt(opts.plain)
	case cmd.Flags().Changed("wire"):
		return dtype.FromWire(opts.wire)
	default:
		return dtype.ParseDataType(opts.name)
	}
}
