package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewTableCommand creates the table command.
func NewTableCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print every data type with its size, class and limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := BuildRows()
			Logger().Debug("rendering data type table",
				zap.Int("rows", len(rows)),
				zap.String("format", rootOpts.Format))

			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if err := formatter.WriteRows(rows); err != nil {
				return WrapExitError(ExitFailure, "write table", err)
			}
			return nil
		},
	}
}
