package cli

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all reservations",
		Long: `List every stored reservation in id order.

Use --format csv to export the table, --format json for scripting.

Example:
  tablebook list
  tablebook list --format csv > reservations.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := rootOpts.openStore()
			if err != nil {
				return err
			}
			defer rootOpts.closeStore(st)

			rs, err := st.Reservations(commandContext(cmd))
			if err != nil {
				return WrapExitError(storeExitCode(err), "failed to read reservations", err)
			}
			return rootOpts.formatter(cmd).Reservations(rs)
		},
	}
}
