package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewInitCommand creates the init command.
func NewInitCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the database file and reservations table",
		Long: `Create the database file and reservations table if they do not exist.

Safe to run against an existing database: the table is never altered or emptied.

Example:
  tablebook init --db ./bookings.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := rootOpts.openStore()
			if err != nil {
				return err
			}
			defer rootOpts.closeStore(st)

			rootOpts.logger().Info("database ready", "path", st.Path())
			return rootOpts.formatter(cmd).Success(
				map[string]string{"db": st.Path()},
				fmt.Sprintf("Initialized %s", st.Path()),
			)
		},
	}
}
