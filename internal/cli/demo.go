package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/tablebook/internal/store"
)

// DemoReservations are the two bookings written by the demo command.
var DemoReservations = []store.NewReservation{
	{
		CustomerName: "Test Person",
		Phone:        store.Int64(1234567890),
		Email:        "test@test.com",
		Date:         "10-01-2025",
		StartTime:    store.Int64(1500),
		PartySize:    store.Int64(4),
		Notes:        "Anniversary Party",
	},
	{
		CustomerName: "Test Second Person",
		Phone:        store.Int64(3178675309),
		Email:        "testtwo@test.com",
		Date:         "10-02-2025",
		StartTime:    store.Int64(1700),
		PartySize:    store.Int64(2),
		Notes:        "",
	},
}

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Write two sample reservations and list the table",
		Long: `Smoke-test the store: add two sample reservations, then print every row.

Against a fresh database the output is exactly the two sample rows with ids 1 and 2.

Example:
  tablebook demo --db /tmp/demo.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := rootOpts.openStore()
			if err != nil {
				return err
			}
			defer rootOpts.closeStore(st)

			ctx := commandContext(cmd)
			for _, r := range DemoReservations {
				if _, err := st.AddReservation(ctx, r); err != nil {
					return WrapExitError(storeExitCode(err), "failed to add demo reservation", err)
				}
			}

			rs, err := st.Reservations(ctx)
			if err != nil {
				return WrapExitError(storeExitCode(err), "failed to read reservations", err)
			}
			return rootOpts.formatter(cmd).Reservations(rs)
		},
	}
}
