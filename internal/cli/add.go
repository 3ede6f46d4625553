package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/tablebook/internal/store"
)

// AddOptions holds flags for the add command.
type AddOptions struct {
	*RootOptions
	Name      string
	Phone     int64
	Email     string
	Date      string
	StartTime int64
	PartySize int64
	Notes     string
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AddOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a reservation",
		Long: `Add a reservation and print the id it was assigned.

--name, --phone, --email and --date are required by the database; leaving one
out is rejected as a constraint violation and nothing is written. --start and
--party are stored as absent unless given. Any --phone value, 0 included, is
stored as given.

Example:
  tablebook add --name "Test Person" --phone 1234567890 --email test@test.com \
    --date 10-01-2025 --start 1500 --party 4 --notes "Anniversary Party"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return addReservation(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "customer name")
	cmd.Flags().Int64Var(&opts.Phone, "phone", 0, "phone number (digits only)")
	cmd.Flags().StringVar(&opts.Email, "email", "", "email address")
	cmd.Flags().StringVar(&opts.Date, "date", "", "reservation date (free-form)")
	cmd.Flags().Int64Var(&opts.StartTime, "start", 0, "start time as HHMM")
	cmd.Flags().Int64Var(&opts.PartySize, "party", 0, "party size")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "free-text notes")

	return cmd
}

func addReservation(opts *AddOptions, cmd *cobra.Command) error {
	in := store.NewReservation{
		CustomerName: opts.Name,
		Email:        opts.Email,
		Date:         opts.Date,
		Notes:        opts.Notes,
	}
	if cmd.Flags().Changed("phone") {
		in.Phone = store.Int64(opts.Phone)
	}
	if cmd.Flags().Changed("start") {
		in.StartTime = store.Int64(opts.StartTime)
	}
	if cmd.Flags().Changed("party") {
		in.PartySize = store.Int64(opts.PartySize)
	}

	st, err := opts.openStore()
	if err != nil {
		return err
	}
	defer opts.closeStore(st)

	id, err := st.AddReservation(commandContext(cmd), in)
	if err != nil {
		return WrapExitError(storeExitCode(err), "failed to add reservation", err)
	}

	opts.logger().Info("reservation added", "id", id, "db", st.Path())
	return opts.formatter(cmd).Success(
		map[string]int64{"id": id},
		fmt.Sprintf("Added reservation %d", id),
	)
}
