package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <seed.yaml>",
		Short: "Add reservations from a YAML seed file",
		Long: `Add every reservation listed in a YAML seed file.

Each entry is inserted and committed on its own. Import stops at the first
rejected entry; the entries before it stay stored.

Example:
  tablebook import ./seed.yaml --db ./bookings.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return importSeed(rootOpts, args[0], cmd)
		},
	}
}

func importSeed(opts *RootOptions, path string, cmd *cobra.Command) error {
	seed, err := LoadSeed(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load seed file", err)
	}

	st, err := opts.openStore()
	if err != nil {
		return err
	}
	defer opts.closeStore(st)

	ctx := commandContext(cmd)
	total := len(seed.Reservations)
	ids := make([]int64, 0, total)
	for i, r := range seed.Reservations {
		id, err := st.AddReservation(ctx, r)
		if err != nil {
			return WrapExitError(storeExitCode(err),
				fmt.Sprintf("imported %d of %d reservations, entry %d rejected", len(ids), total, i+1), err)
		}
		ids = append(ids, id)
	}

	opts.logger().Info("seed imported", "path", path, "count", len(ids))
	return opts.formatter(cmd).Success(
		map[string]any{"imported": len(ids), "ids": ids},
		fmt.Sprintf("Imported %d reservations", len(ids)),
	)
}
