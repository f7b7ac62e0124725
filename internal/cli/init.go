package cli

import (
	"fmt"

	"github.com/pomo-dev/pomo/internal/app"
	"github.com/spf13/cobra"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the pomo data store",
		Long: `Initialize the pomo data store.

Creates the data file (pomo.json or pomo.db, depending on the
configured store backend) under the data directory. Running init
on an existing store is a no-op.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitStoreUseCase()
			if err := uc.Execute(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Initialized pomo store")
			return nil
		},
	}
}
