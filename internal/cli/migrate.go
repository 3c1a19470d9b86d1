package cli

import (
	"fmt"

	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/app"

	"github.com/spf13/cobra"
)

func newMigrateCmd(load ConfigLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update every table and index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, db, closeDB, err := openDB(load)
			if err != nil {
				return err
			}
			defer closeDB()

			if err := app.Migrate(db); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema is up to date (%s)\n", cfg.Database.Driver)
			return nil
		},
	}
}
