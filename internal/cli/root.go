package cli

import (
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/app"
	"github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/config"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// ConfigLoader is config.Load in production; tests swap it.
type ConfigLoader func() (*config.Config, error)

// NewRootCmd builds vactl, the operator CLI for schema and data chores.
func NewRootCmd(load ConfigLoader) *cobra.Command {
	root := &cobra.Command{
		Use:           "vactl",
		Short:         "Operator tooling for the VA reports backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(load),
		newCreateUserCmd(load),
		newWeeklyReportCmd(load),
	)
	return root
}

// openDB loads the config and connects, returning the config alongside so
// commands can read attendance settings.
func openDB(load ConfigLoader) (*config.Config, *gorm.DB, func(), error) {
	cfg, err := load()
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := app.OpenDatabase(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, db, func() { _ = sqlDB.Close() }, nil
}
