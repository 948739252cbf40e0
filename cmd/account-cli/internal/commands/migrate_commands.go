package commands

import (
	"github.com/spf13/cobra"
	"github.com/wisskirchenj/account-reactive/internal/infrastructure/persistence"
)

// InitMigrateCommands registers the schema migration command
func InitMigrateCommands(rootCmd *cobra.Command) {
	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema and seed the system roles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, log, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = persistence.CloseDB(db) }()

			if err := persistence.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			log.Info("Database migrations completed successfully")
			return nil
		},
	}
	rootCmd.AddCommand(migrateCmd)
}
