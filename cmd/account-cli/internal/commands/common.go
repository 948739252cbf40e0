// Package commands implements the sub-commands of account-cli.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wisskirchenj/account-reactive/internal/infrastructure/persistence"
	"github.com/wisskirchenj/account-reactive/internal/pkg/config"
	"github.com/wisskirchenj/account-reactive/internal/pkg/logger"
	"gorm.io/gorm"
)

const configFlag = "config"

// NewRootCmd builds the account-cli command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "account-cli",
		Short: "Database tooling for the account service",
		Long: `account-cli works directly on the database of the account service.
It reads the same configuration file as the REST server; every setting can be
overridden by an ACCOUNT_* environment variable, e.g. ACCOUNT_DATABASE_DSN.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String(configFlag, os.Getenv("CONFIG_PATH"), "Path to the YAML configuration file")

	InitMigrateCommands(rootCmd)
	InitUserCommands(rootCmd)
	InitVersionCommands(rootCmd)
	return rootCmd
}

// loadConfig reads the configuration named by the --config flag.
func loadConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	path, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", configFlag, err)
	}
	return config.InitializeRestConfig(path)
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// openDatabase connects to the configured database. The caller closes it.
func openDatabase(cmd *cobra.Command) (*gorm.DB, logger.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	log, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, nil, err
	}

	db, err := persistence.NewDBConnection(cfg.Database, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}
	return db, log, nil
}
