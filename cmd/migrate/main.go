package main

import (
	"fmt"
	"os"

	"chalee-api/internal/config"
	"chalee-api/internal/database"
	"chalee-api/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dsn    string
		logger *zap.Logger
	)

	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the posts database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// An explicit --dsn does not need a valid environment
			production, level := false, "info"
			cfg, err := config.Load()
			switch {
			case err == nil:
				production, level = cfg.IsProduction(), cfg.LogLevel
				if dsn == "" {
					dsn = cfg.Database.DSN
				}
			case dsn == "":
				return err
			}
			if dsn == "" {
				return fmt.Errorf("no database DSN: set DB_DSN or pass --dsn")
			}
			logger, err = logging.New(production, level)
			return err
		},
	}
	cmd.PersistentFlags().StringVar(&dsn, "dsn", "", "postgres DSN, defaults to DB_DSN")

	withMigrator := func(fn func(*database.Migrator) error) error {
		mg, err := database.NewMigrator(dsn)
		if err != nil {
			return err
		}
		defer func() {
			if err := mg.Close(); err != nil {
				logger.Warn("failed to close migrator", zap.Error(err))
			}
		}()
		return fn(mg)
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withMigrator(func(mg *database.Migrator) error {
				if err := mg.Up(); err != nil {
					return err
				}
				return logVersion(logger, mg, "migrations applied")
			})
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1")
			}
			return withMigrator(func(mg *database.Migrator) error {
				if err := mg.Down(steps); err != nil {
					return err
				}
				return logVersion(logger, mg, "migrations rolled back")
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	version := &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return withMigrator(func(mg *database.Migrator) error {
				return logVersion(logger, mg, "schema version")
			})
		},
	}

	cmd.AddCommand(up, down, version)
	return cmd
}

func logVersion(logger *zap.Logger, mg *database.Migrator, msg string) error {
	v, dirty, err := mg.Version()
	if err != nil {
		return err
	}
	logger.Info(msg, zap.Uint("version", v), zap.Bool("dirty", dirty))
	return nil
}
