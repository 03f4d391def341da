package migrate

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f1board/f1board/log"
	"github.com/f1board/f1board/pkg/cmd/cmdutil"
	"github.com/f1board/f1board/pkg/config"
	"github.com/f1board/f1board/pkg/db/migrate"
)

func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "performs database migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := cmdutil.SetupLogger(cmd.ErrOrStderr()); err != nil {
				return err
			}
			return startMigration(cmd)
		},
	}
	return cmd
}

func startMigration(cmd *cobra.Command) error {
	if config.DB == "" {
		return fmt.Errorf("no database configured (--db)")
	}
	if err := cmdutil.WaitForDB(cmd.Context()); err != nil {
		return fmt.Errorf("database not ready: %w", err)
	}

	dbURL := prepareURLForDB(config.DB)
	if err := migrate.MigrateDB(dbURL); err != nil {
		return err
	}
	version, dirty, err := migrate.Version(dbURL)
	if err != nil {
		return err
	}
	log.Info("Database migrated", log.Uint("version", version), log.Bool("dirty", dirty))
	return nil
}

func prepareURLForDB(url string) string {
	if strings.Contains(url, "sslmode=") {
		return url
	}
	options := "sslmode=disable"
	if strings.Contains(url, "?") {
		return fmt.Sprintf("%s&%s", url, options)
	}
	return fmt.Sprintf("%s?%s", url, options)
}
