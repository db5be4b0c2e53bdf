package cmd

import (
	"context"
	"fmt"

	"country-currency/core/database"
	"country-currency/feature/countries/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the schema and verifies the result.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long:  `Runs the schema migration for the countries and metadata tables and checks that every expected column exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// bootstrap migrates before returning.
		c, err := bootstrap(context.Background())
		if err != nil {
			return err
		}
		defer c.close()

		missing, err := database.MissingColumns(c.db, models.Country{}.TableName(), models.RequiredColumns)
		if err != nil {
			return fmt.Errorf("failed to inspect schema: %w", err)
		}
		if len(missing) > 0 {
			return fmt.Errorf("table %s is missing columns %v", models.Country{}.TableName(), missing)
		}

		c.logger.Info("Schema up to date",
			zap.String("driver", c.cfg.Database.Driver),
			zap.Strings("tables", []string{models.Country{}.TableName(), models.Metadata{}.TableName()}))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
