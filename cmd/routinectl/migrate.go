package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/2beens/routinehub/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long: `Apply the embedded schema. Every statement is idempotent, so running
migrate against an up to date database changes nothing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := db.Migrate(cmd.Context(), dbPool); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "schema applied")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
