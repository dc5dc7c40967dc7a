package main

import (
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/2beens/routinehub/internal/config"
	"github.com/2beens/routinehub/internal/db"
	"github.com/2beens/routinehub/internal/logging"
)

var (
	envFlag    string
	configPath string

	cfg    *config.Config
	dbPool *pgxpool.Pool
)

var rootCmd = &cobra.Command{
	Use:   "routinectl",
	Short: "routinehub operator tool",
	Long: `routinectl talks directly to the routinehub database.

COMMANDS:

  migrate           apply the schema
  seed              fill the database with generated demo data
  stats <userId>    print a user's workout statistics
  mcp               run the MCP tool server over stdio

The database is taken from the TOML config (--config, --env); the postgres
password from ROUTINEHUB_POSTGRES_PASS, optionally set in a .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load(envFlag, configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		config.LoadEnvFiles(configPath)
		secrets := config.SecretsFromEnv()

		// stdout is reserved for command output (and the MCP stdio transport)
		log.SetOutput(os.Stderr)
		log.SetLevel(logging.GetLevel(cfg.LogLevel))

		dbPool, err = db.NewDBPool(cmd.Context(), db.NewDBPoolParams{
			DBHost:     cfg.PostgresHost,
			DBPort:     cfg.PostgresPort,
			DBName:     cfg.PostgresDBName,
			DBUser:     cfg.PostgresUser,
			DBPassword: secrets.PostgresPassword,
			MaxConns:   cfg.PostgresMaxConns,
		})
		if err != nil {
			return fmt.Errorf("db pool: %w", err)
		}
		log.Debugf("connected to %s:%s/%s", cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresDBName)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if dbPool != nil {
			dbPool.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFlag, "env", "development", "environment [prod | production | dev | development | ddev | dockerdev]")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config.toml", "path for the TOML config file")
}
