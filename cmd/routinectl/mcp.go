package main

import (
	"context"
	"os/signal"
	"syscall"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/2beens/routinehub/internal/mcp"
	"github.com/2beens/routinehub/internal/ratings"
	"github.com/2beens/routinehub/internal/routines"
	"github.com/2beens/routinehub/internal/workouts"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP tool server over stdio",
	Long: `Run the routinehub MCP server over stdin/stdout for local MCP clients.
The same server is mounted by the service at /mcp (streamable HTTP).

CLIENT CONFIGURATION:

  {
    "mcpServers": {
      "routinehub": {
        "command": "routinectl",
        "args": ["mcp", "--env", "dev", "--config", "/path/to/config.toml"]
      }
    }
  }

TOOLS:

  get_routinehub_schema   tables and columns
  get_workout_stats       weekly workouts, total hours, streak of a user
  list_workout_records    recent workouts of a user
  search_routines         public routine catalog query
  get_routine             routine with creator and exercises
  get_routine_ratings     ratings of a routine, newest first`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		workoutsRepo := workouts.NewRepo(dbPool)
		server := mcp.NewServer(dbPool, mcp.Deps{
			Workouts: workoutsRepo,
			Stats:    workouts.NewStatsService(workoutsRepo, cfg.StatsLocation()),
			Routines: routines.NewRepo(dbPool),
			Ratings:  ratings.NewRepo(dbPool),
		})

		return runStdio(ctx, server)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runStdio(ctx context.Context, server *sdkmcp.Server) error {
	return server.Run(ctx, &sdkmcp.StdioTransport{})
}
