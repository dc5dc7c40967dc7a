package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/2beens/routinehub/internal/workouts"
)

var statsCmd = &cobra.Command{
	Use:   "stats <userId>",
	Short: "Print a user's workout statistics",
	Long: `Print the weekly workout count, total hours and current streak of a user,
computed the same way as GET /api/workout-stats. Calendar days are cut in the
configured stats_timezone.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		statsService := workouts.NewStatsService(workouts.NewRepo(dbPool), cfg.StatsLocation())
		stats, err := statsService.Stats(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("stats for %s: %w", args[0], err)
		}
		printStats(cmd.OutOrStdout(), args[0], stats)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func printStats(w io.Writer, userID string, stats workouts.Stats) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	bold.Fprintf(w, "workout stats for %s\n", userID)
	fmt.Fprintf(w, "  %s %d\n", faint.Sprint("workouts this week:"), stats.WeeklyWorkouts)
	fmt.Fprintf(w, "  %s %d\n", faint.Sprint("total hours:       "), stats.TotalHours)

	streak := color.New(color.FgYellow)
	if stats.CurrentStreak > 0 {
		streak = color.New(color.FgGreen, color.Bold)
	}
	fmt.Fprintf(w, "  %s %s\n", faint.Sprint("current streak:    "), streak.Sprintf("%d days", stats.CurrentStreak))
}
