package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/2beens/routinehub/internal/community"
	"github.com/2beens/routinehub/internal/ratings"
	"github.com/2beens/routinehub/internal/routines"
	"github.com/2beens/routinehub/internal/saves"
	"github.com/2beens/routinehub/internal/seed"
	"github.com/2beens/routinehub/internal/trainers"
	"github.com/2beens/routinehub/internal/users"
	"github.com/2beens/routinehub/internal/workouts"
)

var seedOpts seed.Options

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the database with generated demo data",
	Long: `Generate demo users, trainers, routines with exercises, workout logs,
ratings, saves, posts and comments. Data is written through the regular
repositories, so routine ratings and save counts are consistent.

Users get stable ids (seed-user-001, ...), running seed twice updates the
users and adds another batch of routines and activity.

EXAMPLES:

  routinectl seed
  routinectl seed --users 50 --trainers 8 --routines 5 --seed 7`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		routinesRepo := routines.NewRepo(dbPool)
		summary, err := seed.Run(cmd.Context(), seed.Repos{
			Users:     users.NewRepo(dbPool),
			Trainers:  trainers.NewRepo(dbPool),
			Routines:  routinesRepo,
			Workouts:  workouts.NewRepo(dbPool),
			Ratings:   ratings.NewRepo(dbPool),
			Saves:     saves.NewRepo(dbPool, routinesRepo),
			Community: community.NewRepo(dbPool),
		}, seedOpts)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}

		color.New(color.FgGreen, color.Bold).Fprintln(cmd.OutOrStdout(), "seeded")
		fmt.Fprintln(cmd.OutOrStdout(), summary)
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedOpts.Users, "users", 12, "number of users")
	seedCmd.Flags().IntVar(&seedOpts.Trainers, "trainers", 3, "how many of the users are trainers")
	seedCmd.Flags().IntVar(&seedOpts.RoutinesPerTrainer, "routines", 4, "routines per trainer")
	seedCmd.Flags().IntVar(&seedOpts.WorkoutsPerUser, "workouts", 10, "workout records per user, spread over the last 4 weeks")
	seedCmd.Flags().Int64Var(&seedOpts.Seed, "seed", time.Now().UnixNano(), "random seed")
	rootCmd.AddCommand(seedCmd)
}
