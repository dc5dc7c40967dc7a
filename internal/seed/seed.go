// Package seed fills a routinehub database with generated demo data. All
// writes go through the regular repositories, so derived routine fields
// (rating, totals) end up the same as with real traffic.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/routinehub/internal/community"
	"github.com/2beens/routinehub/internal/ratings"
	"github.com/2beens/routinehub/internal/routines"
	"github.com/2beens/routinehub/internal/trainers"
	"github.com/2beens/routinehub/internal/users"
	"github.com/2beens/routinehub/internal/workouts"
)

type UsersRepo interface {
	Upsert(ctx context.Context, identity users.Identity) (*users.User, error)
}

type TrainersRepo interface {
	Create(ctx context.Context, userID string, params trainers.CreateParams) (*trainers.Trainer, error)
}

type RoutinesRepo interface {
	Create(ctx context.Context, creatorID string, params routines.CreateParams) (*routines.Routine, error)
	CreateExercise(ctx context.Context, creatorID string, params routines.ExerciseParams) (*routines.Exercise, error)
}

type WorkoutsRepo interface {
	CreateRecord(ctx context.Context, userID string, params workouts.RecordParams) (*workouts.WorkoutRecord, error)
}

type RatingsRepo interface {
	Create(ctx context.Context, userID string, params ratings.CreateParams) (*ratings.Rating, ratings.Aggregate, error)
}

type SavesRepo interface {
	Save(ctx context.Context, userID string, routineID int) (int, error)
}

type CommunityRepo interface {
	CreatePost(ctx context.Context, userID string, params community.PostParams) (*community.Post, error)
	CreateComment(ctx context.Context, userID string, params community.CommentParams) (*community.Comment, error)
}

type Repos struct {
	Users     UsersRepo
	Trainers  TrainersRepo
	Routines  RoutinesRepo
	Workouts  WorkoutsRepo
	Ratings   RatingsRepo
	Saves     SavesRepo
	Community CommunityRepo
}

type Options struct {
	Users              int
	Trainers           int // the first N users become trainers
	RoutinesPerTrainer int
	WorkoutsPerUser    int
	Seed               int64
	Now                time.Time
}

type Summary struct {
	Users     int
	Trainers  int
	Routines  int
	Exercises int
	Workouts  int
	Ratings   int
	Saves     int
	Posts     int
	Comments  int
}

func (s Summary) String() string {
	return fmt.Sprintf(
		"users=%d trainers=%d routines=%d exercises=%d workouts=%d ratings=%d saves=%d posts=%d comments=%d",
		s.Users, s.Trainers, s.Routines, s.Exercises, s.Workouts, s.Ratings, s.Saves, s.Posts, s.Comments,
	)
}

var exerciseNames = map[string][]string{
	"upper":  {"Push-ups", "Pull-ups", "Dips", "Overhead Press", "Bent-over Row"},
	"lower":  {"Squats", "Lunges", "Deadlift", "Calf Raises", "Glute Bridge"},
	"core":   {"Plank", "Dead Bug", "Russian Twist", "Hanging Leg Raise"},
	"cardio": {"Burpees", "Jumping Jacks", "Mountain Climbers", "High Knees", "Jump Rope"},
	"full":   {"Kettlebell Swing", "Thrusters", "Turkish Get-up", "Clean and Press"},
}

var specializations = []string{"Strength", "Mobility", "HIIT", "Calisthenics", "Endurance", "Rehab"}

type seeder struct {
	repos   Repos
	opts    Options
	faker   *gofakeit.Faker
	summary Summary
}

// Run generates the demo data. The same seed always produces the same data set.
func Run(ctx context.Context, repos Repos, opts Options) (Summary, error) {
	if opts.Users <= 0 {
		return Summary{}, fmt.Errorf("users must be positive, got %d", opts.Users)
	}
	if opts.Trainers > opts.Users {
		opts.Trainers = opts.Users
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	s := &seeder{
		repos: repos,
		opts:  opts,
		faker: gofakeit.New(opts.Seed),
	}
	err := s.run(ctx)
	return s.summary, err
}

func (s *seeder) run(ctx context.Context) error {
	userIDs, err := s.seedUsers(ctx)
	if err != nil {
		return err
	}

	var routineIDs []int
	for _, trainerID := range userIDs[:s.opts.Trainers] {
		if err := s.seedTrainer(ctx, trainerID); err != nil {
			return err
		}
		for i := 0; i < s.opts.RoutinesPerTrainer; i++ {
			routine, err := s.seedRoutine(ctx, trainerID)
			if err != nil {
				return err
			}
			routineIDs = append(routineIDs, routine.ID)
		}
	}

	for _, userID := range userIDs {
		if err := s.seedActivity(ctx, userID, routineIDs); err != nil {
			return err
		}
	}

	if err := s.seedCommunity(ctx, userIDs); err != nil {
		return err
	}

	log.Debugf("seed done: %s", s.summary)
	return nil
}

func (s *seeder) seedUsers(ctx context.Context) ([]string, error) {
	userIDs := make([]string, 0, s.opts.Users)
	for i := 0; i < s.opts.Users; i++ {
		id := fmt.Sprintf("seed-user-%03d", i+1)
		firstName := s.faker.FirstName()
		lastName := s.faker.LastName()
		_, err := s.repos.Users.Upsert(ctx, users.Identity{
			ID:              id,
			Email:           fmt.Sprintf("%s.%s.%d@example.com", firstName, lastName, i+1),
			FirstName:       firstName,
			LastName:        lastName,
			ProfileImageURL: "https://i.pravatar.cc/150?u=" + id,
		})
		if err != nil {
			return nil, fmt.Errorf("upsert user %s: %w", id, err)
		}
		userIDs = append(userIDs, id)
	}
	s.summary.Users = len(userIDs)
	return userIDs, nil
}

func (s *seeder) seedTrainer(ctx context.Context, userID string) error {
	experience := s.faker.Number(1, 20)
	_, err := s.repos.Trainers.Create(ctx, userID, trainers.CreateParams{
		Specialization:  s.faker.RandomString(specializations),
		Bio:             s.faker.Sentence(20),
		Certifications:  []string{s.faker.RandomString([]string{"NASM-CPT", "ACE", "ISSA", "CSCS"})},
		ExperienceYears: &experience,
	})
	if err != nil {
		return fmt.Errorf("create trainer %s: %w", userID, err)
	}
	s.summary.Trainers++
	return nil
}

func (s *seeder) seedRoutine(ctx context.Context, creatorID string) (*routines.Routine, error) {
	bodyPart := s.faker.RandomString(routines.BodyParts)
	bodyParts := []string{bodyPart}
	if extra := s.faker.RandomString(routines.BodyParts); extra != bodyPart {
		bodyParts = append(bodyParts, extra)
	}

	isPublic := s.faker.Number(1, 10) <= 9
	routine, err := s.repos.Routines.Create(ctx, creatorID, routines.CreateParams{
		Title:           fmt.Sprintf("%s %s", s.faker.RandomString([]string{"Morning", "Quick", "Power", "Daily", "Weekend"}), exerciseNames[bodyPart][0]),
		Description:     s.faker.Sentence(15),
		BodyParts:       bodyParts,
		Difficulty:      s.faker.RandomString(routines.Difficulties),
		Duration:        s.faker.Number(10, 90),
		EquipmentNeeded: s.faker.Bool(),
		IsPublic:        &isPublic,
	})
	if err != nil {
		return nil, fmt.Errorf("create routine for %s: %w", creatorID, err)
	}
	s.summary.Routines++

	for i, name := range exerciseNames[bodyPart] {
		sets := s.faker.Number(2, 5)
		reps := s.faker.Number(6, 20)
		rest := s.faker.Number(30, 120)
		if _, err := s.repos.Routines.CreateExercise(ctx, creatorID, routines.ExerciseParams{
			RoutineID:  routine.ID,
			Name:       name,
			Sets:       &sets,
			Reps:       &reps,
			RestTime:   &rest,
			OrderIndex: i,
		}); err != nil {
			return nil, fmt.Errorf("create exercise for routine %d: %w", routine.ID, err)
		}
		s.summary.Exercises++
	}

	return routine, nil
}

// seedActivity logs workouts over the last weeks and lets the user rate and
// save some routines. Each user rates a routine at most once.
func (s *seeder) seedActivity(ctx context.Context, userID string, routineIDs []int) error {
	for i := 0; i < s.opts.WorkoutsPerUser; i++ {
		date := s.opts.Now.AddDate(0, 0, -s.faker.Number(0, 28))
		duration := s.faker.Number(15, 90)
		completed := true
		params := workouts.RecordParams{
			Date:      &date,
			Duration:  &duration,
			Completed: &completed,
		}
		if len(routineIDs) > 0 {
			routineID := routineIDs[s.faker.Number(0, len(routineIDs)-1)]
			params.RoutineID = &routineID
		}
		if _, err := s.repos.Workouts.CreateRecord(ctx, userID, params); err != nil {
			return fmt.Errorf("create workout record for %s: %w", userID, err)
		}
		s.summary.Workouts++
	}

	for _, routineID := range routineIDs {
		if s.faker.Number(1, 10) <= 4 {
			if _, _, err := s.repos.Ratings.Create(ctx, userID, ratings.CreateParams{
				RoutineID: routineID,
				Rating:    s.faker.Number(ratings.MinRating, ratings.MaxRating),
				Review:    s.faker.Sentence(8),
			}); err != nil {
				return fmt.Errorf("rate routine %d by %s: %w", routineID, userID, err)
			}
			s.summary.Ratings++
		}
		if s.faker.Number(1, 10) <= 3 {
			if _, err := s.repos.Saves.Save(ctx, userID, routineID); err != nil {
				return fmt.Errorf("save routine %d by %s: %w", routineID, userID, err)
			}
			s.summary.Saves++
		}
	}

	return nil
}

func (s *seeder) seedCommunity(ctx context.Context, userIDs []string) error {
	for _, userID := range userIDs {
		post, err := s.repos.Community.CreatePost(ctx, userID, community.PostParams{
			Title:   s.faker.Sentence(4),
			Content: s.faker.Paragraph(1, 3, 12, " "),
			Type:    s.faker.RandomString([]string{community.PostTypeQuestion, community.PostTypeAchievement, community.PostTypeGeneral}),
		})
		if err != nil {
			return fmt.Errorf("create post by %s: %w", userID, err)
		}
		s.summary.Posts++

		commenter := userIDs[s.faker.Number(0, len(userIDs)-1)]
		if _, err := s.repos.Community.CreateComment(ctx, commenter, community.CommentParams{
			PostID:  post.ID,
			Content: s.faker.Sentence(10),
		}); err != nil {
			return fmt.Errorf("create comment on post %d: %w", post.ID, err)
		}
		s.summary.Comments++
	}
	return nil
}
