package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/routinehub/internal/ratings"
	"github.com/2beens/routinehub/internal/routines"
	"github.com/2beens/routinehub/internal/workouts"
)

type WorkoutsRepo interface {
	ListRecords(ctx context.Context, userID string, limit int) ([]workouts.WorkoutRecord, error)
}

type StatsService interface {
	Stats(ctx context.Context, userID string) (workouts.Stats, error)
}

type RoutinesRepo interface {
	List(ctx context.Context, filter routines.Filter) ([]routines.Routine, error)
	Get(ctx context.Context, id int) (*routines.Routine, error)
}

type RatingsRepo interface {
	ListByRoutine(ctx context.Context, routineID int) ([]ratings.Rating, error)
}

// contextService is what the tool Handler needs; kept small for tests.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	GetWorkoutStats(ctx context.Context, userID string) (workouts.Stats, error)
	ListWorkoutRecords(ctx context.Context, userID string, limit int) ([]workouts.WorkoutRecord, error)
	SearchRoutines(ctx context.Context, filter routines.Filter) ([]routines.Routine, error)
	GetRoutine(ctx context.Context, id int) (*routines.Routine, error)
	GetRoutineRatings(ctx context.Context, routineID int) ([]ratings.Rating, error)
}

type ContextService struct {
	schema   SchemaRepo
	workouts WorkoutsRepo
	stats    StatsService
	routines RoutinesRepo
	ratings  RatingsRepo
}

func NewContextService(
	schemaRepo SchemaRepo,
	workoutsRepo WorkoutsRepo,
	stats StatsService,
	routinesRepo RoutinesRepo,
	ratingsRepo RatingsRepo,
) *ContextService {
	return &ContextService{
		schema:   schemaRepo,
		workouts: workoutsRepo,
		stats:    stats,
		routines: routinesRepo,
		ratings:  ratingsRepo,
	}
}

// GetSchema renders the routinehub tables as markdown, one section per table.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# RoutineHub DB Schema\n\nNo routinehub tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# RoutineHub DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(tableOrder, ", "))
	b.WriteString(" (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def))
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

func (s *ContextService) GetWorkoutStats(ctx context.Context, userID string) (workouts.Stats, error) {
	return s.stats.Stats(ctx, userID)
}

func (s *ContextService) ListWorkoutRecords(ctx context.Context, userID string, limit int) ([]workouts.WorkoutRecord, error) {
	return s.workouts.ListRecords(ctx, userID, limit)
}

func (s *ContextService) SearchRoutines(ctx context.Context, filter routines.Filter) ([]routines.Routine, error) {
	return s.routines.List(ctx, filter)
}

func (s *ContextService) GetRoutine(ctx context.Context, id int) (*routines.Routine, error) {
	return s.routines.Get(ctx, id)
}

func (s *ContextService) GetRoutineRatings(ctx context.Context, routineID int) ([]ratings.Rating, error) {
	return s.ratings.ListByRoutine(ctx, routineID)
}
