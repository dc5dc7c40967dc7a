package mcp

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Deps struct {
	Workouts WorkoutsRepo
	Stats    StatsService
	Routines RoutinesRepo
	Ratings  RatingsRepo
}

// NewServer builds the MCP server with the routinehub tools. It is mounted
// at /mcp by the service and run over stdio by routinectl.
func NewServer(pool *pgxpool.Pool, deps Deps) *mcp.Server {
	svc := NewContextService(NewPoolSchemaRepo(pool), deps.Workouts, deps.Stats, deps.Routines, deps.Ratings)
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "routinehub",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_routinehub_schema",
		Description: "Returns the DB schema of the routinehub tables (users, trainers, routines, exercises, workout and exercise records, ratings, saves, posts, comments): columns, types, nullable, default.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_stats",
		Description: "Returns a user's workouts in the last 7 days, total hours trained and current daily streak. Arg: user_id.",
	}, h.GetWorkoutStatsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_workout_records",
		Description: "Returns a user's most recent workout records (date, duration, routine, notes). Args: user_id; optional: limit.",
	}, h.ListWorkoutRecordsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "search_routines",
		Description: "Searches the public routine catalog ordered by rating and saves. Optional filters: body_parts (any of), difficulty, min_duration, max_duration, equipment_needed, search, limit.",
	}, h.SearchRoutinesTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_routine",
		Description: "Returns one routine with its creator and ordered exercises. Arg: routine_id.",
	}, h.GetRoutineTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_routine_ratings",
		Description: "Returns the ratings and reviews of a routine with their authors, newest first. Arg: routine_id.",
	}, h.GetRoutineRatingsTool())

	return s
}
