package mcp

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/routinehub/internal/routines"
)

const (
	defaultRecordsLimit = 20
	maxRecordsLimit     = 200
)

// Handler handles MCP tool requests: parses input, calls the service, formats the MCP result.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// GetSchemaTool returns the MCP tool handler for get_routinehub_schema.
func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

type UserInput struct {
	UserID string `json:"user_id" jsonschema:"RoutineHub user id"`
}

// GetWorkoutStatsTool returns the MCP tool handler for get_workout_stats.
func (h *Handler) GetWorkoutStatsTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		if in.UserID == "" {
			return errorResult("user_id is required"), nil, nil
		}
		stats, err := h.service.GetWorkoutStats(ctx, in.UserID)
		if err != nil {
			return errorResult("Error computing workout stats: " + err.Error()), nil, nil
		}
		return jsonResult(stats), nil, nil
	}
}

type WorkoutRecordsInput struct {
	UserID string `json:"user_id" jsonschema:"RoutineHub user id"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Max number of records, newest first (default 20, max 200)"`
}

// ListWorkoutRecordsTool returns the MCP tool handler for list_workout_records.
func (h *Handler) ListWorkoutRecordsTool() func(context.Context, *mcp.CallToolRequest, WorkoutRecordsInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutRecordsInput) (*mcp.CallToolResult, any, error) {
		if in.UserID == "" {
			return errorResult("user_id is required"), nil, nil
		}
		limit := in.Limit
		if limit <= 0 {
			limit = defaultRecordsLimit
		}
		limit = min(limit, maxRecordsLimit)

		records, err := h.service.ListWorkoutRecords(ctx, in.UserID, limit)
		if err != nil {
			return errorResult("Error listing workout records: " + err.Error()), nil, nil
		}
		return jsonResult(records), nil, nil
	}
}

type SearchRoutinesInput struct {
	BodyParts       []string `json:"body_parts,omitempty" jsonschema:"Any of: upper, lower, core, cardio, full"`
	Difficulty      string   `json:"difficulty,omitempty" jsonschema:"beginner, intermediate or advanced"`
	MinDuration     *int     `json:"min_duration,omitempty" jsonschema:"Minimum duration in minutes"`
	MaxDuration     *int     `json:"max_duration,omitempty" jsonschema:"Maximum duration in minutes"`
	EquipmentNeeded *bool    `json:"equipment_needed,omitempty" jsonschema:"Whether the routine needs equipment"`
	Search          string   `json:"search,omitempty" jsonschema:"Case-insensitive text in title or description"`
	Limit           int      `json:"limit,omitempty" jsonschema:"Max number of routines (default 20, max 100)"`
}

// query maps the tool input onto the catalog query parameters, so both
// surfaces share one validation path.
func (in SearchRoutinesInput) query() url.Values {
	q := url.Values{}
	if len(in.BodyParts) > 0 {
		q.Set("bodyParts", strings.Join(in.BodyParts, ","))
	}
	if in.Difficulty != "" {
		q.Set("difficulty", in.Difficulty)
	}
	if in.MinDuration != nil {
		q.Set("minDuration", strconv.Itoa(*in.MinDuration))
	}
	if in.MaxDuration != nil {
		q.Set("maxDuration", strconv.Itoa(*in.MaxDuration))
	}
	if in.EquipmentNeeded != nil {
		q.Set("equipmentNeeded", strconv.FormatBool(*in.EquipmentNeeded))
	}
	if in.Search != "" {
		q.Set("search", in.Search)
	}
	if in.Limit > 0 {
		q.Set("limit", strconv.Itoa(in.Limit))
	}
	return q
}

// SearchRoutinesTool returns the MCP tool handler for search_routines.
func (h *Handler) SearchRoutinesTool() func(context.Context, *mcp.CallToolRequest, SearchRoutinesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SearchRoutinesInput) (*mcp.CallToolResult, any, error) {
		filter, err := routines.ParseFilter(in.query())
		if err != nil {
			return errorResult("Invalid filter: " + err.Error()), nil, nil
		}
		list, err := h.service.SearchRoutines(ctx, filter)
		if err != nil {
			return errorResult("Error searching routines: " + err.Error()), nil, nil
		}
		if list == nil {
			list = []routines.Routine{}
		}
		return jsonResult(list), nil, nil
	}
}

type RoutineInput struct {
	RoutineID int `json:"routine_id" jsonschema:"Routine id"`
}

// GetRoutineTool returns the MCP tool handler for get_routine.
func (h *Handler) GetRoutineTool() func(context.Context, *mcp.CallToolRequest, RoutineInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in RoutineInput) (*mcp.CallToolResult, any, error) {
		if in.RoutineID <= 0 {
			return errorResult("routine_id must be a positive number"), nil, nil
		}
		routine, err := h.service.GetRoutine(ctx, in.RoutineID)
		if err != nil {
			return errorResult("Error fetching routine: " + err.Error()), nil, nil
		}
		return jsonResult(routine), nil, nil
	}
}

// GetRoutineRatingsTool returns the MCP tool handler for get_routine_ratings.
func (h *Handler) GetRoutineRatingsTool() func(context.Context, *mcp.CallToolRequest, RoutineInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in RoutineInput) (*mcp.CallToolResult, any, error) {
		if in.RoutineID <= 0 {
			return errorResult("routine_id must be a positive number"), nil, nil
		}
		list, err := h.service.GetRoutineRatings(ctx, in.RoutineID)
		if err != nil {
			return errorResult("Error fetching ratings: " + err.Error()), nil, nil
		}
		return jsonResult(list), nil, nil
	}
}
