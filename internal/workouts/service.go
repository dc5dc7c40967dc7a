package workouts

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/routinehub/internal/telemetry/tracing"
)

type statRecordsRepo interface {
	StatRecords(ctx context.Context, userID string) ([]StatRecord, error)
}

// StatsService computes workout statistics on demand; nothing is cached.
type StatsService struct {
	repo     statRecordsRepo
	location *time.Location
	nowFunc  func() time.Time
}

func NewStatsService(repo statRecordsRepo, location *time.Location) *StatsService {
	if location == nil {
		location = time.UTC
	}
	return &StatsService{
		repo:     repo,
		location: location,
		nowFunc:  time.Now,
	}
}

func (s *StatsService) Stats(ctx context.Context, userID string) (_ Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := s.repo.StatRecords(ctx, userID)
	if err != nil {
		return Stats{}, fmt.Errorf("load workout records of %s: %w", userID, err)
	}

	stats := ComputeStats(records, s.nowFunc(), s.location)
	span.SetAttributes(
		attribute.Int("stats.weekly", stats.WeeklyWorkouts),
		attribute.Int("stats.hours", stats.TotalHours),
		attribute.Int("stats.streak", stats.CurrentStreak),
	)

	return stats, nil
}
