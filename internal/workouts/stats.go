package workouts

import (
	"math"
	"slices"
	"time"
)

const (
	statsWeek        = 7 * 24 * time.Hour
	streakWindowSize = 30
)

// ComputeStats derives the workout statistics of one user from all of their records.
//
// Weekly workouts are records dated within [now-7d, now]. Total hours is the
// rounded sum of durations. The streak counts consecutive calendar days (in loc)
// with at least one workout, ending today, looking at the 30 most recent records.
func ComputeStats(records []StatRecord, now time.Time, loc *time.Location) Stats {
	if loc == nil {
		loc = time.UTC
	}

	var stats Stats
	weekAgo := now.Add(-statsWeek)
	totalMinutes := 0
	for _, rec := range records {
		if !rec.Date.Before(weekAgo) && !rec.Date.After(now) {
			stats.WeeklyWorkouts++
		}
		if rec.Duration != nil {
			totalMinutes += *rec.Duration
		}
	}
	stats.TotalHours = int(math.Round(float64(totalMinutes) / 60))
	stats.CurrentStreak = currentStreak(records, now, loc)

	return stats
}

func currentStreak(records []StatRecord, now time.Time, loc *time.Location) int {
	recent := slices.Clone(records)
	slices.SortStableFunc(recent, func(a, b StatRecord) int {
		return b.Date.Compare(a.Date)
	})
	if len(recent) > streakWindowSize {
		recent = recent[:streakWindowSize]
	}

	today := calendarDay(now, loc)
	streak, expected := 0, 0
	for _, rec := range recent {
		daysDiff := int(today.Sub(calendarDay(rec.Date, loc)).Hours() / 24)
		switch {
		case daysDiff == expected:
			streak++
			expected++
		case daysDiff < expected:
			// same day as an already counted record, or a future date
			continue
		default:
			return streak
		}
	}

	return streak
}

// calendarDay maps t to midnight UTC of its calendar date in loc,
// so day differences are whole multiples of 24h regardless of DST.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
