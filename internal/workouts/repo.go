package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/routinehub/internal/db"
	"github.com/2beens/routinehub/internal/telemetry/tracing"
	"github.com/2beens/routinehub/pkg"
)

var (
	ErrWorkoutRecordNotFound = errors.New("workout record not found")
	ErrNotOwner              = errors.New("not the workout owner")
)

const recordColumns = `w.id, w.user_id, w.routine_id, w.date, w.duration, COALESCE(w.notes, ''), w.completed, w.created_at`

func recordScanDest(w *WorkoutRecord) []any {
	return []any{&w.ID, &w.UserID, &w.RoutineID, &w.Date, &w.Duration, &w.Notes, &w.Completed, &w.CreatedAt}
}

const exerciseRecordColumns = `e.id, e.workout_record_id, e.exercise_id, e.exercise_name, e.sets, e.reps,
	e.weight::text, e.duration, e.created_at`

func exerciseRecordScanDest(e *ExerciseRecord) []any {
	return []any{
		&e.ID, &e.WorkoutRecordID, &e.ExerciseID, &e.ExerciseName, &e.Sets, &e.Reps,
		&e.Weight, &e.Duration, &e.CreatedAt,
	}
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// CreateRecord logs a workout. Records are never updated afterwards.
func (r *Repo) CreateRecord(ctx context.Context, userID string, params RecordParams) (_ *WorkoutRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.record.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	date := time.Now()
	if params.Date != nil {
		date = *params.Date
	}
	completed := true
	if params.Completed != nil {
		completed = *params.Completed
	}

	var record WorkoutRecord
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_records AS w (user_id, routine_id, date, duration, notes, completed)
			VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
		RETURNING `+recordColumns,
		userID, params.RoutineID, date, params.Duration, params.Notes, completed,
	).Scan(recordScanDest(&record)...)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) && params.RoutineID != nil {
			return nil, pkg.NewValidationError("routine %d does not exist", *params.RoutineID)
		}
		return nil, fmt.Errorf("insert workout record: %w", err)
	}

	span.SetAttributes(attribute.Int("record.id", record.ID))
	return &record, nil
}

// ListRecords returns the user's most recent workouts first.
func (r *Repo) ListRecords(ctx context.Context, userID string, limit int) (_ []WorkoutRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.record.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+recordColumns+` FROM workout_records w
		WHERE w.user_id = $1
		ORDER BY w.date DESC, w.id DESC
		LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []WorkoutRecord
	for rows.Next() {
		var record WorkoutRecord
		if err := rows.Scan(recordScanDest(&record)...); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// StatRecords loads date and duration of all of the user's workouts.
func (r *Repo) StatRecords(ctx context.Context, userID string) (_ []StatRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.statrecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT date, duration FROM workout_records WHERE user_id = $1 ORDER BY date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []StatRecord
	for rows.Next() {
		var record StatRecord
		if err := rows.Scan(&record.Date, &record.Duration); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("records.count", len(records)))
	return records, nil
}

func checkRecordOwner(ctx context.Context, q pgx.Tx, workoutRecordID int, userID string) error {
	var owner string
	err := q.QueryRow(ctx, `SELECT user_id FROM workout_records WHERE id = $1`, workoutRecordID).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrWorkoutRecordNotFound
		}
		return err
	}
	if owner != userID {
		return ErrNotOwner
	}
	return nil
}

func (r *Repo) CreateExerciseRecord(ctx context.Context, userID string, params ExerciseRecordParams) (_ *ExerciseRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exerciserecord.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_record.id", params.WorkoutRecordID))

	var record ExerciseRecord
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := checkRecordOwner(ctx, tx, params.WorkoutRecordID, userID); err != nil {
			return err
		}
		return tx.QueryRow(
			ctx,
			`INSERT INTO exercise_records AS e
				(workout_record_id, exercise_id, exercise_name, sets, reps, weight, duration)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+exerciseRecordColumns,
			params.WorkoutRecordID, params.ExerciseID, params.ExerciseName, params.Sets, params.Reps,
			params.Weight, params.Duration,
		).Scan(exerciseRecordScanDest(&record)...)
	})
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, pkg.NewValidationError("exercise does not exist")
		}
		return nil, err
	}

	return &record, nil
}

func (r *Repo) ListExerciseRecords(ctx context.Context, userID string, workoutRecordID int) (_ []ExerciseRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exerciserecord.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_record.id", workoutRecordID))

	var records []ExerciseRecord
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := checkRecordOwner(ctx, tx, workoutRecordID, userID); err != nil {
			return err
		}

		rows, err := tx.Query(
			ctx,
			`SELECT `+exerciseRecordColumns+` FROM exercise_records e
			WHERE e.workout_record_id = $1
			ORDER BY e.id`,
			workoutRecordID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var record ExerciseRecord
			if err := rows.Scan(exerciseRecordScanDest(&record)...); err != nil {
				return fmt.Errorf("rows scan: %w", err)
			}
			records = append(records, record)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}
