package saves

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/routinehub/internal/db"
	"github.com/2beens/routinehub/internal/routines"
	"github.com/2beens/routinehub/internal/telemetry/tracing"
)

type exercisesLoader interface {
	WithExercises(ctx context.Context, list []routines.Routine) error
}

type Repo struct {
	db        *pgxpool.Pool
	exercises exercisesLoader
}

func NewRepo(db *pgxpool.Pool, exercises exercisesLoader) *Repo {
	return &Repo{
		db:        db,
		exercises: exercises,
	}
}

// Save bookmarks the routine for the user. Saving twice is a no-op.
// The returned count is the routine's total saves after the change.
func (r *Repo) Save(ctx context.Context, userID string, routineID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.saves.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.Int("routine.id", routineID),
	)

	return r.mutate(ctx, routineID, func(tx pgx.Tx) error {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO saved_routines (user_id, routine_id) VALUES ($1, $2)
			ON CONFLICT (user_id, routine_id) DO NOTHING`,
			userID, routineID,
		)
		return err
	})
}

// Unsave removes the bookmark. Removing an absent bookmark is not an error.
func (r *Repo) Unsave(ctx context.Context, userID string, routineID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.saves.unsave")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.Int("routine.id", routineID),
	)

	return r.mutate(ctx, routineID, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `DELETE FROM saved_routines WHERE user_id = $1 AND routine_id = $2`, userID, routineID)
		return err
	})
}

// mutate runs change with the routine row locked, then writes the recounted
// total_saves back to the routine.
func (r *Repo) mutate(ctx context.Context, routineID int, change func(tx pgx.Tx) error) (int, error) {
	var totalSaves int
	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var id int
		err := tx.QueryRow(ctx, `SELECT id FROM routines WHERE id = $1 FOR UPDATE`, routineID).Scan(&id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return routines.ErrRoutineNotFound
			}
			return err
		}

		if err := change(tx); err != nil {
			return err
		}

		return tx.QueryRow(
			ctx,
			`UPDATE routines SET total_saves = (SELECT COUNT(*) FROM saved_routines WHERE routine_id = $1)
			WHERE id = $1
			RETURNING total_saves`,
			routineID,
		).Scan(&totalSaves)
	})
	if err != nil {
		return 0, err
	}
	return totalSaves, nil
}

// List returns the routines the user saved, most recently saved first.
func (r *Repo) List(ctx context.Context, userID string) (_ []routines.Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.saves.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+routines.SelectColumns()+`
		FROM saved_routines s
		JOIN routines r ON r.id = s.routine_id
		JOIN users u ON u.id = r.creator_id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC, s.id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	saved, err := routines.ScanRows(rows)
	if err != nil {
		return nil, fmt.Errorf("scan saved routines: %w", err)
	}

	if err := r.exercises.WithExercises(ctx, saved); err != nil {
		return nil, err
	}

	return saved, nil
}

func (r *Repo) IsSaved(ctx context.Context, userID string, routineID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.saves.is_saved")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.Int("routine.id", routineID),
	)

	var saved bool
	err = r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM saved_routines WHERE user_id = $1 AND routine_id = $2)`,
		userID, routineID,
	).Scan(&saved)
	if err != nil {
		return false, err
	}

	return saved, nil
}
