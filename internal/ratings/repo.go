package ratings

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
	"github.com/2beens/routinehub/internal/users"
	"github.com/2beens/routinehub/pkg"
)

var (
	ErrDuplicateRating = errors.New("routine already rated by this user")
	ErrRatingNotFound  = errors.New("rating not found")
)

const ratingColumns = `rr.id, rr.routine_id, rr.user_id, rr.rating, COALESCE(rr.review, ''), rr.created_at`

func ratingScanDest(rt *Rating) []any {
	return []any{&rt.ID, &rt.RoutineID, &rt.UserID, &rt.Rating, &rt.Review, &rt.CreatedAt}
}

var userColumns = users.Columns("u")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Create stores the user's single rating of a routine and recomputes the
// routine's average and count in the same transaction. The routine row stays
// locked until commit, so concurrent raters of one routine are serialized.
func (r *Repo) Create(ctx context.Context, userID string, params CreateParams) (_ *Rating, _ Aggregate, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.ratings.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.Int("routine.id", params.RoutineID),
	)

	if params.Rating < MinRating || params.Rating > MaxRating {
		return nil, Aggregate{}, pkg.NewValidationError("rating must be between %d and %d", MinRating, MaxRating)
	}

	var (
		rating Rating
		agg    Aggregate
	)
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var routineID int
		err := tx.QueryRow(ctx, `SELECT id FROM routines WHERE id = $1 FOR UPDATE`, params.RoutineID).Scan(&routineID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return routines.ErrRoutineNotFound
			}
			return err
		}

		var exists bool
		err = tx.QueryRow(
			ctx,
			`SELECT EXISTS (SELECT 1 FROM routine_ratings WHERE routine_id = $1 AND user_id = $2)`,
			params.RoutineID, userID,
		).Scan(&exists)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateRating
		}

		err = tx.QueryRow(
			ctx,
			`INSERT INTO routine_ratings AS rr (routine_id, user_id, rating, review)
				VALUES ($1, $2, $3, NULLIF($4, ''))
			RETURNING `+ratingColumns,
			params.RoutineID, userID, params.Rating, params.Review,
		).Scan(ratingScanDest(&rating)...)
		if err != nil {
			if pkg.IsUniqueViolationError(err) {
				return ErrDuplicateRating
			}
			return fmt.Errorf("insert rating: %w", err)
		}

		var sum int
		err = tx.QueryRow(
			ctx,
			`SELECT COALESCE(SUM(rating), 0), COUNT(*) FROM routine_ratings WHERE routine_id = $1`,
			params.RoutineID,
		).Scan(&sum, &agg.Count)
		if err != nil {
			return fmt.Errorf("aggregate ratings: %w", err)
		}
		agg.Average = Average(sum, agg.Count)

		_, err = tx.Exec(
			ctx,
			`UPDATE routines SET rating = $2::numeric, total_ratings = $3 WHERE id = $1`,
			params.RoutineID, agg.Average, agg.Count,
		)
		return err
	})
	if err != nil {
		return nil, Aggregate{}, err
	}

	span.SetAttributes(attribute.Int("rating.id", rating.ID))
	return &rating, agg, nil
}

// ListByRoutine returns the routine's ratings with their authors, newest first.
func (r *Repo) ListByRoutine(ctx context.Context, routineID int) (_ []Rating, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.ratings.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", routineID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+ratingColumns+`, `+userColumns+`
		FROM routine_ratings rr
		JOIN users u ON u.id = rr.user_id
		WHERE rr.routine_id = $1
		ORDER BY rr.created_at DESC, rr.id DESC`,
		routineID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []Rating
	for rows.Next() {
		var (
			rating Rating
			user   users.User
		)
		if err := rows.Scan(append(ratingScanDest(&rating), user.ScanDest()...)...); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		rating.User = &user
		ratings = append(ratings, rating)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ratings, nil
}

func (r *Repo) GetUserRating(ctx context.Context, routineID int, userID string) (_ *Rating, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.ratings.get_user_rating")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.Int("routine.id", routineID),
	)

	var rating Rating
	err = r.db.QueryRow(
		ctx,
		`SELECT `+ratingColumns+` FROM routine_ratings rr WHERE rr.routine_id = $1 AND rr.user_id = $2`,
		routineID, userID,
	).Scan(ratingScanDest(&rating)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}

	return &rating, nil
}
