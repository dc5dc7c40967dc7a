package trainers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/routinehub/internal/db"
	"github.com/2beens/routinehub/internal/telemetry/tracing"
	"github.com/2beens/routinehub/internal/users"
	"github.com/2beens/routinehub/pkg"
)

var (
	ErrTrainerNotFound = errors.New("trainer not found")
	ErrTrainerExists   = errors.New("trainer profile already exists")
)

const trainerColumns = `t.id, t.user_id, COALESCE(t.specialization, ''), COALESCE(t.bio, ''), t.certifications,
	t.experience_years, t.rating::text, t.total_students, t.verified, t.created_at`

func trainerScanDest(t *Trainer) []any {
	return []any{
		&t.ID, &t.UserID, &t.Specialization, &t.Bio, &t.Certifications,
		&t.ExperienceYears, &t.Rating, &t.TotalStudents, &t.Verified, &t.CreatedAt,
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

// Create adds the trainer profile and marks the user as a trainer.
func (r *Repo) Create(ctx context.Context, userID string, params CreateParams) (_ *Trainer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	certifications := params.Certifications
	if certifications == nil {
		certifications = []string{}
	}

	var trainer Trainer
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE users SET user_type = $1, updated_at = now() WHERE id = $2`, users.TypeTrainer, userID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return users.ErrUserNotFound
		}

		return tx.QueryRow(
			ctx,
			`INSERT INTO trainers AS t (user_id, specialization, bio, certifications, experience_years)
				VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5)
			RETURNING `+trainerColumns,
			userID, params.Specialization, params.Bio, certifications, params.ExperienceYears,
		).Scan(trainerScanDest(&trainer)...)
	})
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrTrainerExists
		}
		return nil, err
	}

	return &trainer, nil
}

func (r *Repo) Get(ctx context.Context, userID string) (_ *Trainer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	var trainer Trainer
	err = r.db.QueryRow(
		ctx,
		`SELECT `+trainerColumns+` FROM trainers t WHERE t.user_id = $1`,
		userID,
	).Scan(trainerScanDest(&trainer)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTrainerNotFound
		}
		return nil, err
	}

	return &trainer, nil
}

// List returns the top trainers with their users, best rated first.
func (r *Repo) List(ctx context.Context, limit int) (_ []Trainer, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+trainerColumns+`, `+users.Columns("u")+`
		FROM trainers t
		JOIN users u ON u.id = t.user_id
		ORDER BY t.rating DESC, t.total_students DESC, t.id
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainers []Trainer
	for rows.Next() {
		var (
			trainer Trainer
			user    users.User
		)
		if err := rows.Scan(append(trainerScanDest(&trainer), user.ScanDest()...)...); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		trainer.User = &user
		trainers = append(trainers, trainer)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return trainers, nil
}

func (r *Repo) SetVerified(ctx context.Context, userID string, verified bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.trainers.setverified")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))
	span.SetAttributes(attribute.Bool("verified", verified))

	tag, err := r.db.Exec(ctx, `UPDATE trainers SET verified = $1 WHERE user_id = $2`, verified, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTrainerNotFound
	}
	return nil
}
