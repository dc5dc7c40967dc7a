package routines

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
)

var (
	ErrRoutineNotFound  = errors.New("routine not found")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrNotOwner         = errors.New("not the routine creator")
)

const routineColumns = `r.id, r.title, COALESCE(r.description, ''), r.body_parts, r.difficulty, r.duration,
	r.equipment_needed, r.creator_id, r.is_public, r.rating::text, r.total_ratings, r.total_saves,
	r.created_at, r.updated_at`

var creatorColumns = users.Columns("u")

func routineScanDest(r *Routine) []any {
	return []any{
		&r.ID, &r.Title, &r.Description, &r.BodyParts, &r.Difficulty, &r.Duration,
		&r.EquipmentNeeded, &r.CreatorID, &r.IsPublic, &r.Rating, &r.TotalRatings, &r.TotalSaves,
		&r.CreatedAt, &r.UpdatedAt,
	}
}

const exerciseColumns = `e.id, e.routine_id, e.name, COALESCE(e.description, ''), e.sets, e.reps, e.duration,
	e.rest_time, COALESCE(e.video_url, ''), COALESCE(e.image_url, ''), e.order_index, e.created_at`

func exerciseScanDest(e *Exercise) []any {
	return []any{
		&e.ID, &e.RoutineID, &e.Name, &e.Description, &e.Sets, &e.Reps, &e.Duration,
		&e.RestTime, &e.VideoURL, &e.ImageURL, &e.OrderIndex, &e.CreatedAt,
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

func (r *Repo) Create(ctx context.Context, creatorID string, params CreateParams) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("creator.id", creatorID))

	isPublic := true
	if params.IsPublic != nil {
		isPublic = *params.IsPublic
	}

	var routine Routine
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO routines AS r
			(title, description, body_parts, difficulty, duration, equipment_needed, creator_id, is_public)
			VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8)
		RETURNING `+routineColumns,
		params.Title, params.Description, params.BodyParts, params.Difficulty, params.Duration,
		params.EquipmentNeeded, creatorID, isPublic,
	).Scan(routineScanDest(&routine)...)
	if err != nil {
		return nil, fmt.Errorf("insert routine: %w", err)
	}

	span.SetAttributes(attribute.Int("routine.id", routine.ID))
	routine.Exercises = []Exercise{}
	return &routine, nil
}

// Get returns the routine with its creator and its exercises in order.
func (r *Repo) Get(ctx context.Context, id int) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", id))

	var (
		routine Routine
		creator users.User
	)
	err = r.db.QueryRow(
		ctx,
		`SELECT `+routineColumns+`, `+creatorColumns+`
		FROM routines r
		JOIN users u ON u.id = r.creator_id
		WHERE r.id = $1`,
		id,
	).Scan(append(routineScanDest(&routine), creator.ScanDest()...)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}
	routine.Creator = &creator

	exercisesByRoutine, err := r.exercisesOf(ctx, []int{id})
	if err != nil {
		return nil, err
	}
	routine.Exercises = exercisesByRoutine[id]
	if routine.Exercises == nil {
		routine.Exercises = []Exercise{}
	}

	return &routine, nil
}

// List runs the catalog query; each routine comes with its creator and exercises.
func (r *Repo) List(ctx context.Context, filter Filter) (_ []Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.StringSlice("body_parts", filter.BodyParts),
		attribute.String("difficulty", filter.Difficulty),
		attribute.String("search", filter.Search),
		attribute.Int("limit", filter.Limit),
		attribute.Int("offset", filter.Offset),
	)

	query, args := buildListQuery(filter)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	routines, err := ScanRows(rows)
	if err != nil {
		return nil, err
	}

	if err := r.WithExercises(ctx, routines); err != nil {
		return nil, err
	}

	return routines, nil
}

// WithExercises loads the exercises of all given routines in one query.
func (r *Repo) WithExercises(ctx context.Context, routines []Routine) error {
	ids := make([]int, 0, len(routines))
	for _, routine := range routines {
		ids = append(ids, routine.ID)
	}
	exercisesByRoutine, err := r.exercisesOf(ctx, ids)
	if err != nil {
		return err
	}
	for i := range routines {
		routines[i].Exercises = exercisesByRoutine[routines[i].ID]
		if routines[i].Exercises == nil {
			routines[i].Exercises = []Exercise{}
		}
	}
	return nil
}

// SelectColumns lists the columns ScanRows expects: a routine aliased r
// followed by its creator aliased u.
func SelectColumns() string {
	return routineColumns + `, ` + creatorColumns
}

func ScanRows(rows pgx.Rows) ([]Routine, error) {
	var routines []Routine
	for rows.Next() {
		var (
			routine Routine
			creator users.User
		)
		if err := rows.Scan(append(routineScanDest(&routine), creator.ScanDest()...)...); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		routine.Creator = &creator
		routines = append(routines, routine)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return routines, nil
}

func (r *Repo) exercisesOf(ctx context.Context, routineIDs []int) (map[int][]Exercise, error) {
	exercisesByRoutine := make(map[int][]Exercise, len(routineIDs))
	if len(routineIDs) == 0 {
		return exercisesByRoutine, nil
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercises e
		WHERE e.routine_id = ANY($1)
		ORDER BY e.routine_id, e.order_index, e.id`,
		routineIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var exercise Exercise
		if err := rows.Scan(exerciseScanDest(&exercise)...); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercisesByRoutine[exercise.RoutineID] = append(exercisesByRoutine[exercise.RoutineID], exercise)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercisesByRoutine, nil
}

// lockOwned locks the routine row and checks it belongs to creatorID.
func lockOwned(ctx context.Context, tx pgx.Tx, routineID int, creatorID string) error {
	var owner string
	err := tx.QueryRow(ctx, `SELECT creator_id FROM routines WHERE id = $1 FOR UPDATE`, routineID).Scan(&owner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrRoutineNotFound
		}
		return err
	}
	if owner != creatorID {
		return ErrNotOwner
	}
	return nil
}

// Update changes the routine's own fields. Rating and counters are never written here.
func (r *Repo) Update(ctx context.Context, id int, creatorID string, params UpdateParams) (_ *Routine, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", id))

	var routine Routine
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockOwned(ctx, tx, id, creatorID); err != nil {
			return err
		}

		return tx.QueryRow(
			ctx,
			`UPDATE routines r SET
				title = COALESCE($2, r.title),
				description = COALESCE($3, r.description),
				body_parts = COALESCE($4::text[], r.body_parts),
				difficulty = COALESCE($5, r.difficulty),
				duration = COALESCE($6, r.duration),
				equipment_needed = COALESCE($7, r.equipment_needed),
				is_public = COALESCE($8, r.is_public),
				updated_at = now()
			WHERE r.id = $1
			RETURNING `+routineColumns,
			id, params.Title, params.Description, params.BodyParts, params.Difficulty,
			params.Duration, params.EquipmentNeeded, params.IsPublic,
		).Scan(routineScanDest(&routine)...)
	})
	if err != nil {
		return nil, err
	}

	exercisesByRoutine, err := r.exercisesOf(ctx, []int{id})
	if err != nil {
		return nil, err
	}
	routine.Exercises = exercisesByRoutine[id]
	if routine.Exercises == nil {
		routine.Exercises = []Exercise{}
	}

	return &routine, nil
}

// Delete removes the routine; exercises, ratings and saves go with it,
// workout records keep existing without a routine.
func (r *Repo) Delete(ctx context.Context, id int, creatorID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", id))

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockOwned(ctx, tx, id, creatorID); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `DELETE FROM routines WHERE id = $1`, id)
		return err
	})
}

func (r *Repo) CreateExercise(ctx context.Context, creatorID string, params ExerciseParams) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.exercise.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("routine.id", params.RoutineID))

	var exercise Exercise
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockOwned(ctx, tx, params.RoutineID, creatorID); err != nil {
			return err
		}
		return tx.QueryRow(
			ctx,
			`INSERT INTO exercises AS e
				(routine_id, name, description, sets, reps, duration, rest_time, video_url, image_url, order_index)
				VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10)
			RETURNING `+exerciseColumns,
			params.RoutineID, params.Name, params.Description, params.Sets, params.Reps, params.Duration,
			params.RestTime, params.VideoURL, params.ImageURL, params.OrderIndex,
		).Scan(exerciseScanDest(&exercise)...)
	})
	if err != nil {
		return nil, err
	}

	return &exercise, nil
}

// routineOfExercise locks the exercise's routine and checks the creator.
func routineOfExercise(ctx context.Context, tx pgx.Tx, exerciseID int, creatorID string) error {
	var routineID int
	err := tx.QueryRow(ctx, `SELECT routine_id FROM exercises WHERE id = $1`, exerciseID).Scan(&routineID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrExerciseNotFound
		}
		return err
	}
	return lockOwned(ctx, tx, routineID, creatorID)
}

func (r *Repo) UpdateExercise(ctx context.Context, id int, creatorID string, params ExerciseUpdateParams) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.exercise.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", id))

	var exercise Exercise
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := routineOfExercise(ctx, tx, id, creatorID); err != nil {
			return err
		}
		return tx.QueryRow(
			ctx,
			`UPDATE exercises e SET
				name = COALESCE($2, e.name),
				description = COALESCE($3, e.description),
				sets = COALESCE($4, e.sets),
				reps = COALESCE($5, e.reps),
				duration = COALESCE($6, e.duration),
				rest_time = COALESCE($7, e.rest_time),
				video_url = COALESCE($8, e.video_url),
				image_url = COALESCE($9, e.image_url),
				order_index = COALESCE($10, e.order_index)
			WHERE e.id = $1
			RETURNING `+exerciseColumns,
			id, params.Name, params.Description, params.Sets, params.Reps, params.Duration,
			params.RestTime, params.VideoURL, params.ImageURL, params.OrderIndex,
		).Scan(exerciseScanDest(&exercise)...)
	})
	if err != nil {
		return nil, err
	}

	return &exercise, nil
}

func (r *Repo) DeleteExercise(ctx context.Context, id int, creatorID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.routines.exercise.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("exercise.id", id))

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := routineOfExercise(ctx, tx, id, creatorID); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `DELETE FROM exercises WHERE id = $1`, id)
		return err
	})
}
