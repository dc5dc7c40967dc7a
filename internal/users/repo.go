package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/routinehub/internal/telemetry/tracing"
)

var ErrUserNotFound = errors.New("user not found")

// Columns selects a user row in the order ScanUser expects, for the given table alias.
func Columns(alias string) string {
	return fmt.Sprintf(
		`%[1]s.id, COALESCE(%[1]s.email, ''), COALESCE(%[1]s.first_name, ''), COALESCE(%[1]s.last_name, ''),
		COALESCE(%[1]s.profile_image_url, ''), %[1]s.user_type, %[1]s.created_at, %[1]s.updated_at`,
		alias,
	)
}

// ScanDest returns scan destinations matching Columns.
func (u *User) ScanDest() []any {
	return []any{
		&u.ID, &u.Email, &u.FirstName, &u.LastName,
		&u.ProfileImageURL, &u.UserType, &u.CreatedAt, &u.UpdatedAt,
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

func (r *Repo) Get(ctx context.Context, id string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", id))

	var user User
	err = r.db.QueryRow(
		ctx,
		`SELECT `+Columns("u")+` FROM users u WHERE u.id = $1`,
		id,
	).Scan(user.ScanDest()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// Upsert creates the user or refreshes its identity fields. The user type is left untouched.
func (r *Repo) Upsert(ctx context.Context, identity Identity) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", identity.ID))

	var user User
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO users AS u (id, email, first_name, last_name, profile_image_url)
			VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			profile_image_url = EXCLUDED.profile_image_url,
			updated_at = now()
		RETURNING `+Columns("u"),
		identity.ID, identity.Email, identity.FirstName, identity.LastName, identity.ProfileImageURL,
	).Scan(user.ScanDest()...)
	if err != nil {
		return nil, fmt.Errorf("upsert user %s: %w", identity.ID, err)
	}

	return &user, nil
}
