package community

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
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotAuthor       = errors.New("not the author")
)

const postColumns = `p.id, p.user_id, COALESCE(p.title, ''), p.content, p.type, COALESCE(p.image_url, ''),
	p.likes, p.created_at, p.updated_at`

func postScanDest(p *Post) []any {
	return []any{&p.ID, &p.UserID, &p.Title, &p.Content, &p.Type, &p.ImageURL, &p.Likes, &p.CreatedAt, &p.UpdatedAt}
}

const commentColumns = `c.id, c.post_id, c.user_id, c.content, c.created_at`

func commentScanDest(c *Comment) []any {
	return []any{&c.ID, &c.PostID, &c.UserID, &c.Content, &c.CreatedAt}
}

var authorColumns = users.Columns("u")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) CreatePost(ctx context.Context, userID string, params PostParams) (_ *Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.community.post.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	postType := params.Type
	if postType == "" {
		postType = PostTypeGeneral
	}

	var post Post
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO posts AS p (user_id, title, content, type, image_url)
			VALUES ($1, NULLIF($2, ''), $3, $4, NULLIF($5, ''))
		RETURNING `+postColumns,
		userID, params.Title, params.Content, postType, params.ImageURL,
	).Scan(postScanDest(&post)...)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	span.SetAttributes(attribute.Int("post.id", post.ID))
	return &post, nil
}

// ListPosts returns the feed, newest first, with authors and comment counts.
func (r *Repo) ListPosts(ctx context.Context, limit, offset int) (_ []Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.community.post.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("limit", limit), attribute.Int("offset", offset))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+postColumns+`, `+authorColumns+`,
			(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id)
		FROM posts p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []Post
	for rows.Next() {
		var (
			post         Post
			author       users.User
			commentCount int
		)
		dest := append(postScanDest(&post), author.ScanDest()...)
		if err := rows.Scan(append(dest, &commentCount)...); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		post.User = &author
		post.CommentCount = &commentCount
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *Repo) GetPost(ctx context.Context, id int) (_ *Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.community.post.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("post.id", id))

	var (
		post   Post
		author users.User
	)
	err = r.db.QueryRow(
		ctx,
		`SELECT `+postColumns+`, `+authorColumns+`
		FROM posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.id = $1`,
		id,
	).Scan(append(postScanDest(&post), author.ScanDest()...)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	post.User = &author

	return &post, nil
}

// lockAuthored locks the post row and checks it was written by userID.
func lockAuthored(ctx context.Context, tx pgx.Tx, postID int, userID string) error {
	var author string
	err := tx.QueryRow(ctx, `SELECT user_id FROM posts WHERE id = $1 FOR UPDATE`, postID).Scan(&author)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPostNotFound
		}
		return err
	}
	if author != userID {
		return ErrNotAuthor
	}
	return nil
}

func (r *Repo) UpdatePost(ctx context.Context, id int, userID string, params PostUpdateParams) (_ *Post, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.community.post.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("post.id", id))

	var post Post
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockAuthored(ctx, tx, id, userID); err != nil {
			return err
		}

		return tx.QueryRow(
			ctx,
			`UPDATE posts p SET
				title = COALESCE($2, p.title),
				content = COALESCE($3, p.content),
				type = COALESCE($4, p.type),
				image_url = COALESCE($5, p.image_url),
				updated_at = now()
			WHERE p.id = $1
			RETURNING `+postColumns,
			id, params.Title, params.Content, params.Type, params.ImageURL,
		).Scan(postScanDest(&post)...)
	})
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// DeletePost removes the post together with its comments.
func (r *Repo) DeletePost(ctx context.Context, id int, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.community.post.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("post.id", id))

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if err := lockAuthored(ctx, tx, id, userID); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
		return err
	})
}

func (r *Repo) CreateComment(ctx context.Context, userID string, params CommentParams) (_ *Comment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.community.comment.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.Int("post.id", params.PostID),
	)

	var comment Comment
	err = r.db.QueryRow(
		ctx,
		`INSERT INTO comments AS c (post_id, user_id, content) VALUES ($1, $2, $3)
		RETURNING `+commentColumns,
		params.PostID, userID, params.Content,
	).Scan(commentScanDest(&comment)...)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	return &comment, nil
}

// ListComments returns the post's comments with their authors, oldest first.
func (r *Repo) ListComments(ctx context.Context, postID int) (_ []Comment, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.community.comment.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("post.id", postID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+commentColumns+`, `+authorColumns+`
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.post_id = $1
		ORDER BY c.created_at, c.id`,
		postID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var (
			comment Comment
			author  users.User
		)
		if err := rows.Scan(append(commentScanDest(&comment), author.ScanDest()...)...); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		comment.User = &author
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *Repo) DeleteComment(ctx context.Context, id int, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.community.comment.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("comment.id", id))

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var author string
		err := tx.QueryRow(ctx, `SELECT user_id FROM comments WHERE id = $1 FOR UPDATE`, id).Scan(&author)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrCommentNotFound
			}
			return err
		}
		if author != userID {
			return ErrNotAuthor
		}
		_, err = tx.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
		return err
	})
}
