package community

import (
	"context"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/routinehub/internal/auth"
	"github.com/2beens/routinehub/internal/telemetry/metrics"
	"github.com/2beens/routinehub/internal/telemetry/tracing"
	"github.com/2beens/routinehub/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=community_mocks_test.go -package=community_test

const (
	defaultPostsLimit = 20
	maxPostsLimit     = 100
)

type communityRepo interface {
	CreatePost(ctx context.Context, userID string, params PostParams) (*Post, error)
	ListPosts(ctx context.Context, limit, offset int) ([]Post, error)
	GetPost(ctx context.Context, id int) (*Post, error)
	UpdatePost(ctx context.Context, id int, userID string, params PostUpdateParams) (*Post, error)
	DeletePost(ctx context.Context, id int, userID string) error
	CreateComment(ctx context.Context, userID string, params CommentParams) (*Comment, error)
	ListComments(ctx context.Context, postID int) ([]Comment, error)
	DeleteComment(ctx context.Context, id int, userID string) error
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo           communityRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo communityRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func writeRepoErr(w http.ResponseWriter, err error, failMsg string) {
	switch {
	case errors.Is(err, ErrPostNotFound):
		pkg.WriteJSONMessage(w, "Post not found", http.StatusNotFound)
	case errors.Is(err, ErrCommentNotFound):
		pkg.WriteJSONMessage(w, "Comment not found", http.StatusNotFound)
	case errors.Is(err, ErrNotAuthor):
		pkg.WriteJSONMessage(w, "Forbidden", http.StatusForbidden)
	default:
		log.Errorf("%s: %s", failMsg, err)
		pkg.WriteJSONMessage(w, failMsg, http.StatusInternalServerError)
	}
}

func (handler *Handler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.community.post.create")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var params PostParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := handler.repo.CreatePost(ctx, userID, params)
	if err != nil {
		writeRepoErr(w, err, "Failed to create post")
		return
	}

	handler.metricsManager.CounterPosts.Inc()
	pkg.WriteJSON(w, post, http.StatusCreated)
}

func (handler *Handler) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.community.post.list")
	defer span.End()

	limit, offset, err := pkg.Pagination(r.URL.Query(), defaultPostsLimit, maxPostsLimit)
	if err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	posts, err := handler.repo.ListPosts(ctx, limit, offset)
	if err != nil {
		writeRepoErr(w, err, "Failed to fetch posts")
		return
	}
	if posts == nil {
		posts = []Post{}
	}

	pkg.WriteJSON(w, posts, http.StatusOK)
}

func (handler *Handler) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.community.post.get")
	defer span.End()

	id, err := pkg.RouteVarInt(r, "id")
	if err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := handler.repo.GetPost(ctx, id)
	if err != nil {
		writeRepoErr(w, err, "Failed to fetch post")
		return
	}

	pkg.WriteJSON(w, post, http.StatusOK)
}

func (handler *Handler) HandleUpdatePost(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.community.post.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := pkg.RouteVarInt(r, "id")
	if err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	var params PostUpdateParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	post, err := handler.repo.UpdatePost(ctx, id, userID, params)
	if err != nil {
		writeRepoErr(w, err, "Failed to update post")
		return
	}

	pkg.WriteJSON(w, post, http.StatusOK)
}

func (handler *Handler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.community.post.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := pkg.RouteVarInt(r, "id")
	if err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeletePost(ctx, id, userID); err != nil {
		writeRepoErr(w, err, "Failed to delete post")
		return
	}

	log.Debugf("post %d deleted by %s", id, userID)
	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleCreateComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.community.comment.create")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var params CommentParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := handler.repo.CreateComment(ctx, userID, params)
	if err != nil {
		writeRepoErr(w, err, "Failed to create comment")
		return
	}

	pkg.WriteJSON(w, comment, http.StatusCreated)
}

func (handler *Handler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.community.comment.list")
	defer span.End()

	postID, err := pkg.RouteVarInt(r, "postId")
	if err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	comments, err := handler.repo.ListComments(ctx, postID)
	if err != nil {
		writeRepoErr(w, err, "Failed to fetch comments")
		return
	}
	if comments == nil {
		comments = []Comment{}
	}

	pkg.WriteJSON(w, comments, http.StatusOK)
}

func (handler *Handler) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.community.comment.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := pkg.RouteVarInt(r, "id")
	if err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteComment(ctx, id, userID); err != nil {
		writeRepoErr(w, err, "Failed to delete comment")
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}
