package community

import (
	"time"

	"github.com/2beens/routinehub/internal/users"
)

const (
	PostTypeQuestion    = "question"
	PostTypeAchievement = "achievement"
	PostTypeGeneral     = "general"
)

type Post struct {
	ID           int         `json:"id"`
	UserID       string      `json:"userId"`
	Title        string      `json:"title,omitempty"`
	Content      string      `json:"content"`
	Type         string      `json:"type"`
	ImageURL     string      `json:"imageUrl,omitempty"`
	Likes        int         `json:"likes"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	User         *users.User `json:"user,omitempty"`
	CommentCount *int        `json:"commentCount,omitempty"`
}

type PostParams struct {
	Title    string `json:"title" validate:"max=255"`
	Content  string `json:"content" validate:"required,max=10000"`
	Type     string `json:"type" validate:"omitempty,oneof=question achievement general"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}

// PostUpdateParams changes only the fields that are set.
type PostUpdateParams struct {
	Title    *string `json:"title" validate:"omitempty,max=255"`
	Content  *string `json:"content" validate:"omitempty,min=1,max=10000"`
	Type     *string `json:"type" validate:"omitempty,oneof=question achievement general"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,url"`
}

type Comment struct {
	ID        int         `json:"id"`
	PostID    int         `json:"postId"`
	UserID    string      `json:"userId"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"createdAt"`
	User      *users.User `json:"user,omitempty"`
}

type CommentParams struct {
	PostID  int    `json:"postId" validate:"required,min=1"`
	Content string `json:"content" validate:"required,max=5000"`
}
