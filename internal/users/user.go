package users

import "time"

const (
	TypeEnthusiast = "enthusiast"
	TypeTrainer    = "trainer"
)

type User struct {
	ID              string    `json:"id"`
	Email           string    `json:"email,omitempty"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	UserType        string    `json:"userType"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Identity is what the authentication gateway knows about a user.
type Identity struct {
	ID              string `json:"id" validate:"required,max=255"`
	Email           string `json:"email" validate:"omitempty,email,max=255"`
	FirstName       string `json:"firstName" validate:"max=255"`
	LastName        string `json:"lastName" validate:"max=255"`
	ProfileImageURL string `json:"profileImageUrl" validate:"omitempty,url"`
}
