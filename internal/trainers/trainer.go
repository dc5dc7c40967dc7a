package trainers

import (
	"time"

	"github.com/2beens/routinehub/internal/users"
)

type Trainer struct {
	ID              int         `json:"id"`
	UserID          string      `json:"userId"`
	Specialization  string      `json:"specialization,omitempty"`
	Bio             string      `json:"bio,omitempty"`
	Certifications  []string    `json:"certifications"`
	ExperienceYears *int        `json:"experienceYears,omitempty"`
	Rating          string      `json:"rating"`
	TotalStudents   int         `json:"totalStudents"`
	Verified        bool        `json:"verified"`
	CreatedAt       time.Time   `json:"createdAt"`
	User            *users.User `json:"user,omitempty"`
}

type CreateParams struct {
	Specialization  string   `json:"specialization" validate:"max=255"`
	Bio             string   `json:"bio" validate:"max=5000"`
	Certifications  []string `json:"certifications" validate:"max=50,dive,required,max=255"`
	ExperienceYears *int     `json:"experienceYears" validate:"omitempty,min=0,max=80"`
}
