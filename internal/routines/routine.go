package routines

import (
	"time"

	"github.com/2beens/routinehub/internal/users"
)

var (
	BodyParts    = []string{"upper", "lower", "core", "cardio", "full"}
	Difficulties = []string{"beginner", "intermediate", "advanced"}
)

type Routine struct {
	ID              int         `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description,omitempty"`
	BodyParts       []string    `json:"bodyParts"`
	Difficulty      string      `json:"difficulty"`
	Duration        int         `json:"duration"`
	EquipmentNeeded bool        `json:"equipmentNeeded"`
	CreatorID       string      `json:"creatorId"`
	IsPublic        bool        `json:"isPublic"`
	Rating          string      `json:"rating"`
	TotalRatings    int         `json:"totalRatings"`
	TotalSaves      int         `json:"totalSaves"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	Creator         *users.User `json:"creator,omitempty"`
	Exercises       []Exercise  `json:"exercises"`
}

type Exercise struct {
	ID          int       `json:"id"`
	RoutineID   int       `json:"routineId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Sets        *int      `json:"sets,omitempty"`
	Reps        *int      `json:"reps,omitempty"`
	Duration    *int      `json:"duration,omitempty"`
	RestTime    *int      `json:"restTime,omitempty"`
	VideoURL    string    `json:"videoUrl,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	OrderIndex  int       `json:"orderIndex"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateParams holds the client settable routine fields; rating and
// counters are derived and never accepted from clients.
type CreateParams struct {
	Title           string   `json:"title" validate:"required,max=255"`
	Description     string   `json:"description" validate:"max=5000"`
	BodyParts       []string `json:"bodyParts" validate:"required,min=1,unique,dive,oneof=upper lower core cardio full"`
	Difficulty      string   `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Duration        int      `json:"duration" validate:"required,min=1,max=600"`
	EquipmentNeeded bool     `json:"equipmentNeeded"`
	IsPublic        *bool    `json:"isPublic"`
}

// UpdateParams is a partial update, nil fields are left unchanged.
type UpdateParams struct {
	Title           *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Description     *string  `json:"description" validate:"omitempty,max=5000"`
	BodyParts       []string `json:"bodyParts" validate:"omitempty,min=1,unique,dive,oneof=upper lower core cardio full"`
	Difficulty      *string  `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Duration        *int     `json:"duration" validate:"omitempty,min=1,max=600"`
	EquipmentNeeded *bool    `json:"equipmentNeeded"`
	IsPublic        *bool    `json:"isPublic"`
}

type ExerciseParams struct {
	RoutineID   int    `json:"routineId" validate:"required,min=1"`
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=5000"`
	Sets        *int   `json:"sets" validate:"omitempty,min=1,max=100"`
	Reps        *int   `json:"reps" validate:"omitempty,min=1,max=1000"`
	Duration    *int   `json:"duration" validate:"omitempty,min=1"`
	RestTime    *int   `json:"restTime" validate:"omitempty,min=0"`
	VideoURL    string `json:"videoUrl" validate:"omitempty,url"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
	OrderIndex  int    `json:"orderIndex" validate:"min=0"`
}

type ExerciseUpdateParams struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
	Sets        *int    `json:"sets" validate:"omitempty,min=1,max=100"`
	Reps        *int    `json:"reps" validate:"omitempty,min=1,max=1000"`
	Duration    *int    `json:"duration" validate:"omitempty,min=1"`
	RestTime    *int    `json:"restTime" validate:"omitempty,min=0"`
	VideoURL    *string `json:"videoUrl" validate:"omitempty,url"`
	ImageURL    *string `json:"imageUrl" validate:"omitempty,url"`
	OrderIndex  *int    `json:"orderIndex" validate:"omitempty,min=0"`
}
