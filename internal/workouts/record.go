package workouts

import "time"

type WorkoutRecord struct {
	ID        int       `json:"id"`
	UserID    string    `json:"userId"`
	RoutineID *int      `json:"routineId,omitempty"`
	Date      time.Time `json:"date"`
	Duration  *int      `json:"duration,omitempty"` // minutes
	Notes     string    `json:"notes,omitempty"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

type RecordParams struct {
	RoutineID *int       `json:"routineId" validate:"omitempty,min=1"`
	Date      *time.Time `json:"date"`
	Duration  *int       `json:"duration" validate:"omitempty,min=0,max=1440"`
	Notes     string     `json:"notes" validate:"max=5000"`
	Completed *bool      `json:"completed"`
}

type ExerciseRecord struct {
	ID              int       `json:"id"`
	WorkoutRecordID int       `json:"workoutRecordId"`
	ExerciseID      *int      `json:"exerciseId,omitempty"`
	ExerciseName    string    `json:"exerciseName"`
	Sets            *int      `json:"sets,omitempty"`
	Reps            *int      `json:"reps,omitempty"`
	Weight          *string   `json:"weight,omitempty"` // kg, 2 decimals
	Duration        *int      `json:"duration,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type ExerciseRecordParams struct {
	WorkoutRecordID int      `json:"workoutRecordId" validate:"required,min=1"`
	ExerciseID      *int     `json:"exerciseId" validate:"omitempty,min=1"`
	ExerciseName    string   `json:"exerciseName" validate:"required,max=255"`
	Sets            *int     `json:"sets" validate:"omitempty,min=0,max=100"`
	Reps            *int     `json:"reps" validate:"omitempty,min=0,max=1000"`
	Weight          *float64 `json:"weight" validate:"omitempty,min=0,max=999.99"`
	Duration        *int     `json:"duration" validate:"omitempty,min=0"`
}

// StatRecord is the part of a workout record the statistics are computed from.
type StatRecord struct {
	Date     time.Time
	Duration *int
}

type Stats struct {
	WeeklyWorkouts int `json:"weeklyWorkouts"`
	TotalHours     int `json:"totalHours"`
	CurrentStreak  int `json:"currentStreak"`
}
