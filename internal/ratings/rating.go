package ratings

import (
	"fmt"
	"time"

	"github.com/2beens/routinehub/internal/users"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Rating struct {
	ID        int         `json:"id"`
	RoutineID int         `json:"routineId"`
	UserID    string      `json:"userId"`
	Rating    int         `json:"rating"`
	Review    string      `json:"review,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	User      *users.User `json:"user,omitempty"`
}

type CreateParams struct {
	RoutineID int    `json:"routineId" validate:"required,min=1"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Review    string `json:"review" validate:"max=5000"`
}

// Aggregate is the routine's rating state right after a rating was accepted.
type Aggregate struct {
	Average string `json:"routineRating"`
	Count   int    `json:"routineTotalRatings"`
}

// Average formats the mean of count ratings summing to sum with two decimals,
// rounding half up. No ratings yield "0.00".
func Average(sum, count int) string {
	if count <= 0 {
		return "0.00"
	}
	cents := (sum*200 + count) / (2 * count)
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
