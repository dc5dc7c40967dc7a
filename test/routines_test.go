package test

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/routinehub/internal/ratings"
	"github.com/2beens/routinehub/internal/routines"
	"github.com/2beens/routinehub/internal/saves"
)

func (s *IntegrationTestSuite) createRoutine(ctx context.Context, token string, params routines.CreateParams) routines.Routine {
	t := s.T()
	var routine routines.Routine
	code := doJSON(ctx, t, s.httpClient, http.MethodPost, "/api/routines", token, params, &routine)
	require.Equal(t, http.StatusCreated, code)
	require.NotZero(t, routine.ID)
	return routine
}

func (s *IntegrationTestSuite) TestRoutineLifecycle() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	creator := newUserSession(ctx, t, s.httpClient, "lifecycle-creator")
	stranger := newUserSession(ctx, t, s.httpClient, "lifecycle-stranger")

	routine := s.createRoutine(ctx, creator, routines.CreateParams{
		Title:      "Lifecycle Core Blast",
		BodyParts:  []string{"core"},
		Difficulty: "beginner",
		Duration:   15,
	})
	assert.Equal(t, "lifecycle-creator", routine.CreatorID)
	assert.Equal(t, "0.00", routine.Rating)
	assert.True(t, routine.IsPublic)

	for i, name := range []string{"Plank", "Dead Bug"} {
		code := doJSON(ctx, t, s.httpClient, http.MethodPost, "/api/exercises", creator, routines.ExerciseParams{
			RoutineID:  routine.ID,
			Name:       name,
			OrderIndex: 1 - i,
		}, nil)
		require.Equal(t, http.StatusCreated, code)
	}

	code := doJSON(ctx, t, s.httpClient, http.MethodPost, "/api/exercises", stranger, routines.ExerciseParams{
		RoutineID: routine.ID,
		Name:      "Sneaky",
	}, nil)
	assert.Equal(t, http.StatusForbidden, code)

	var got routines.Routine
	code = doJSON(ctx, t, s.httpClient, http.MethodGet, fmt.Sprintf("/api/routines/%d", routine.ID), "", nil, &got)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, got.Exercises, 2)
	assert.Equal(t, "Dead Bug", got.Exercises[0].Name)
	assert.Equal(t, "Plank", got.Exercises[1].Name)
	require.NotNil(t, got.Creator)
	assert.Equal(t, "lifecycle-creator", got.Creator.ID)

	newTitle := "Lifecycle Core Blast v2"
	code = doJSON(ctx, t, s.httpClient, http.MethodPut, fmt.Sprintf("/api/routines/%d", routine.ID), stranger, routines.UpdateParams{Title: &newTitle}, nil)
	assert.Equal(t, http.StatusForbidden, code)
	code = doJSON(ctx, t, s.httpClient, http.MethodPut, fmt.Sprintf("/api/routines/%d", routine.ID), creator, routines.UpdateParams{Title: &newTitle}, &got)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, newTitle, got.Title)

	code = doJSON(ctx, t, s.httpClient, http.MethodDelete, fmt.Sprintf("/api/routines/%d", routine.ID), creator, nil, nil)
	require.Equal(t, http.StatusOK, code)
	code = doJSON(ctx, t, s.httpClient, http.MethodGet, fmt.Sprintf("/api/routines/%d", routine.ID), "", nil, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func (s *IntegrationTestSuite) TestRoutineCatalogFilter() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	creator := newUserSession(ctx, t, s.httpClient, "catalog-creator")
	private := false
	s.createRoutine(ctx, creator, routines.CreateParams{Title: "Zorblat upper", BodyParts: []string{"upper"}, Difficulty: "beginner", Duration: 20})
	s.createRoutine(ctx, creator, routines.CreateParams{Title: "Zorblat lower", BodyParts: []string{"lower"}, Difficulty: "beginner", Duration: 20})
	s.createRoutine(ctx, creator, routines.CreateParams{Title: "Zorblat upper hard", BodyParts: []string{"upper", "core"}, Difficulty: "advanced", Duration: 45})
	s.createRoutine(ctx, creator, routines.CreateParams{Title: "Zorblat hidden", BodyParts: []string{"upper"}, Difficulty: "beginner", Duration: 20, IsPublic: &private})

	var found []routines.Routine
	code := doJSON(ctx, t, s.httpClient, http.MethodGet, "/api/routines?search=zorblat&bodyParts=upper&difficulty=beginner&maxDuration=30", "", nil, &found)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, found, 1)
	assert.Equal(t, "Zorblat upper", found[0].Title)

	code = doJSON(ctx, t, s.httpClient, http.MethodGet, "/api/routines?search=zorblat&bodyParts=upper,lower", "", nil, &found)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, found, 3)

	code = doJSON(ctx, t, s.httpClient, http.MethodGet, "/api/routines?minDuration=abc", "", nil, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func (s *IntegrationTestSuite) TestRatingAggregation() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	creator := newUserSession(ctx, t, s.httpClient, "rating-creator")
	routine := s.createRoutine(ctx, creator, routines.CreateParams{Title: "Rated routine", BodyParts: []string{"full"}, Difficulty: "intermediate", Duration: 30})

	var last ratings.CreateResponse
	for i, value := range []int{5, 3, 4} {
		token := newUserSession(ctx, t, s.httpClient, fmt.Sprintf("rater-%d", i))
		code := doJSON(ctx, t, s.httpClient, http.MethodPost, "/api/routine-ratings", token, ratings.CreateParams{
			RoutineID: routine.ID,
			Rating:    value,
		}, &last)
		require.Equal(t, http.StatusCreated, code)
	}
	assert.Equal(t, "4.00", last.Average)
	assert.Equal(t, 3, last.Count)

	// a second rating by the same user is rejected and changes nothing
	again := newUserSession(ctx, t, s.httpClient, "rater-0")
	var msg struct {
		Message string `json:"message"`
	}
	code := doJSON(ctx, t, s.httpClient, http.MethodPost, "/api/routine-ratings", again, ratings.CreateParams{
		RoutineID: routine.ID,
		Rating:    1,
	}, &msg)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "You have already rated this routine", msg.Message)

	var storedRating string
	var totalRatings int
	require.NoError(t, s.DB.QueryRowContext(ctx,
		"SELECT rating::text, total_ratings FROM routines WHERE id = $1", routine.ID,
	).Scan(&storedRating, &totalRatings))
	assert.Equal(t, "4.00", storedRating)
	assert.Equal(t, 3, totalRatings)

	var list []ratings.Rating
	code = doJSON(ctx, t, s.httpClient, http.MethodGet, fmt.Sprintf("/api/routine-ratings/%d", routine.ID), "", nil, &list)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, list, 3)
	assert.Equal(t, "rater-2", list[0].UserID)
	require.NotNil(t, list[0].User)

	code = doJSON(ctx, t, s.httpClient, http.MethodPost, "/api/routine-ratings", again, ratings.CreateParams{RoutineID: 999999, Rating: 3}, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func (s *IntegrationTestSuite) TestConcurrentRatings() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	creator := newUserSession(ctx, t, s.httpClient, "concurrent-creator")
	routine := s.createRoutine(ctx, creator, routines.CreateParams{Title: "Busy routine", BodyParts: []string{"cardio"}, Difficulty: "beginner", Duration: 10})

	const raters = 8
	tokens := make([]string, raters)
	for i := range tokens {
		tokens[i] = newUserSession(ctx, t, s.httpClient, fmt.Sprintf("concurrent-rater-%d", i))
	}

	var wg sync.WaitGroup
	codes := make([]int, raters)
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = doJSON(ctx, t, s.httpClient, http.MethodPost, "/api/routine-ratings", tokens[i], ratings.CreateParams{
				RoutineID: routine.ID,
				Rating:    1 + i%5,
			}, nil)
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		assert.Equal(t, http.StatusCreated, code, "rater %d", i)
	}

	var got routines.Routine
	code := doJSON(ctx, t, s.httpClient, http.MethodGet, fmt.Sprintf("/api/routines/%d", routine.ID), "", nil, &got)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, raters, got.TotalRatings)
	// 1+2+3+4+5+1+2+3 = 21, 21/8 = 2.625
	assert.Equal(t, "2.63", got.Rating)
}

func (s *IntegrationTestSuite) TestSavedRoutines() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	creator := newUserSession(ctx, t, s.httpClient, "saves-creator")
	routine := s.createRoutine(ctx, creator, routines.CreateParams{Title: "Saved routine", BodyParts: []string{"lower"}, Difficulty: "advanced", Duration: 50})
	other := s.createRoutine(ctx, creator, routines.CreateParams{Title: "Never saved", BodyParts: []string{"lower"}, Difficulty: "advanced", Duration: 50})

	saver := newUserSession(ctx, t, s.httpClient, "saver")

	var saveResp saves.SaveResponse
	for range 2 {
		code := doJSON(ctx, t, s.httpClient, http.MethodPost, "/api/saved-routines", saver, saves.SaveRequest{RoutineID: routine.ID}, &saveResp)
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, 1, saveResp.TotalSaves)
	}

	var check saves.CheckResponse
	code := doJSON(ctx, t, s.httpClient, http.MethodGet, fmt.Sprintf("/api/saved-routines/%d/check", routine.ID), saver, nil, &check)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, check.IsSaved)

	var saved []routines.Routine
	code = doJSON(ctx, t, s.httpClient, http.MethodGet, "/api/saved-routines", saver, nil, &saved)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, saved, 1)
	assert.Equal(t, routine.ID, saved[0].ID)
	assert.NotNil(t, saved[0].Exercises)

	// unsaving a routine that was never saved is not an error
	code = doJSON(ctx, t, s.httpClient, http.MethodDelete, fmt.Sprintf("/api/saved-routines/%d", other.ID), saver, nil, &saveResp)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, saveResp.TotalSaves)

	code = doJSON(ctx, t, s.httpClient, http.MethodDelete, fmt.Sprintf("/api/saved-routines/%d", routine.ID), saver, nil, &saveResp)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, saveResp.TotalSaves)

	code = doJSON(ctx, t, s.httpClient, http.MethodGet, fmt.Sprintf("/api/saved-routines/%d/check", routine.ID), saver, nil, &check)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, check.IsSaved)
}
