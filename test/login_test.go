package test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/routinehub/internal/auth"
	"github.com/2beens/routinehub/internal/users"
)

// every test starts without sessions and rate limit counters
func (s *IntegrationTestSuite) SetupTest() {
	require.NoError(s.T(), s.redisDataCleanup(context.Background()))
}

func (s *IntegrationTestSuite) TestAdminLogin() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cases := map[string]struct {
		credentials        auth.Credentials
		expectedStatusCode int
	}{
		"good creds":   {auth.Credentials{Username: testUsername, Password: testPassword}, http.StatusOK},
		"bad password": {auth.Credentials{Username: testUsername, Password: "bad-password"}, http.StatusUnauthorized},
		"bad username": {auth.Credentials{Username: "bad-username", Password: testPassword}, http.StatusUnauthorized},
		"empty":        {auth.Credentials{}, http.StatusBadRequest},
	}

	for name, tc := range cases {
		s.Run(name, func() {
			var tokenResp auth.TokenResponse
			code := doJSON(ctx, t, s.httpClient, http.MethodPost, "/a/login", "", tc.credentials, &tokenResp)
			assert.Equal(t, tc.expectedStatusCode, code)
			if code == http.StatusOK {
				assert.NotEmpty(t, tokenResp.Token)
			}
		})
	}

	s.Run("login, verify trainer, logout", func() {
		require.NoError(t, s.redisDataCleanup(ctx))
		adminToken := doAdminLogin(ctx, t, s.httpClient)

		userToken := newUserSession(ctx, t, s.httpClient, "admin-flow-trainer")
		code := doJSON(ctx, t, s.httpClient, http.MethodPost, "/api/trainers", userToken, map[string]any{
			"specialization": "Mobility",
		}, nil)
		require.Equal(t, http.StatusCreated, code)

		verify := map[string]bool{"verified": true}
		code = doJSON(ctx, t, s.httpClient, http.MethodPut, "/api/trainers/admin-flow-trainer/verified", userToken, verify, nil)
		assert.Equal(t, http.StatusForbidden, code)

		code = doJSON(ctx, t, s.httpClient, http.MethodPut, "/api/trainers/admin-flow-trainer/verified", adminToken, verify, nil)
		assert.Equal(t, http.StatusOK, code)

		code = doJSON(ctx, t, s.httpClient, http.MethodPost, "/a/logout", adminToken, nil, nil)
		assert.Equal(t, http.StatusOK, code)

		code = doJSON(ctx, t, s.httpClient, http.MethodPut, "/api/trainers/admin-flow-trainer/verified", adminToken, verify, nil)
		assert.Equal(t, http.StatusUnauthorized, code)
	})

	s.Run("rate limiting", func() {
		// config allows 10 login attempts per minute
		require.NoError(t, s.redisDataCleanup(ctx))

		body, err := json.Marshal(auth.Credentials{Username: "brute", Password: "force"})
		require.NoError(t, err)

		tooManyRequests := 0
		for i := 1; i <= 15; i++ {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost, serverEndpoint+"/a/login", bytes.NewBuffer(body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")

			resp, err := s.httpClient.Do(req)
			require.NoError(t, err)
			resp.Body.Close()

			if i <= 10 {
				assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "attempt %d", i)
			} else if resp.StatusCode == http.StatusTooManyRequests {
				tooManyRequests++
				assert.NotEmpty(t, resp.Header.Get("Retry-After"))
			}
		}
		assert.Equal(t, 5, tooManyRequests)
	})
}

func (s *IntegrationTestSuite) TestSessionExchange() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	identity := users.Identity{ID: "exchange-user", Email: "exchange@example.com", FirstName: "Ex"}
	code := doJSON(ctx, t, s.httpClient, http.MethodPost, "/api/auth/session", "", identity, nil)
	assert.Equal(t, http.StatusUnauthorized, code, "no gateway secret")

	token := newUserSession(ctx, t, s.httpClient, "exchange-user")

	var current struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Trainer any    `json:"trainer"`
	}
	code = doJSON(ctx, t, s.httpClient, http.MethodGet, "/api/auth/user", token, nil, &current)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "exchange-user", current.ID)
	assert.Equal(t, "exchange-user@example.com", current.Email)
	assert.Nil(t, current.Trainer)

	code = doJSON(ctx, t, s.httpClient, http.MethodPost, "/api/auth/logout", token, nil, nil)
	assert.Equal(t, http.StatusOK, code)

	code = doJSON(ctx, t, s.httpClient, http.MethodGet, "/api/auth/user", token, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
}
