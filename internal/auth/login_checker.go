package auth

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// Session resolves a token to its session, or ErrSessionNotFound when the token
// is unknown or older than the TTL.
func (c *LoginChecker) Session(ctx context.Context, token string) (*Session, error) {
	cmd := c.redisClient.Get(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	session, err := decodeSession(token, cmd.Val())
	if err != nil {
		return nil, err
	}

	if time.Since(session.CreatedAt) > c.ttl {
		return nil, ErrSessionNotFound
	}

	return session, nil
}
