package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/routinehub/internal/telemetry/tracing"
	"github.com/2beens/routinehub/pkg"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "routinehub-session||"
	tokensSetKey     = "routinehub-sessions"
	tokenLength      = 35

	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	ErrWrongUsername   = errors.New("wrong username")
	ErrWrongPassword   = errors.New("wrong password")
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidSession  = errors.New("invalid session")
)

type Admin struct {
	Username     string
	PasswordHash string
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Session struct {
	Token     string
	UserID    string
	Role      string
	CreatedAt time.Time
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// session value layout: <created at unix>|<role>|<user id>
func encodeSession(createdAt time.Time, role, userID string) string {
	return fmt.Sprintf("%d|%s|%s", createdAt.Unix(), role, userID)
}

func decodeSession(token, val string) (*Session, error) {
	parts := strings.SplitN(val, "|", 3)
	if len(parts) != 3 {
		return nil, ErrInvalidSession
	}
	createdAtUnix, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: created at: %s", ErrInvalidSession, err)
	}
	if parts[1] != RoleUser && parts[1] != RoleAdmin {
		return nil, fmt.Errorf("%w: role %q", ErrInvalidSession, parts[1])
	}
	if parts[2] == "" {
		return nil, fmt.Errorf("%w: empty user id", ErrInvalidSession)
	}
	return &Session{
		Token:     token,
		Role:      parts[1],
		UserID:    parts[2],
		CreatedAt: time.Unix(createdAtUnix, 0),
	}, nil
}

type Service struct {
	admin       *Admin
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	admin *Admin,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		admin:          admin,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// Login opens a session for a user whose identity was already verified by the gateway.
func (as *Service) Login(ctx context.Context, userID string, createdAt time.Time) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return "", errors.New("empty user id")
	}
	return as.newSession(ctx, RoleUser, userID, createdAt)
}

func (as *Service) AdminLogin(ctx context.Context, credentials Credentials, createdAt time.Time) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.admin-login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if as.admin == nil || credentials.Username != as.admin.Username {
		return "", ErrWrongUsername
	}
	if !pkg.CheckPasswordHash(credentials.Password, as.admin.PasswordHash) {
		return "", ErrWrongPassword
	}
	return as.newSession(ctx, RoleAdmin, as.admin.Username, createdAt)
}

func (as *Service) newSession(ctx context.Context, role, userID string, createdAt time.Time) (string, error) {
	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + token
	cmdSet := as.redisClient.Set(ctx, sessionKey, encodeSession(createdAt, role, userID), as.ttl)
	if err := cmdSet.Err(); err != nil {
		return "", err
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Logout removes the session, reporting whether it existed.
func (as *Service) Logout(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmdDel := as.redisClient.Del(ctx, sessionKey)
	if err := cmdDel.Err(); err != nil {
		return false, err
	}

	// remove token from the list of sessions
	cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
	if err := cmdSRem.Err(); err != nil {
		return false, err
	}

	return cmdDel.Val() > 0, nil
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old
// or already expired by redis.
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		getCmd := as.redisClient.Get(ctx, sessionKeyPrefix+token)
		if err := getCmd.Err(); err != nil {
			if errors.Is(err, redis.Nil) {
				toRemove = append(toRemove, token)
				continue
			}
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		session, err := decodeSession(token, getCmd.Val())
		if err != nil || time.Since(session.CreatedAt) > as.ttl {
			toRemove = append(toRemove, token)
		}
	}

	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
	}
	log.Debugf("=> auth service, scan and clean removed %d sessions", len(toRemove))
}
