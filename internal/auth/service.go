package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/kondisca/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "session::"
	tokenLength      = 35
)

var (
	ErrNoSession      = errors.New("no session")
	ErrInvalidSession = errors.New("invalid session")
	ErrInvalidRole    = errors.New("invalid role")
)

type Role string

const (
	RoleConditioner Role = "conditioner"
	RolePlayer      Role = "player"
)

func (r Role) Valid() bool {
	return r == RoleConditioner || r == RolePlayer
}

type Session struct {
	Token  string
	UserID string
	Role   Role
}

func (s Session) IsConditioner() bool {
	return s.Role == RoleConditioner
}

// Service keeps sessions in redis as session::<token> => role:userID.
type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewService(ttl time.Duration, redisClient *redis.Client) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// Lookup resolves the token to its session, ErrNoSession if there is none.
func (s *Service) Lookup(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	val, err := s.redisClient.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	role, userID, found := strings.Cut(val, ":")
	if !found || userID == "" || !Role(role).Valid() {
		log.Warnf("auth service, malformed session value for token %s...", token[:min(len(token), 5)])
		return nil, ErrInvalidSession
	}

	return &Session{
		Token:  token,
		UserID: userID,
		Role:   Role(role),
	}, nil
}

// Open stores a fresh session for the user and returns its token.
func (s *Service) Open(ctx context.Context, role Role, userID string) (string, error) {
	if !role.Valid() {
		return "", ErrInvalidRole
	}
	if userID == "" {
		return "", ErrInvalidSession
	}

	token, err := s.RandStringFunc(tokenLength)
	if err != nil {
		return "", err
	}

	if err := s.redisClient.Set(ctx, sessionKey(token), string(role)+":"+userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("set session: %w", err)
	}

	return token, nil
}

// Close removes the session. Reports whether a session was there.
func (s *Service) Close(ctx context.Context, token string) (bool, error) {
	removed, err := s.redisClient.Del(ctx, sessionKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	return removed > 0, nil
}

type ctxKey struct{}

func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, session)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(ctxKey{}).(*Session)
	return session, ok && session != nil
}
