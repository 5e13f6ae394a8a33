package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"event-booking/internal/entity"

	"github.com/go-redis/redis/v8"
)

const RoleAdmin = "admin"

// Session is the request-scoped capability handed to curation operations.
// It replaces ambient "logged in" state: whoever holds a Session with the
// admin role may mutate the catalog.
type Session struct {
	Role string `json:"role"`
}

// IsAdmin reports whether the session grants catalog mutation.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// SessionStore persists issued sessions keyed by token hash. Only hashes
// are stored so a leaked store does not leak usable tokens.
type SessionStore interface {
	Save(ctx context.Context, tokenHash, role string, ttl time.Duration) error
	Get(ctx context.Context, tokenHash string) (string, error)
	Delete(ctx context.Context, tokenHash string) error
}

const sessionKeyPrefix = "session:"

type redisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) Save(ctx context.Context, tokenHash, role string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKeyPrefix+tokenHash, role, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, tokenHash string) (string, error) {
	role, err := s.client.Get(ctx, sessionKeyPrefix+tokenHash).Result()
	if err == redis.Nil {
		return "", entity.ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session: %w", err)
	}
	return role, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, tokenHash string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+tokenHash).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// HashToken returns the hex SHA-256 of a raw session token.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
