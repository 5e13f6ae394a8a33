package auth

import (
	"context"
	"testing"
	"time"

	"event-booking/config"
	"event-booking/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memorySessionStore struct {
	sessions map[string]string
	lastTTL  time.Duration
}

func newMemoryStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]string)}
}

func (s *memorySessionStore) Save(ctx context.Context, tokenHash, role string, ttl time.Duration) error {
	s.sessions[tokenHash] = role
	s.lastTTL = ttl
	return nil
}

func (s *memorySessionStore) Get(ctx context.Context, tokenHash string) (string, error) {
	role, ok := s.sessions[tokenHash]
	if !ok {
		return "", entity.ErrSessionNotFound
	}
	return role, nil
}

func (s *memorySessionStore) Delete(ctx context.Context, tokenHash string) error {
	delete(s.sessions, tokenHash)
	return nil
}

func testConfig() config.AdminConfig {
	return config.AdminConfig{
		Username:   "admin",
		Password:   "12345",
		SessionTTL: time.Hour,
	}
}

func TestLogin_IssuesAdminSession(t *testing.T) {
	store := newMemoryStore()
	authenticator := NewAuthenticator(store, testConfig())

	token, err := authenticator.Login(context.Background(), "admin", "12345")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Only the hash is stored.
	_, rawStored := store.sessions[token]
	assert.False(t, rawStored)
	assert.Equal(t, RoleAdmin, store.sessions[HashToken(token)])
	assert.Equal(t, time.Hour, store.lastTTL)

	session, err := authenticator.Authenticate(context.Background(), token)
	require.NoError(t, err)
	assert.True(t, session.IsAdmin())
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	authenticator := NewAuthenticator(newMemoryStore(), testConfig())

	for _, tc := range []struct{ username, password string }{
		{"admin", "wrong"},
		{"root", "12345"},
		{"", ""},
	} {
		_, err := authenticator.Login(context.Background(), tc.username, tc.password)
		assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
	}
}

func TestLogin_BcryptHashTakesPrecedence(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.PasswordHash = string(hash)
	authenticator := NewAuthenticator(newMemoryStore(), cfg)

	_, err = authenticator.Login(context.Background(), "admin", "12345")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)

	token, err := authenticator.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestAuthenticate_UnknownToken(t *testing.T) {
	authenticator := NewAuthenticator(newMemoryStore(), testConfig())

	_, err := authenticator.Authenticate(context.Background(), "bogus")
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)

	_, err = authenticator.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestLogout_RevokesSession(t *testing.T) {
	store := newMemoryStore()
	authenticator := NewAuthenticator(store, testConfig())

	token, err := authenticator.Login(context.Background(), "admin", "12345")
	require.NoError(t, err)

	require.NoError(t, authenticator.Logout(context.Background(), token))

	_, err = authenticator.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)

	// Logging out twice, or with no token, is a no-op.
	assert.NoError(t, authenticator.Logout(context.Background(), token))
	assert.NoError(t, authenticator.Logout(context.Background(), ""))
}

func TestSessionIsAdmin(t *testing.T) {
	assert.False(t, (*Session)(nil).IsAdmin())
	assert.False(t, (&Session{Role: "visitor"}).IsAdmin())
	assert.True(t, (&Session{Role: RoleAdmin}).IsAdmin())
}
