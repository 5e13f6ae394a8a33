package auth

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"event-booking/config"
	"event-booking/internal/entity"

	"golang.org/x/crypto/bcrypt"
)

// Authenticator is the credential gate for the admin surface. Credentials
// live in config; issued sessions live in the session store.
type Authenticator struct {
	store SessionStore
	cfg   config.AdminConfig
}

func NewAuthenticator(store SessionStore, cfg config.AdminConfig) *Authenticator {
	return &Authenticator{store: store, cfg: cfg}
}

// Login checks the credentials and, on success, issues an opaque session
// token with the admin role. The raw token goes to the client; only its
// hash is stored.
func (a *Authenticator) Login(ctx context.Context, username, password string) (string, error) {
	if !a.verify(username, password) {
		return "", entity.ErrInvalidCredentials
	}

	token, err := randomHex(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	if err := a.store.Save(ctx, HashToken(token), RoleAdmin, a.cfg.SessionTTL); err != nil {
		return "", err
	}

	return token, nil
}

// Authenticate resolves a raw token into a Session capability.
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, entity.ErrSessionNotFound
	}

	role, err := a.store.Get(ctx, HashToken(token))
	if err != nil {
		return nil, err
	}

	return &Session{Role: role}, nil
}

// Logout revokes the session behind a raw token. Unknown tokens are a no-op.
func (a *Authenticator) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return a.store.Delete(ctx, HashToken(token))
}

func (a *Authenticator) verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.cfg.Username)) == 1

	// A configured bcrypt hash wins over a plaintext password.
	var passOK bool
	if a.cfg.PasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(a.cfg.PasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(a.cfg.Password)) == 1
	}

	return userOK && passOK
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
