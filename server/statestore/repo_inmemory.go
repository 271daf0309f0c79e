package statestore

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

const tokenLength = 32 // bytes of entropy per state token

// InMemoryRepo is a thread-safe in-memory implementation of the Repo
// interface. Tokens live until consumed, expired, or process restart.
type InMemoryRepo struct {
	mu     sync.Mutex
	tokens map[string]StateToken
	ttl    time.Duration // zero disables expiry
	now    func() time.Time
}

// NewInMemoryRepo creates an in-memory state token repository. Tokens older
// than ttl are rejected by Consume; a zero ttl keeps tokens valid until the
// process exits.
func NewInMemoryRepo(ttl time.Duration) *InMemoryRepo {
	return &InMemoryRepo{
		tokens: make(map[string]StateToken),
		ttl:    ttl,
		now:    time.Now,
	}
}

// SetClock replaces the time source, so tests can drive expiry.
func (r *InMemoryRepo) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
}

// Issue generates an unguessable token and records it as outstanding.
func (r *InMemoryRepo) Issue() (string, error) {
	b := make([]byte, tokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := base64.RawURLEncoding.EncodeToString(b)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[token] = StateToken{CreatedAt: r.now()}
	return token, nil
}

// Consume removes the token and reports whether it was outstanding and
// unexpired. A second Consume with the same token always returns false,
// which is what makes a replayed callback fail.
func (r *InMemoryRepo) Consume(token string) bool {
	if token == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	st, exists := r.tokens[token]
	if !exists {
		return false
	}
	delete(r.tokens, token)

	if r.ttl > 0 && r.now().Sub(st.CreatedAt) > r.ttl {
		return false
	}
	return true
}
