package statestore_test

import (
	"testing"
	"time"

	"github.com/decipheralgo/go-realtime-server/server/statestore"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRepo_IssueConsume(t *testing.T) {
	repo := statestore.NewInMemoryRepo(0)

	t.Run("consume succeeds exactly once", func(t *testing.T) {
		token, err := repo.Issue()
		require.NoError(t, err)
		require.NotEmpty(t, token)

		require.True(t, repo.Consume(token))
		require.False(t, repo.Consume(token))
		require.False(t, repo.Consume(token))
	})

	t.Run("never-issued token is rejected", func(t *testing.T) {
		require.False(t, repo.Consume("not-a-real-token"))
	})

	t.Run("empty token is rejected", func(t *testing.T) {
		require.False(t, repo.Consume(""))
	})

	t.Run("tokens are unique and independent", func(t *testing.T) {
		a, err := repo.Issue()
		require.NoError(t, err)
		b, err := repo.Issue()
		require.NoError(t, err)
		require.NotEqual(t, a, b)

		require.True(t, repo.Consume(b))
		require.True(t, repo.Consume(a))
	})
}

func TestInMemoryRepo_TTL(t *testing.T) {
	now := time.Now()
	repo := statestore.NewInMemoryRepo(15 * time.Minute)
	repo.SetClock(func() time.Time { return now })

	t.Run("fresh token is accepted", func(t *testing.T) {
		token, err := repo.Issue()
		require.NoError(t, err)
		require.True(t, repo.Consume(token))
	})

	t.Run("expired token is rejected and removed", func(t *testing.T) {
		token, err := repo.Issue()
		require.NoError(t, err)

		now = now.Add(16 * time.Minute)
		require.False(t, repo.Consume(token))
		require.False(t, repo.Consume(token))
	})

	t.Run("zero ttl never expires", func(t *testing.T) {
		eternal := statestore.NewInMemoryRepo(0)
		eternal.SetClock(func() time.Time { return now })

		token, err := eternal.Issue()
		require.NoError(t, err)

		now = now.Add(1000 * time.Hour)
		require.True(t, eternal.Consume(token))
	})
}
