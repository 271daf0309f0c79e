package persona_test

import (
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/decipheralgo/go-realtime-server/persona"
	"github.com/stretchr/testify/require"
)

func TestComposer_Merge(t *testing.T) {
	t.Run("empty text is dropped", func(t *testing.T) {
		c := persona.New(1, "")
		added, total := c.Merge([]persona.Section{{Text: ""}})
		require.Equal(t, 0, added)
		require.Equal(t, 0, total)
	})

	t.Run("whitespace-only text is dropped", func(t *testing.T) {
		c := persona.New(1, "")
		added, total := c.Merge([]persona.Section{{Title: "A", Text: "   \n  "}})
		require.Equal(t, 0, added)
		require.Equal(t, 0, total)
	})

	t.Run("valid entries append in order", func(t *testing.T) {
		c := persona.New(1, "")
		added, total := c.Merge([]persona.Section{
			{Title: "First", Text: "one"},
			{Text: ""},
			{Title: "Second", Text: "two"},
		})
		require.Equal(t, 2, added)
		require.Equal(t, 2, total)

		added, total = c.Merge([]persona.Section{{Title: "Third", Text: "three"}})
		require.Equal(t, 1, added)
		require.Equal(t, 3, total)
	})

	t.Run("blank title gets positional label", func(t *testing.T) {
		c := persona.New(1, "")
		c.Merge([]persona.Section{{Text: "anonymous"}})
		require.Contains(t, c.ComposeDefault(), "## Section 1\nanonymous")
	})

	t.Run("long title is truncated", func(t *testing.T) {
		c := persona.New(1, "")
		long := strings.Repeat("t", persona.MaxTitleLength+50)
		c.Merge([]persona.Section{{Title: long, Text: "x"}})

		snap := c.Snapshot()
		require.Len(t, snap.Titles, 1)
		require.Len(t, snap.Titles[0], persona.MaxTitleLength)
	})

	t.Run("multibyte title truncates on a rune boundary", func(t *testing.T) {
		c := persona.New(1, "")
		long := strings.Repeat("é", persona.MaxTitleLength) // 2 bytes per rune
		c.Merge([]persona.Section{{Title: long, Text: "x"}})

		snap := c.Snapshot()
		require.Len(t, snap.Titles, 1)
		require.True(t, utf8.ValidString(snap.Titles[0]))
		require.LessOrEqual(t, len(snap.Titles[0]), persona.MaxTitleLength)
	})

	t.Run("multibyte text truncates on a rune boundary", func(t *testing.T) {
		c := persona.New(1, "")
		long := strings.Repeat("界", persona.MaxTextLength) // 3 bytes per rune
		c.Merge([]persona.Section{{Title: "CJK", Text: long}})

		require.True(t, utf8.ValidString(c.ComposeDefault()))
	})
}

func TestComposer_SnapshotConsistency(t *testing.T) {
	c := persona.New(1, "")

	const workers, rounds = 8, 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				c.Merge([]persona.Section{{Title: "T", Text: "x"}})
				c.Snapshot()
			}
		}()
	}
	wg.Wait()

	snap := c.Snapshot()
	require.Len(t, snap.Titles, workers*rounds)
}

func TestComposer_Compose(t *testing.T) {
	t.Run("merged block appears after earlier sections", func(t *testing.T) {
		c := persona.New(1, "")
		c.Merge([]persona.Section{{Title: "Earlier", Text: "before"}})
		c.Merge([]persona.Section{{Title: "A", Text: "x"}})

		out := c.ComposeDefault()
		require.Contains(t, out, "## A\nx")
		require.Less(t, strings.Index(out, "## Earlier"), strings.Index(out, "## A"))
	})

	t.Run("clear removes the runtime-section header", func(t *testing.T) {
		c := persona.New(1, "")
		c.Merge([]persona.Section{{Title: "A", Text: "x"}})
		require.Contains(t, c.ComposeDefault(), "# Merged Context")

		c.Clear()
		out := c.ComposeDefault()
		require.NotContains(t, out, "# Merged Context")
		require.NotContains(t, out, "## A")
	})

	t.Run("addendum rendered only when set", func(t *testing.T) {
		withAddendum := persona.New(1, "Ship the MVP first.")
		require.Contains(t, withAddendum.Compose(1), "# Operator Addendum\nShip the MVP first.")

		without := persona.New(1, "")
		require.NotContains(t, without.Compose(1), "# Operator Addendum")
	})

	t.Run("base template always present", func(t *testing.T) {
		c := persona.New(1, "")
		out := c.Compose(0)
		require.Contains(t, out, "You are **Kira**")
		require.Contains(t, out, "# Context (Founder Playbook)")
	})
}

func TestSpicePolicy(t *testing.T) {
	t.Run("each level maps to a distinct policy", func(t *testing.T) {
		seen := map[string]bool{}
		for level := persona.MinSpice; level <= persona.MaxSpice; level++ {
			policy := persona.SpicePolicy(level)
			require.NotEmpty(t, policy)
			require.False(t, seen[policy], "policy for level %d duplicated", level)
			seen[policy] = true
		}
	})

	t.Run("out-of-range falls back to default", func(t *testing.T) {
		def := persona.SpicePolicy(persona.DefaultSpice)
		require.Equal(t, def, persona.SpicePolicy(-1))
		require.Equal(t, def, persona.SpicePolicy(99))
	})

	t.Run("compose at out-of-range level uses default policy", func(t *testing.T) {
		c := persona.New(1, "")
		require.Contains(t, c.Compose(5), persona.SpicePolicy(persona.DefaultSpice))
	})
}

func TestParseSpice(t *testing.T) {
	require.Equal(t, 2, persona.ParseSpice("2", 1))
	require.Equal(t, 0, persona.ParseSpice(" 0 ", 1))
	require.Equal(t, 1, persona.ParseSpice("", 1))
	require.Equal(t, 1, persona.ParseSpice("banana", 1))
	require.Equal(t, 1, persona.ParseSpice("-1", 1))
	require.Equal(t, 1, persona.ParseSpice("99", 1))
	require.Equal(t, persona.DefaultSpice, persona.ParseSpice("nope", 42))
}
