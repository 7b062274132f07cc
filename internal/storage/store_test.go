package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenMissingFile(t *testing.T) {
	store := Open(filepath.Join(t.TempDir(), "user_data.json"), zap.NewNop())
	assert.Equal(t, 0, store.Len())
}

func TestOpenMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := Open(path, zap.NewNop())
	assert.Equal(t, 0, store.Len())
}

func TestEnsureIdempotent(t *testing.T) {
	store := Open(filepath.Join(t.TempDir(), "user_data.json"), zap.NewNop())

	p, created := store.Ensure("42", "Вася")
	require.True(t, created)
	assert.Equal(t, "Вася", p.UserName)
	assert.Equal(t, 0, p.TotalTests)
	assert.NotNil(t, p.Mistakes)

	_, created = store.Ensure("42", "Другое имя")
	assert.False(t, created)
	assert.Equal(t, 1, store.Len())
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_data.json")
	store := Open(path, zap.NewNop())

	lastActive := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	pending := 7

	store.Ensure("42", "Вася")
	ok := store.Update("42", func(p *Profile) bool {
		p.TotalTests = 5
		p.CorrectAnswers = 3
		p.IncorrectAnswers = 2
		p.RecalcAccuracy()
		p.LastActive = lastActive
		p.Mistakes = []int{3, 1, 8}
		p.CurrentExample = &pending
		return true
	})
	require.True(t, ok)

	reloaded := Open(path, zap.NewNop())
	require.Equal(t, 1, reloaded.Len())

	found := reloaded.View("42", func(p Profile) {
		assert.Equal(t, "Вася", p.UserName)
		assert.Equal(t, 5, p.TotalTests)
		assert.Equal(t, 3, p.CorrectAnswers)
		assert.Equal(t, 2, p.IncorrectAnswers)
		assert.InDelta(t, 60.0, p.Accuracy, 0.001)
		assert.True(t, p.LastActive.Equal(lastActive))
		assert.Equal(t, []int{3, 1, 8}, p.Mistakes)
		require.NotNil(t, p.CurrentExample)
		assert.Equal(t, 7, *p.CurrentExample)
	})
	assert.True(t, found)
}

func TestSavePreservesNonASCII(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_data.json")
	store := Open(path, zap.NewNop())

	store.Ensure("42", "Анна Петровна")
	require.NoError(t, store.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Анна Петровна")
	assert.NotContains(t, string(data), `\u`)
}

func TestUpdateUnknownUser(t *testing.T) {
	store := Open(filepath.Join(t.TempDir(), "user_data.json"), zap.NewNop())

	ok := store.Update("99", func(p *Profile) bool { return true })
	assert.False(t, ok)

	ok = store.View("99", func(p Profile) {})
	assert.False(t, ok)
}

func TestAccuracyDerivation(t *testing.T) {
	p := &Profile{TotalTests: 0}
	assert.Equal(t, 0.0, p.ComputedAccuracy())

	p = &Profile{TotalTests: 4, CorrectAnswers: 3}
	assert.InDelta(t, 75.0, p.ComputedAccuracy(), 0.001)
}
