package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IgnasAns/HabitFlow/internal/storage"
)

func TestStatsDefaultsToZero(t *testing.T) {
	ctx := context.Background()
	r := NewStats(storage.NewMemory(), nil)

	stats := r.Get(ctx)
	assert.Equal(t, 0, stats.TotalXP)
	assert.Empty(t, stats.Achievements)
}

func TestStatsRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := NewStats(storage.NewMemory(), nil)

	r.Save(ctx, &UserStats{TotalXP: 320, Achievements: []string{"streak_7"}})
	stats := r.Get(ctx)
	assert.Equal(t, 320, stats.TotalXP)
	assert.Equal(t, []string{"streak_7"}, stats.Achievements)
}

func TestStatsDegradesOnMalformedJSON(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	require.NoError(t, st.Set(ctx, statsKey, `]]`))

	r := NewStats(st, nil)
	stats := r.Get(ctx)
	assert.Equal(t, 0, stats.TotalXP)
	assert.Empty(t, stats.Achievements)
}

func TestUnlockIsIdempotent(t *testing.T) {
	ctx := context.Background()
	r := NewStats(storage.NewMemory(), nil)

	assert.True(t, r.Unlock(ctx, "first_completion"))
	assert.False(t, r.Unlock(ctx, "first_completion"))

	stats := r.Get(ctx)
	assert.Equal(t, []string{"first_completion"}, stats.Achievements)
}
