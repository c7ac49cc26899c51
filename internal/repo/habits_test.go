package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IgnasAns/HabitFlow/internal/storage"
)

func TestListSeedsDefaultsOnce(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	r := NewHabits(st, nil)

	seeds, err := DefaultCatalog()
	require.NoError(t, err)
	require.NotEmpty(t, seeds)

	habits := r.List(ctx)
	require.Len(t, habits, len(seeds))
	for i, h := range habits {
		assert.NotEmpty(t, h.ID)
		assert.Equal(t, seeds[i].Name, h.Name)
		assert.GreaterOrEqual(t, h.DailyTarget, 1)
		assert.NotNil(t, h.Completions)
		assert.NotNil(t, h.ExplicitFailures)
	}

	// Deleting everything must not re-seed: the initialized flag is set.
	for _, h := range habits {
		r.Delete(ctx, h.ID)
	}
	assert.Empty(t, r.List(ctx))
}

func TestListBackfillsMissingFields(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	require.NoError(t, st.Set(ctx, initializedKey, initializedSentinel))
	// A record written by an older schema: no maps, no target, no streak.
	require.NoError(t, st.Set(ctx, habitsKey,
		`[{"id":"old","name":"Old habit","frequency":"sometimes","createdAt":"2024-01-01T10:00:00Z"}]`))

	r := NewHabits(st, nil)
	habits := r.List(ctx)
	require.Len(t, habits, 1)

	h := habits[0]
	assert.NotNil(t, h.Completions)
	assert.NotNil(t, h.ExplicitFailures)
	assert.Equal(t, 1, h.DailyTarget)
	assert.Equal(t, 0, h.Streak)
	assert.Equal(t, DefaultFrequency, h.Frequency)
}

func TestListDegradesOnMalformedJSON(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	require.NoError(t, st.Set(ctx, initializedKey, initializedSentinel))
	require.NoError(t, st.Set(ctx, habitsKey, `{not json`))

	r := NewHabits(st, nil)
	assert.Empty(t, r.List(ctx))
}

func TestAddAssignsIdentity(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	require.NoError(t, st.Set(ctx, initializedKey, initializedSentinel))
	r := NewHabits(st, nil)

	h := r.Add(ctx, Habit{Name: "Journal", Icon: "📓", DailyTarget: 1})
	require.NotNil(t, h)
	assert.NotEmpty(t, h.ID)
	assert.False(t, h.CreatedAt.IsZero())
	assert.NotNil(t, h.Completions)

	got := r.Get(ctx, h.ID)
	require.NotNil(t, got)
	assert.Equal(t, "Journal", got.Name)
}

func TestUpdateMergesPartialFields(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	require.NoError(t, st.Set(ctx, initializedKey, initializedSentinel))
	r := NewHabits(st, nil)

	h := r.Add(ctx, Habit{Name: "Run", Icon: "🏃", ColorIndex: 2, DailyTarget: 1})

	name := "Run 5k"
	target := 3
	updated := r.Update(ctx, h.ID, Patch{Name: &name, DailyTarget: &target})
	require.NotNil(t, updated)
	assert.Equal(t, "Run 5k", updated.Name)
	assert.Equal(t, 3, updated.DailyTarget)
	assert.Equal(t, "🏃", updated.Icon, "unpatched fields keep their values")
	assert.Equal(t, 2, updated.ColorIndex)

	assert.Nil(t, r.Update(ctx, "no-such-id", Patch{Name: &name}))
}

func TestResetThenReseed(t *testing.T) {
	ctx := context.Background()
	st := storage.NewMemory()
	r := NewHabits(st, nil)

	first := r.List(ctx)
	require.NotEmpty(t, first)

	Reset(ctx, st, nil)

	_, ok, err := st.Get(ctx, habitsKey)
	require.NoError(t, err)
	assert.False(t, ok, "reset removes the habit list")

	second := r.List(ctx)
	require.Len(t, second, len(first))
	assert.NotEqual(t, first[0].ID, second[0].ID, "re-seeded habits get fresh ids")
}
