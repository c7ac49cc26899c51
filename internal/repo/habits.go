package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/IgnasAns/HabitFlow/internal/storage"
)

const (
	habitsKey      = "habits"
	statsKey       = "user_stats"
	initializedKey = "initialized"

	initializedSentinel = "true"
)

// Keys returns every persisted key, for a full app reset.
func Keys() []string {
	return []string{habitsKey, statsKey, initializedKey}
}

// Habits is the habit-list repository. The whole collection is read,
// mutated in memory, and written back on every change; storage failures
// are logged and degraded (empty list on read, no-op on write) rather
// than propagated.
type Habits struct {
	store storage.Store
	log   *zap.Logger
}

func NewHabits(st storage.Store, log *zap.Logger) *Habits {
	if log == nil {
		log = zap.NewNop()
	}
	return &Habits{store: st, log: log}
}

// List returns all habits, seeding the default catalog on first run and
// backfilling fields missing from older records.
func (r *Habits) List(ctx context.Context) []*Habit {
	r.ensureSeeded(ctx)

	raw, ok, err := r.store.Get(ctx, habitsKey)
	if err != nil {
		r.log.Warn("load habits", zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	var habits []*Habit
	if err := json.Unmarshal([]byte(raw), &habits); err != nil {
		r.log.Warn("malformed habit list", zap.Error(err))
		return nil
	}
	for _, h := range habits {
		h.normalize()
	}
	return habits
}

// Get returns the habit with the given id, or nil.
func (r *Habits) Get(ctx context.Context, id string) *Habit {
	for _, h := range r.List(ctx) {
		if h.ID == id {
			return h
		}
	}
	return nil
}

// Save persists the full habit list.
func (r *Habits) Save(ctx context.Context, habits []*Habit) {
	if habits == nil {
		habits = []*Habit{}
	}
	raw, err := json.Marshal(habits)
	if err != nil {
		r.log.Warn("encode habits", zap.Error(err))
		return
	}
	if err := r.store.Set(ctx, habitsKey, string(raw)); err != nil {
		r.log.Warn("save habits", zap.Error(err))
	}
}

// Add appends a new habit, assigning id, creation time and empty day
// maps, and returns it.
func (r *Habits) Add(ctx context.Context, h Habit) *Habit {
	h.ID = uuid.NewString()
	h.CreatedAt = time.Now()
	h.Completions = map[string]int{}
	h.ExplicitFailures = map[string]bool{}
	h.Streak = 0
	h.normalize()

	habits := r.List(ctx)
	habits = append(habits, &h)
	r.Save(ctx, habits)
	return &h
}

// Update applies a partial-field patch and returns the updated habit,
// or nil when the id is unknown.
func (r *Habits) Update(ctx context.Context, id string, p Patch) *Habit {
	habits := r.List(ctx)
	for _, h := range habits {
		if h.ID == id {
			p.apply(h)
			r.Save(ctx, habits)
			return h
		}
	}
	return nil
}

// Delete removes the habit with the given id. Unknown ids are a no-op.
func (r *Habits) Delete(ctx context.Context, id string) {
	habits := r.List(ctx)
	filtered := habits[:0]
	for _, h := range habits {
		if h.ID != id {
			filtered = append(filtered, h)
		}
	}
	r.Save(ctx, filtered)
}

func (r *Habits) ensureSeeded(ctx context.Context) {
	_, ok, err := r.store.Get(ctx, initializedKey)
	if err != nil {
		r.log.Warn("read initialized flag", zap.Error(err))
		return
	}
	if ok {
		return
	}

	seeds, err := DefaultCatalog()
	if err != nil {
		r.log.Warn("load default catalog", zap.Error(err))
		return
	}

	now := time.Now()
	habits := make([]*Habit, 0, len(seeds))
	for _, s := range seeds {
		h := &Habit{
			ID:               uuid.NewString(),
			Name:             s.Name,
			Icon:             s.Icon,
			ColorIndex:       s.ColorIndex,
			Frequency:        DefaultFrequency,
			Goal:             s.Goal,
			DailyTarget:      s.DailyTarget,
			CreatedAt:        now,
			Completions:      map[string]int{},
			ExplicitFailures: map[string]bool{},
		}
		h.normalize()
		habits = append(habits, h)
	}
	r.Save(ctx, habits)

	if err := r.store.Set(ctx, initializedKey, initializedSentinel); err != nil {
		r.log.Warn("mark initialized", zap.Error(err))
	}
}

// Reset removes every persisted record. The next List re-seeds the
// default catalog.
func Reset(ctx context.Context, st storage.Store, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := st.RemoveMany(ctx, Keys()); err != nil {
		log.Warn("reset app", zap.Error(err))
		return
	}
	log.Info("app reset, all records removed")
}
