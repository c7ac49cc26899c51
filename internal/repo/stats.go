package repo

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/IgnasAns/HabitFlow/internal/storage"
)

// Stats is the single global user-stats record, persisted independently
// of habits.
type Stats struct {
	store storage.Store
	log   *zap.Logger
}

func NewStats(st storage.Store, log *zap.Logger) *Stats {
	if log == nil {
		log = zap.NewNop()
	}
	return &Stats{store: st, log: log}
}

// Get returns the stats record, degrading to zero stats when the record
// is absent, unreadable or malformed.
func (r *Stats) Get(ctx context.Context) *UserStats {
	zero := &UserStats{Achievements: []string{}}

	raw, ok, err := r.store.Get(ctx, statsKey)
	if err != nil {
		r.log.Warn("load user stats", zap.Error(err))
		return zero
	}
	if !ok {
		return zero
	}

	var stats UserStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		r.log.Warn("malformed user stats", zap.Error(err))
		return zero
	}
	if stats.TotalXP < 0 {
		stats.TotalXP = 0
	}
	if stats.Achievements == nil {
		stats.Achievements = []string{}
	}
	return &stats
}

// Save persists the stats record.
func (r *Stats) Save(ctx context.Context, stats *UserStats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		r.log.Warn("encode user stats", zap.Error(err))
		return
	}
	if err := r.store.Set(ctx, statsKey, string(raw)); err != nil {
		r.log.Warn("save user stats", zap.Error(err))
	}
}

// Unlock records an achievement id and reports whether it was newly
// earned. Already-held ids are a no-op.
func (r *Stats) Unlock(ctx context.Context, id string) bool {
	stats := r.Get(ctx)
	if stats.HasAchievement(id) {
		return false
	}
	stats.Achievements = append(stats.Achievements, id)
	r.Save(ctx, stats)
	return true
}
