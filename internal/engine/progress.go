package engine

import (
	"context"

	"github.com/IgnasAns/HabitFlow/internal/datekey"
	"github.com/IgnasAns/HabitFlow/internal/repo"
)

// dayState derives the tagged state of one (habit, day) pair.
func dayState(h *repo.Habit, key string) DayState {
	switch {
	case h.CompletedOn(key):
		return DayCompleted
	case h.FailedOn(key):
		return DayFailed
	default:
		return DayEmpty
	}
}

// setDayState is the only writer of the per-day maps. It keeps the
// invariant that an explicitly failed day carries zero progress.
func setDayState(h *repo.Habit, key string, st DayState) {
	switch st {
	case DayCompleted:
		h.Completions[key] = h.Target()
		delete(h.ExplicitFailures, key)
	case DayFailed:
		h.Completions[key] = 0
		h.ExplicitFailures[key] = true
	default:
		h.Completions[key] = 0
		delete(h.ExplicitFailures, key)
	}
}

// ToggleCompletion cycles one day (today when key is empty) through
// Empty → Completed → ExplicitlyFailed → Empty. Completing earns XP
// plus a streak bonus; un-completing takes the base XP back. Returns
// nil for an unknown habit or a day before the habit existed: nothing
// happened, nothing to render.
func (s *Service) ToggleCompletion(ctx context.Context, habitID, key string) *ToggleResult {
	habits := s.habits.List(ctx)
	h := findHabit(habits, habitID)
	if h == nil {
		return nil
	}

	if key == "" {
		key = datekey.Today()
	}
	if key < h.CreatedKey() {
		return nil
	}

	xp := 0
	switch dayState(h, key) {
	case DayEmpty:
		setDayState(h, key, DayCompleted)
		xp = CompletionXP
	case DayCompleted:
		setDayState(h, key, DayFailed)
		xp = -CompletionXP
	case DayFailed:
		setDayState(h, key, DayEmpty)
	}

	h.Streak = CalculateStreak(h.Completions, h.Target())
	if xp > 0 && h.Streak > 1 {
		xp += streakBonus(h.Streak)
	}

	s.habits.Save(ctx, habits)
	return s.finishMutation(ctx, h, xp)
}

// IncrementProgress adds amount (possibly negative) to the day's
// progress, clamped into [0, target]. XP moves only when the day
// crosses the completion threshold, and no streak bonus applies.
// Returns nil when already at target and amount is positive, and for
// the same guards as ToggleCompletion.
func (s *Service) IncrementProgress(ctx context.Context, habitID string, amount int, key string) *ToggleResult {
	habits := s.habits.List(ctx)
	h := findHabit(habits, habitID)
	if h == nil {
		return nil
	}

	if key == "" {
		key = datekey.Today()
	}
	if key < h.CreatedKey() {
		return nil
	}

	target := h.Target()
	old := h.ProgressOn(key)
	if old >= target && amount > 0 {
		return nil
	}

	next := old + amount
	if next < 0 {
		next = 0
	}
	if next > target {
		next = target
	}
	h.Completions[key] = next
	if next > 0 {
		// Partial progress clears an explicit failure mark.
		delete(h.ExplicitFailures, key)
	}

	xp := 0
	switch {
	case old < target && next >= target:
		xp = CompletionXP
	case old >= target && next < target:
		xp = -CompletionXP
	}

	h.Streak = CalculateStreak(h.Completions, target)

	s.habits.Save(ctx, habits)
	return s.finishMutation(ctx, h, xp)
}

// applyXPDelta moves total XP by delta, clamped at zero, and reports
// whether the level increased. Level-downs are silent.
func (s *Service) applyXPDelta(ctx context.Context, delta int) (leveledUp bool, newLevel int) {
	stats := s.stats.Get(ctx)
	pre := CalculateLevel(stats.TotalXP)

	stats.TotalXP += delta
	if stats.TotalXP < 0 {
		stats.TotalXP = 0
	}
	post := CalculateLevel(stats.TotalXP)
	s.stats.Save(ctx, stats)

	if post.Level > pre.Level {
		return true, post.Level
	}
	return false, 0
}

func (s *Service) finishMutation(ctx context.Context, h *repo.Habit, xp int) *ToggleResult {
	res := &ToggleResult{Habit: h, XPGained: xp}
	if xp != 0 {
		res.LeveledUp, res.NewLevel = s.applyXPDelta(ctx, xp)
	}
	res.Unlocked = s.evaluateMilestones(ctx, h)
	return res
}

func findHabit(habits []*repo.Habit, id string) *repo.Habit {
	for _, h := range habits {
		if h.ID == id {
			return h
		}
	}
	return nil
}
