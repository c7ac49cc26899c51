// Package engine is the habit progress and progression core: the
// three-state per-day completion machine, streak derivation, the XP
// level curve and the grid projection. It owns all mutation of habit
// and stats records; outer surfaces only render its results.
package engine

import "github.com/IgnasAns/HabitFlow/internal/repo"

// DayState is the tagged per-day completion state. It is derived from
// the persisted progress count and failure mark by dayState and written
// only through setDayState, so a failed day with non-zero progress is
// unrepresentable.
type DayState int

const (
	DayEmpty DayState = iota
	DayCompleted
	DayFailed
)

// LevelInfo is the level breakdown derived from total XP. Never
// persisted; always recomputed.
type LevelInfo struct {
	Level     int
	CurrentXP int
	XPNeeded  int
}

// ToggleResult describes the outcome of a mutating operation so the
// caller can trigger reward presentation without re-deriving it.
type ToggleResult struct {
	Habit    *repo.Habit
	XPGained int
	// LeveledUp is set only for up-transitions; XP loss below a level
	// threshold silently reduces the level.
	LeveledUp bool
	// NewLevel is valid only when LeveledUp is true.
	NewLevel int
	// Unlocked lists achievement ids newly earned by this operation.
	Unlocked []string
}

// GridDay is the per-day display projection used by calendar and
// heatmap views. Derived on demand, never persisted.
type GridDay struct {
	Key              string
	Progress         int
	DailyTarget      int
	Completed        bool
	Missed           bool
	Inactive         bool
	Today            bool
	ExplicitlyFailed bool
}
