// Package repo persists habits and user stats as JSON records in the
// key-value store. The JSON shapes are the storage contract: a habit
// array under one key, a stats object under another, and a sentinel
// marking first-run seeding as done.
package repo

import (
	"strings"
	"time"

	"github.com/IgnasAns/HabitFlow/internal/datekey"
)

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyCustom:
		return true
	default:
		return false
	}
}

// DefaultFrequency is used when user input is missing/invalid. Only
// daily semantics are implemented; other values are recorded as-is.
const DefaultFrequency = FrequencyDaily

func ParseFrequency(input string) (Frequency, bool) {
	f := Frequency(strings.TrimSpace(strings.ToLower(input)))
	return f, f.IsValid()
}

type Habit struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Icon       string    `json:"icon"`
	ColorIndex int       `json:"colorIndex"`
	Frequency  Frequency `json:"frequency"`
	// Goal is an optional lifetime total count; zero means none. It has
	// no engine semantics, only display.
	Goal        int       `json:"goal,omitempty"`
	DailyTarget int       `json:"dailyTarget"`
	CreatedAt   time.Time `json:"createdAt"`
	// Completions maps date key -> progress count for that day. Sparse;
	// absence means zero.
	Completions map[string]int `json:"completions"`
	// ExplicitFailures marks days the user actively marked failed,
	// distinct from days they simply never touched.
	ExplicitFailures map[string]bool `json:"explicitFailures"`
	// Streak is the cached consecutive-day streak, recomputed by the
	// engine after every completion mutation.
	Streak int `json:"streak"`
}

// Target returns the daily target, defaulting to 1 when unset or
// invalid.
func (h *Habit) Target() int {
	if h.DailyTarget <= 0 {
		return 1
	}
	return h.DailyTarget
}

// CreatedKey is the date key of the habit's creation day. No completion
// or failure may exist for any key before it.
func (h *Habit) CreatedKey() string {
	return datekey.Format(datekey.StartOfDay(h.CreatedAt))
}

// ProgressOn returns the progress count recorded for key.
func (h *Habit) ProgressOn(key string) int {
	return h.Completions[key]
}

// CompletedOn reports whether the day's progress reached the target.
func (h *Habit) CompletedOn(key string) bool {
	return h.ProgressOn(key) >= h.Target()
}

// FailedOn reports whether the day was explicitly marked failed.
func (h *Habit) FailedOn(key string) bool {
	return h.ExplicitFailures[key]
}

// normalize backfills fields that may be missing from records written
// by older versions. Tolerated at read time, never a hard failure.
func (h *Habit) normalize() {
	if h.Completions == nil {
		h.Completions = map[string]int{}
	}
	if h.ExplicitFailures == nil {
		h.ExplicitFailures = map[string]bool{}
	}
	if h.DailyTarget <= 0 {
		h.DailyTarget = 1
	}
	if h.Streak < 0 {
		h.Streak = 0
	}
	if !h.Frequency.IsValid() {
		h.Frequency = DefaultFrequency
	}
}

// Patch is a partial-field habit update. Nil fields are left unchanged.
type Patch struct {
	Name        *string
	Icon        *string
	ColorIndex  *int
	Frequency   *Frequency
	Goal        *int
	DailyTarget *int
}

func (p Patch) apply(h *Habit) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Icon != nil {
		h.Icon = *p.Icon
	}
	if p.ColorIndex != nil {
		h.ColorIndex = *p.ColorIndex
	}
	if p.Frequency != nil && p.Frequency.IsValid() {
		h.Frequency = *p.Frequency
	}
	if p.Goal != nil {
		h.Goal = *p.Goal
	}
	if p.DailyTarget != nil && *p.DailyTarget > 0 {
		h.DailyTarget = *p.DailyTarget
	}
}

type UserStats struct {
	TotalXP      int      `json:"totalXp"`
	Achievements []string `json:"achievements"`
}

func (s *UserStats) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a == id {
			return true
		}
	}
	return false
}
