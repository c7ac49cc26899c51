package engine

import (
	"sort"

	"github.com/IgnasAns/HabitFlow/internal/datekey"
	"github.com/IgnasAns/HabitFlow/internal/repo"
)

// CompletedDays counts the days on which the habit reached its target.
func CompletedDays(h *repo.Habit) int {
	n := 0
	target := h.Target()
	for _, progress := range h.Completions {
		if progress >= target {
			n++
		}
	}
	return n
}

// TotalProgress sums all recorded progress, for lifetime-goal display.
func TotalProgress(h *repo.Habit) int {
	total := 0
	for _, progress := range h.Completions {
		total += progress
	}
	return total
}

// BestStreak is the longest run of consecutive completed days anywhere
// in the history, unlike the current streak it is not anchored at
// today.
func BestStreak(h *repo.Habit) int {
	target := h.Target()
	var done []string
	for key, progress := range h.Completions {
		if progress >= target {
			done = append(done, key)
		}
	}
	if len(done) == 0 {
		return 0
	}
	sort.Strings(done)

	best, run := 1, 1
	cur, err := datekey.Parse(done[0])
	if err != nil {
		return 0
	}
	for i := 1; i < len(done); i++ {
		next := cur.AddDate(0, 0, 1)
		if done[i] == datekey.Format(next) {
			run++
		} else {
			run = 1
			parsed, err := datekey.Parse(done[i])
			if err != nil {
				return best
			}
			next = parsed
		}
		if run > best {
			best = run
		}
		cur = next
	}
	return best
}
