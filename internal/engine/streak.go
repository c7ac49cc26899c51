package engine

import (
	"sort"

	"github.com/IgnasAns/HabitFlow/internal/datekey"
)

// CalculateStreak derives the current consecutive-completion streak
// from a sparse completion map. A day counts when its progress reached
// dailyTarget. The streak is anchored at the most recent completed day,
// which must be today or yesterday; otherwise the streak is broken and
// the result is 0, no matter how long the older history is.
//
// Pure; re-derived after every completion mutation, never patched
// incrementally.
func CalculateStreak(completions map[string]int, dailyTarget int) int {
	if dailyTarget < 1 {
		dailyTarget = 1
	}

	var done []string
	for key, progress := range completions {
		if progress >= dailyTarget {
			done = append(done, key)
		}
	}
	if len(done) == 0 {
		return 0
	}
	sort.Sort(sort.Reverse(sort.StringSlice(done)))

	if done[0] != datekey.Today() && done[0] != datekey.Yesterday() {
		return 0
	}

	cur, err := datekey.Parse(done[0])
	if err != nil {
		return 0
	}

	streak := 1
	for i := 1; i < len(done); i++ {
		prev := cur.AddDate(0, 0, -1)
		if done[i] != datekey.Format(prev) {
			break
		}
		streak++
		cur = prev
	}
	return streak
}
