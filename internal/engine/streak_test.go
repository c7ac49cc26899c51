package engine

import (
	"testing"
	"time"

	"github.com/IgnasAns/HabitFlow/internal/datekey"
)

// dayKey returns the date key for n days before today.
func dayKey(daysAgo int) string {
	return datekey.Format(time.Now().AddDate(0, 0, -daysAgo))
}

func TestStreakEmptyHistory(t *testing.T) {
	if got := CalculateStreak(nil, 1); got != 0 {
		t.Fatalf("nil map streak=%d, want 0", got)
	}
	if got := CalculateStreak(map[string]int{}, 1); got != 0 {
		t.Fatalf("empty map streak=%d, want 0", got)
	}
}

func TestStreakBrokenWhenAnchorTooOld(t *testing.T) {
	// A long run that ended two days ago is no streak at all.
	completions := map[string]int{}
	for i := 2; i < 12; i++ {
		completions[dayKey(i)] = 1
	}
	if got := CalculateStreak(completions, 1); got != 0 {
		t.Fatalf("streak=%d, want 0 for history ending two days ago", got)
	}
}

func TestStreakAnchoredAtYesterday(t *testing.T) {
	// Completed on 5 consecutive days ending yesterday; today untouched.
	completions := map[string]int{}
	for i := 1; i <= 5; i++ {
		completions[dayKey(i)] = 1
	}
	if got := CalculateStreak(completions, 1); got != 5 {
		t.Fatalf("streak=%d, want 5", got)
	}
}

func TestStreakIncludesToday(t *testing.T) {
	completions := map[string]int{
		dayKey(0): 1,
		dayKey(1): 1,
		dayKey(2): 1,
	}
	if got := CalculateStreak(completions, 1); got != 3 {
		t.Fatalf("streak=%d, want 3", got)
	}
}

func TestStreakStopsAtGap(t *testing.T) {
	completions := map[string]int{
		dayKey(0): 1,
		dayKey(1): 1,
		// gap at 2 days ago
		dayKey(3): 1,
		dayKey(4): 1,
	}
	if got := CalculateStreak(completions, 1); got != 2 {
		t.Fatalf("streak=%d, want 2 (stop at first gap)", got)
	}
}

func TestStreakIgnoresBelowTargetDays(t *testing.T) {
	completions := map[string]int{
		dayKey(0): 8,
		dayKey(1): 3, // below target, breaks the run
		dayKey(2): 8,
	}
	if got := CalculateStreak(completions, 8); got != 1 {
		t.Fatalf("streak=%d, want 1", got)
	}
}
