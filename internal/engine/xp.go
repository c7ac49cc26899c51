package engine

import "math"

const (
	// BaseLevelXP is the XP required to complete level 1.
	BaseLevelXP = 100

	// LevelGrowth is the geometric growth factor between levels.
	LevelGrowth = 1.5

	// CompletionXP is the base XP for completing a habit for a day;
	// un-completing costs the same amount.
	CompletionXP = 25

	// StreakBonusPerDay and StreakBonusCap bound the bonus added on
	// toggle completions while a streak is running.
	StreakBonusPerDay = 5
	StreakBonusCap    = 50
)

// XPForLevel returns the XP required to complete the given level:
// floor(100 * 1.5^(level-1)). Level 1 requires 100, level 2 requires
// 150, level 3 requires 225; strictly increasing.
func XPForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(BaseLevelXP * math.Pow(LevelGrowth, float64(level-1))))
}

// CalculateLevel maps total XP to the current level, XP into that
// level, and the XP needed to finish it. The per-level requirement
// grows geometrically, so this terminates for any finite input.
func CalculateLevel(totalXP int) LevelInfo {
	if totalXP < 0 {
		totalXP = 0
	}

	level := 1
	needed := XPForLevel(level)
	remaining := totalXP
	for remaining >= needed {
		remaining -= needed
		level++
		needed = XPForLevel(level)
	}
	return LevelInfo{Level: level, CurrentXP: remaining, XPNeeded: needed}
}

// streakBonus is the bonus XP awarded on top of a positive completion
// gain while a streak longer than one day is running.
func streakBonus(streak int) int {
	bonus := streak * StreakBonusPerDay
	if bonus > StreakBonusCap {
		bonus = StreakBonusCap
	}
	return bonus
}
