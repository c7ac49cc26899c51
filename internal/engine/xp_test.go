package engine

import "testing"

func TestXPForLevelCurve(t *testing.T) {
	cases := []struct{ level, want int }{
		{1, 100},
		{2, 150},
		{3, 225},
		{4, 337},
	}
	for _, c := range cases {
		if got := XPForLevel(c.level); got != c.want {
			t.Fatalf("XPForLevel(%d)=%d, want %d", c.level, got, c.want)
		}
	}
	for lvl := 1; lvl < 30; lvl++ {
		if XPForLevel(lvl+1) <= XPForLevel(lvl) {
			t.Fatalf("curve not strictly increasing at level %d", lvl)
		}
	}
}

func TestCalculateLevelBoundaries(t *testing.T) {
	cases := []struct {
		totalXP int
		want    LevelInfo
	}{
		{0, LevelInfo{Level: 1, CurrentXP: 0, XPNeeded: 100}},
		{99, LevelInfo{Level: 1, CurrentXP: 99, XPNeeded: 100}},
		{100, LevelInfo{Level: 2, CurrentXP: 0, XPNeeded: 150}},
		{249, LevelInfo{Level: 2, CurrentXP: 149, XPNeeded: 150}},
		{250, LevelInfo{Level: 3, CurrentXP: 0, XPNeeded: 225}},
		{-5, LevelInfo{Level: 1, CurrentXP: 0, XPNeeded: 100}},
	}
	for _, c := range cases {
		if got := CalculateLevel(c.totalXP); got != c.want {
			t.Fatalf("CalculateLevel(%d)=%+v, want %+v", c.totalXP, got, c.want)
		}
	}
}

func TestCalculateLevelReconstructsInput(t *testing.T) {
	for totalXP := 0; totalXP <= 10000; totalXP += 7 {
		info := CalculateLevel(totalXP)
		if info.CurrentXP < 0 || info.CurrentXP >= info.XPNeeded {
			t.Fatalf("totalXP=%d: CurrentXP %d out of [0,%d)", totalXP, info.CurrentXP, info.XPNeeded)
		}
		sum := info.CurrentXP
		for lvl := 1; lvl < info.Level; lvl++ {
			sum += XPForLevel(lvl)
		}
		if sum != totalXP {
			t.Fatalf("totalXP=%d: breakdown reconstructs to %d", totalXP, sum)
		}
	}
}

func TestStreakBonusCap(t *testing.T) {
	if got := streakBonus(2); got != 10 {
		t.Fatalf("streakBonus(2)=%d, want 10", got)
	}
	if got := streakBonus(10); got != 50 {
		t.Fatalf("streakBonus(10)=%d, want 50", got)
	}
	if got := streakBonus(100); got != 50 {
		t.Fatalf("streakBonus(100)=%d, want capped 50", got)
	}
}
