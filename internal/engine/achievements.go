package engine

import (
	"context"

	"github.com/IgnasAns/HabitFlow/internal/repo"
)

// Milestone is a badge the user can earn. The earned set lives on the
// stats record; this list is the catalog shown by the stats surfaces.
type Milestone struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

func Milestones() []Milestone {
	return []Milestone{
		{ID: "first_completion", Name: "First Step", Description: "Complete a habit for the first time", Icon: "🌱"},
		{ID: "streak_7", Name: "One Week Strong", Description: "Hold a 7-day streak", Icon: "🔥"},
		{ID: "streak_30", Name: "Habit Formed", Description: "Hold a 30-day streak", Icon: "🏔️"},
		{ID: "level_5", Name: "Climber", Description: "Reach level 5", Icon: "⭐"},
		{ID: "level_10", Name: "Veteran", Description: "Reach level 10", Icon: "🌟"},
	}
}

// evaluateMilestones unlocks any milestones the current state earns and
// returns the newly earned ids. Milestones never un-earn.
func (s *Service) evaluateMilestones(ctx context.Context, h *repo.Habit) []string {
	var earned []string

	if CompletedDays(h) > 0 {
		earned = append(earned, "first_completion")
	}
	if h.Streak >= 7 {
		earned = append(earned, "streak_7")
	}
	if h.Streak >= 30 {
		earned = append(earned, "streak_30")
	}

	level := CalculateLevel(s.stats.Get(ctx).TotalXP).Level
	if level >= 5 {
		earned = append(earned, "level_5")
	}
	if level >= 10 {
		earned = append(earned, "level_10")
	}

	var unlocked []string
	for _, id := range earned {
		if s.stats.Unlock(ctx, id) {
			unlocked = append(unlocked, id)
		}
	}
	return unlocked
}
