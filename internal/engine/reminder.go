package engine

import (
	"fmt"

	"github.com/IgnasAns/HabitFlow/internal/datekey"
	"github.com/IgnasAns/HabitFlow/internal/repo"
)

// ReminderContent composes the daily-reminder copy from today's state.
// Scheduling and delivery belong to an external collaborator; this only
// computes the content it should send.
func ReminderContent(habits []*repo.Habit) (title, body string) {
	title = "Time to build habits! 🎯"

	today := datekey.Today()
	remaining := 0
	for _, h := range habits {
		if !h.CompletedOn(today) {
			remaining++
		}
	}

	switch remaining {
	case 0:
		body = "All habits are done for today. Keep the streak alive tomorrow."
	case 1:
		body = "1 habit left today. Check in and complete it to maintain your streak."
	default:
		body = fmt.Sprintf("%d habits left today. Check in and complete them to maintain your streak.", remaining)
	}
	return title, body
}
