package engine

import (
	"time"

	"github.com/IgnasAns/HabitFlow/internal/datekey"
	"github.com/IgnasAns/HabitFlow/internal/repo"
)

// GenerateGridData projects a habit's history onto a fixed-length
// per-day display sequence, oldest first, ending at today. A past day
// is missed only when the habit already existed and the user neither
// completed it nor explicitly marked it failed; days before creation
// are inactive placeholders. Pure; recomputed on every render.
func GenerateGridData(h *repo.Habit, totalDays int) []GridDay {
	if h == nil || totalDays <= 0 {
		return nil
	}

	today := time.Now()
	todayKey := datekey.Today()
	createdKey := h.CreatedKey()
	target := h.Target()

	grid := make([]GridDay, 0, totalDays)
	for i := totalDays - 1; i >= 0; i-- {
		key := datekey.Format(today.AddDate(0, 0, -i))

		progress := h.ProgressOn(key)
		completed := progress >= target
		isToday := key == todayKey
		failed := h.FailedOn(key)
		inactive := key < createdKey
		missed := !completed && !isToday && !failed &&
			key < todayKey && key >= createdKey

		grid = append(grid, GridDay{
			Key:              key,
			Progress:         progress,
			DailyTarget:      target,
			Completed:        completed,
			Missed:           missed,
			Inactive:         inactive,
			Today:            isToday,
			ExplicitlyFailed: failed,
		})
	}
	return grid
}
