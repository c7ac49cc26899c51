package engine

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/IgnasAns/HabitFlow/internal/repo"
	"github.com/IgnasAns/HabitFlow/internal/storage"
)

type Service struct {
	store  storage.Store
	habits *repo.Habits
	stats  *repo.Stats
	log    *zap.Logger
}

func NewService(st storage.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:  st,
		habits: repo.NewHabits(st, log),
		stats:  repo.NewStats(st, log),
		log:    log,
	}
}

func (s *Service) HabitRepo() *repo.Habits { return s.habits }
func (s *Service) StatsRepo() *repo.Stats  { return s.stats }

func normalizeName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return "", errors.New("name is required")
	}
	return n, nil
}

type AddHabitInput struct {
	Name        string
	Icon        string
	ColorIndex  int
	Frequency   repo.Frequency
	DailyTarget int
	Goal        int
}

// AddHabit creates a habit with sane defaults for missing input.
func (s *Service) AddHabit(ctx context.Context, in AddHabitInput) (*repo.Habit, error) {
	name, err := normalizeName(in.Name)
	if err != nil {
		return nil, err
	}

	icon := strings.TrimSpace(in.Icon)
	if icon == "" {
		icon = "✨"
	}
	freq := in.Frequency
	if !freq.IsValid() {
		freq = repo.DefaultFrequency
	}
	target := in.DailyTarget
	if target <= 0 {
		target = 1
	}
	goal := in.Goal
	if goal < 0 {
		goal = 0
	}

	return s.habits.Add(ctx, repo.Habit{
		Name:        name,
		Icon:        icon,
		ColorIndex:  in.ColorIndex,
		Frequency:   freq,
		Goal:        goal,
		DailyTarget: target,
	}), nil
}

// Habits returns all habits, seeded on first run.
func (s *Service) Habits(ctx context.Context) []*repo.Habit {
	return s.habits.List(ctx)
}

// UserStats returns the global stats record.
func (s *Service) UserStats(ctx context.Context) *repo.UserStats {
	return s.stats.Get(ctx)
}

// Level returns the level breakdown for the current total XP.
func (s *Service) Level(ctx context.Context) LevelInfo {
	return CalculateLevel(s.stats.Get(ctx).TotalXP)
}

// UpdateHabit applies a partial update; nil when the id is unknown.
func (s *Service) UpdateHabit(ctx context.Context, id string, p repo.Patch) *repo.Habit {
	return s.habits.Update(ctx, id, p)
}

// DeleteHabit removes a habit. Unknown ids are a no-op.
func (s *Service) DeleteHabit(ctx context.Context, id string) {
	s.habits.Delete(ctx, id)
}

// Reset clears every persisted record; the next read re-seeds defaults.
func (s *Service) Reset(ctx context.Context) {
	repo.Reset(ctx, s.store, s.log)
}
