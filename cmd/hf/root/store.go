package root

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/IgnasAns/HabitFlow/internal/engine"
	"github.com/IgnasAns/HabitFlow/internal/repo"
	"github.com/IgnasAns/HabitFlow/internal/storage"
)

func newLogger() *zap.Logger {
	if os.Getenv("HF_DEBUG") == "" {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	st, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	log := newLogger()
	cleanup := func() {
		_ = st.Close()
		_ = log.Sync()
	}
	return engine.NewService(st, log), cleanup, nil
}

// findHabit resolves a user-supplied selector to a habit: an exact id,
// an unambiguous id prefix, or a case-insensitive name match.
func findHabit(habits []*repo.Habit, selector string) (*repo.Habit, error) {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return nil, fmt.Errorf("habit is required")
	}

	var prefix []*repo.Habit
	for _, h := range habits {
		if h.ID == selector {
			return h, nil
		}
		if strings.HasPrefix(h.ID, selector) {
			prefix = append(prefix, h)
		}
	}
	if len(prefix) == 1 {
		return prefix[0], nil
	}
	if len(prefix) > 1 {
		return nil, fmt.Errorf("habit id prefix %q is ambiguous", selector)
	}

	var named []*repo.Habit
	for _, h := range habits {
		if strings.EqualFold(h.Name, selector) {
			named = append(named, h)
		}
	}
	if len(named) == 1 {
		return named[0], nil
	}
	if len(named) > 1 {
		return nil, fmt.Errorf("habit name %q is ambiguous, use the id", selector)
	}
	return nil, fmt.Errorf("no habit matches %q", selector)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
