package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/IgnasAns/HabitFlow/internal/datekey"
	"github.com/IgnasAns/HabitFlow/internal/engine"
	"github.com/IgnasAns/HabitFlow/internal/repo"
	"github.com/IgnasAns/HabitFlow/internal/ui"
)

const stripDays = 30

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	habits []*repo.Habit
	stats  *repo.UserStats

	selected int
	lastLog  string
	loading  bool
}

type loadedMsg struct {
	habits []*repo.Habit
	stats  *repo.UserStats
}

type mutatedMsg struct {
	res *engine.ToggleResult
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{
			habits: m.svc.Habits(m.ctx),
			stats:  m.svc.UserStats(m.ctx),
		}
	}
}

func (m boardModel) toggleCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return mutatedMsg{res: m.svc.ToggleCompletion(m.ctx, id, "")}
	}
}

func (m boardModel) incrementCmd(id string, amount int) tea.Cmd {
	return func() tea.Msg {
		return mutatedMsg{res: m.svc.IncrementProgress(m.ctx, id, amount, "")}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loadedMsg:
		m.loading = false
		m.habits = msg.habits
		m.stats = msg.stats
		if m.selected >= len(m.habits) {
			m.selected = len(m.habits) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		return m, nil

	case mutatedMsg:
		if msg.res == nil {
			m.lastLog = "Nothing happened."
			return m, m.loadCmd()
		}
		m.lastLog = describeResult(msg.res)
		return m, m.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.habits)-1 {
				m.selected++
			}
			return m, nil
		case " ", "enter":
			if h := m.current(); h != nil {
				m.lastLog = "Toggling " + h.Name + "…"
				return m, m.toggleCmd(h.ID)
			}
			return m, nil
		case "+", "=":
			if h := m.current(); h != nil {
				return m, m.incrementCmd(h.ID, 1)
			}
			return m, nil
		case "-":
			if h := m.current(); h != nil {
				return m, m.incrementCmd(h.ID, -1)
			}
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) current() *repo.Habit {
	if m.selected < 0 || m.selected >= len(m.habits) {
		return nil
	}
	return m.habits[m.selected]
}

func describeResult(res *engine.ToggleResult) string {
	parts := []string{}
	switch {
	case res.XPGained > 0:
		parts = append(parts, fmt.Sprintf("+%d XP", res.XPGained))
	case res.XPGained < 0:
		parts = append(parts, fmt.Sprintf("%d XP", res.XPGained))
	default:
		parts = append(parts, "cleared")
	}
	if res.Habit.Streak > 1 {
		parts = append(parts, fmt.Sprintf("%s %d-day streak", ui.IconFlame, res.Habit.Streak))
	}
	if res.LeveledUp {
		parts = append(parts, fmt.Sprintf("%s level %d!", ui.BadgeLevelUp, res.NewLevel))
	}
	for _, id := range res.Unlocked {
		parts = append(parts, ui.IconTrophy+" "+id)
	}
	return res.Habit.Name + ": " + strings.Join(parts, "  ")
}

func (m boardModel) View() string {
	if m.loading {
		return "Loading…\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	today := datekey.Today()
	for i, h := range m.habits {
		b.WriteString(m.renderHabitRow(h, today, i == m.selected))
		b.WriteString("\n")
	}
	if len(m.habits) == 0 {
		b.WriteString(ui.Muted.Render("No habits yet. Add one with `hf add`."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.Muted.Render("↑/↓ select · space toggle · +/- progress · r refresh · q quit"))
	b.WriteString("\n")
	b.WriteString(ui.Dim.Render(m.lastLog))
	b.WriteString("\n")
	return b.String()
}

func (m boardModel) renderHeader() string {
	info := engine.CalculateLevel(m.stats.TotalXP)
	bar := ui.ProgressBar(info.CurrentXP, info.XPNeeded, 24)
	return ui.Heading(ui.IconTarget, "HabitFlow") + "\n" +
		fmt.Sprintf("%s %d  %s  %s",
			ui.Key.Render("Level"), info.Level, bar,
			ui.Muted.Render(fmt.Sprintf("%d/%d XP", info.CurrentXP, info.XPNeeded)))
}

func (m boardModel) renderHabitRow(h *repo.Habit, today string, selected bool) string {
	name := h.Name
	if selected {
		name = ui.SelectedRow.Render("▸ " + name)
	} else {
		name = "  " + ui.HabitColor(h.ColorIndex).Render(name)
	}

	state := ui.Muted.Render(fmt.Sprintf("%d/%d", h.ProgressOn(today), h.Target()))
	if h.CompletedOn(today) {
		state = ui.Good.Render(ui.IconDone)
	} else if h.FailedOn(today) {
		state = ui.Bad.Render(ui.IconFail)
	}

	streak := ""
	if h.Streak > 0 {
		streak = ui.Warn.Render(fmt.Sprintf("%s%d", ui.IconFlame, h.Streak))
	}

	return fmt.Sprintf("%s %s  %s %s  %s", h.Icon, name, state, streak, renderStrip(h))
}

// renderStrip draws the last stripDays days as a compact heatmap row.
func renderStrip(h *repo.Habit) string {
	var b strings.Builder
	for _, d := range engine.GenerateGridData(h, stripDays) {
		b.WriteString(ui.GridCell(d.Completed, d.ExplicitlyFailed, d.Inactive, d.Today))
	}
	return b.String()
}
