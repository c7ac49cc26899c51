package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HabitFlow theme (CLI + TUI).
// Kept intentionally small: reusable styles, a few emojis, and the
// habit color palette indexed by each habit's colorIndex.

const (
	IconSparkle = "✨"
	IconDone    = "✅"
	IconFail    = "❌"
	IconFlame   = "🔥"
	IconTarget  = "🎯"
	IconBolt    = "⚡"
	IconTrophy  = "🏆"
	IconChart   = "📅"
	IconSeed    = "🌱"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
)

var (
	cPrimary = lipgloss.Color("44")  // cyan
	cAccent  = lipgloss.Color("42")  // emerald
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // amber
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

// habitPalette mirrors the app's eight habit colors; colorIndex wraps
// around it.
var habitPalette = []lipgloss.Color{
	lipgloss.Color("#06B6D4"), // cyan
	lipgloss.Color("#10B981"), // emerald
	lipgloss.Color("#F59E0B"), // amber
	lipgloss.Color("#3B82F6"), // blue
	lipgloss.Color("#EC4899"), // pink
	lipgloss.Color("#F97316"), // orange
	lipgloss.Color("#84CC16"), // lime
	lipgloss.Color("#0EA5E9"), // sky
}

// HabitColor returns the palette style for a habit's colorIndex.
func HabitColor(colorIndex int) lipgloss.Style {
	if colorIndex < 0 {
		colorIndex = 0
	}
	c := habitPalette[colorIndex%len(habitPalette)]
	return lipgloss.NewStyle().Foreground(c)
}

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// ProgressBar renders a fixed-width bar, used for level progress.
func ProgressBar(current, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}
	filled := current * width / total
	return Key.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}

// GridCell renders one day of a habit grid. Today wins over missed;
// inactive days are placeholders for dates before the habit existed.
func GridCell(completed, failed, inactive, today bool) string {
	switch {
	case inactive:
		return Dim.Render("·")
	case completed:
		return Good.Render("■")
	case failed:
		return Bad.Render("✕")
	case today:
		return Gold.Render("□")
	default:
		return Muted.Render("▫")
	}
}
