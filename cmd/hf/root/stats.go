package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IgnasAns/HabitFlow/internal/engine"
	"github.com/IgnasAns/HabitFlow/internal/ui"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show level, XP and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			stats := svc.UserStats(ctx)
			info := engine.CalculateLevel(stats.TotalXP)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Your Progress"))
			fmt.Fprintln(out, ui.LabelValue("Level", info.Level))
			fmt.Fprintf(out, "%s %s\n",
				ui.ProgressBar(info.CurrentXP, info.XPNeeded, 24),
				ui.Muted.Render(fmt.Sprintf("%d/%d XP", info.CurrentXP, info.XPNeeded)))
			fmt.Fprintln(out, ui.LabelValue("Total XP", stats.TotalXP))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconTrophy+" Achievements"))
			for _, m := range engine.Milestones() {
				if stats.HasAchievement(m.ID) {
					fmt.Fprintf(out, "- %s %s %s\n", m.Icon, ui.Gold.Render(m.Name), ui.Muted.Render(m.Description))
				} else {
					fmt.Fprintf(out, "- %s\n", ui.Dim.Render("🔒 "+m.Name+": "+m.Description))
				}
			}
			fmt.Fprintln(out, "")

			habits := svc.Habits(ctx)
			best := 0
			totalDone := 0
			for _, h := range habits {
				totalDone += engine.CompletedDays(h)
				if s := engine.BestStreak(h); s > best {
					best = s
				}
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconFlame+" Habits"))
			fmt.Fprintln(out, ui.LabelValue("Tracked", len(habits)))
			fmt.Fprintln(out, ui.LabelValue("Days completed", totalDone))
			fmt.Fprintln(out, ui.LabelValue("Best streak ever", best))
			return nil
		},
	}

	return cmd
}
