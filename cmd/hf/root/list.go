package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IgnasAns/HabitFlow/internal/datekey"
	"github.com/IgnasAns/HabitFlow/internal/engine"
	"github.com/IgnasAns/HabitFlow/internal/ui"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits with today's progress and streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			habits := svc.Habits(ctx)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTarget, "Habits"))

			today := datekey.Today()
			for _, h := range habits {
				state := ui.Muted.Render(fmt.Sprintf("%d/%d", h.ProgressOn(today), h.Target()))
				switch {
				case h.CompletedOn(today):
					state = ui.Good.Render(ui.IconDone)
				case h.FailedOn(today):
					state = ui.Bad.Render(ui.IconFail)
				}

				streak := ""
				if h.Streak > 0 {
					streak = "  " + ui.Warn.Render(fmt.Sprintf("%s%d", ui.IconFlame, h.Streak))
				}
				goal := ""
				if h.Goal > 0 {
					goal = "  " + ui.Muted.Render(fmt.Sprintf("goal %d/%d", engine.TotalProgress(h), h.Goal))
				}

				fmt.Fprintf(out, "%s  %s %s  %s%s%s\n",
					ui.Dim.Render(shortID(h.ID)),
					h.Icon,
					ui.HabitColor(h.ColorIndex).Render(h.Name),
					state, streak, goal)
			}
			if len(habits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No habits. Add one with `hf add`."))
			}
			return nil
		},
	}

	return cmd
}
