package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IgnasAns/HabitFlow/internal/engine"
	"github.com/IgnasAns/HabitFlow/internal/ui"
)

const gridWeekWidth = 7

func newGridCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "grid <habit>",
		Short: "Show a habit's completion grid",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("habit is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if days < 1 {
				days = 30
			}

			h, err := findHabit(svc.Habits(ctx), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, h.Icon+" "+h.Name))

			grid := engine.GenerateGridData(h, days)
			missed := 0
			var row strings.Builder
			for i, d := range grid {
				row.WriteString(ui.GridCell(d.Completed, d.ExplicitlyFailed, d.Inactive, d.Today))
				row.WriteString(" ")
				if d.Missed {
					missed++
				}
				if (i+1)%gridWeekWidth == 0 || i == len(grid)-1 {
					fmt.Fprintf(out, "  %s %s\n", row.String(), ui.Dim.Render(d.Key))
					row.Reset()
				}
			}

			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("Completed", engine.CompletedDays(h)))
			fmt.Fprintln(out, ui.LabelValue("Missed", missed))
			fmt.Fprintln(out, ui.LabelValue("Current streak", h.Streak))
			fmt.Fprintln(out, ui.LabelValue("Best streak", engine.BestStreak(h)))
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "n", 30, "Window size in days, ending today")

	return cmd
}
