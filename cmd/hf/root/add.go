package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IgnasAns/HabitFlow/internal/engine"
	"github.com/IgnasAns/HabitFlow/internal/repo"
	"github.com/IgnasAns/HabitFlow/internal/ui"
)

func newAddCmd() *cobra.Command {
	var icon string
	var colorIndex int
	var frequency string
	var target int
	var goal int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
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

			freq, ok := repo.ParseFrequency(frequency)
			if !ok {
				return fmt.Errorf("invalid frequency %q (daily|weekly|custom)", frequency)
			}

			h, err := svc.AddHabit(ctx, engine.AddHabitInput{
				Name:        args[0],
				Icon:        icon,
				ColorIndex:  colorIndex,
				Frequency:   freq,
				DailyTarget: target,
				Goal:        goal,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.Good.Render(ui.IconSparkle+" Added"),
				h.Icon,
				ui.HabitColor(h.ColorIndex).Render(h.Name),
				ui.Dim.Render("("+shortID(h.ID)+")"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&icon, "icon", "i", "✨", "Habit icon")
	cmd.Flags().IntVarP(&colorIndex, "color", "c", 0, "Palette color index")
	cmd.Flags().StringVarP(&frequency, "freq", "f", "daily", "Frequency (daily|weekly|custom)")
	cmd.Flags().IntVarP(&target, "target", "t", 1, "Daily target count")
	cmd.Flags().IntVarP(&goal, "goal", "g", 0, "Lifetime total goal (0 for none)")

	return cmd
}
