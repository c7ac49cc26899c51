package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/IgnasAns/HabitFlow/internal/datekey"
	"github.com/IgnasAns/HabitFlow/internal/ui"
)

func newIncCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "inc <habit> [amount]",
		Short: "Add progress toward a habit's daily target",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return errors.New("habit (and optional amount) required")
			}
			if len(args) == 2 {
				if _, err := strconv.Atoi(args[1]); err != nil {
					return errors.New("amount must be an integer")
				}
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

			amount := 1
			if len(args) == 2 {
				amount, _ = strconv.Atoi(args[1])
			}

			h, err := findHabit(svc.Habits(ctx), args[0])
			if err != nil {
				return err
			}

			res := svc.IncrementProgress(ctx, h.ID, amount, date)
			if res == nil {
				if h.CompletedOn(dateOrToday(date)) && amount > 0 {
					return fmt.Errorf("%q is already at its target for that day", h.Name)
				}
				return fmt.Errorf("cannot change %q on that date", h.Name)
			}

			day := dateOrToday(date)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.H2.Render(ui.IconBolt+" Progress"), res.Habit.Icon, res.Habit.Name,
				ui.Muted.Render(fmt.Sprintf("(%d/%d)", res.Habit.ProgressOn(day), res.Habit.Target())))
			if res.XPGained != 0 {
				printToggleResult(cmd.OutOrStdout(), res, date)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Day to change (YYYY-MM-DD, default today)")

	return cmd
}

func dateOrToday(date string) string {
	if date == "" {
		return datekey.Today()
	}
	return date
}
