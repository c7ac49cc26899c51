package root

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/IgnasAns/HabitFlow/internal/engine"
	"github.com/IgnasAns/HabitFlow/internal/ui"
)

func newDoneCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "done <habit>",
		Short: "Toggle a habit's day: empty → done → failed → empty",
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

			h, err := findHabit(svc.Habits(ctx), args[0])
			if err != nil {
				return err
			}

			res := svc.ToggleCompletion(ctx, h.ID, date)
			if res == nil {
				return fmt.Errorf("cannot toggle %q on that date", h.Name)
			}
			printToggleResult(cmd.OutOrStdout(), res, date)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Day to toggle (YYYY-MM-DD, default today)")

	return cmd
}

func printToggleResult(out io.Writer, res *engine.ToggleResult, date string) {
	day := "today"
	if date != "" {
		day = date
	}

	h := res.Habit
	switch {
	case res.XPGained > 0:
		fmt.Fprintf(out, "%s %s %s %s\n",
			ui.Good.Render(ui.IconDone+" Done"), h.Icon, h.Name, ui.Muted.Render("("+day+")"))
		fmt.Fprintln(out, ui.LabelValue("XP", ui.Gold.Render(fmt.Sprintf("+%d", res.XPGained))))
	case res.XPGained < 0:
		fmt.Fprintf(out, "%s %s %s %s\n",
			ui.Bad.Render(ui.IconFail+" Undone"), h.Icon, h.Name, ui.Muted.Render("("+day+")"))
		fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d", res.XPGained)))
	default:
		fmt.Fprintf(out, "%s %s %s %s\n",
			ui.Muted.Render("Cleared"), h.Icon, h.Name, ui.Muted.Render("("+day+")"))
	}

	if h.Streak > 1 {
		fmt.Fprintln(out, ui.LabelValue("Streak", ui.Warn.Render(fmt.Sprintf("%s %d days", ui.IconFlame, h.Streak))))
	}
	if res.LeveledUp {
		fmt.Fprintf(out, "%s %s\n", ui.BadgeLevelUp, ui.Gold.Render(fmt.Sprintf("You reached level %d!", res.NewLevel)))
	}
	for _, id := range res.Unlocked {
		for _, m := range engine.Milestones() {
			if m.ID == id {
				fmt.Fprintf(out, "%s %s: %s\n", m.Icon, ui.Gold.Render(m.Name), ui.Muted.Render(m.Description))
			}
		}
	}
}
