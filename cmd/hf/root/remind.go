package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IgnasAns/HabitFlow/internal/engine"
	"github.com/IgnasAns/HabitFlow/internal/ui"
)

// remind prints the reminder copy a notifier would send; actual
// scheduling/delivery is out of scope.
func newRemindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Print today's reminder message",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			title, body := engine.ReminderContent(svc.Habits(ctx))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Title.Render(title))
			fmt.Fprintln(cmd.OutOrStdout(), body)
			return nil
		},
	}

	return cmd
}
