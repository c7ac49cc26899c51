package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IgnasAns/HabitFlow/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all habits, progress and XP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("this erases everything; re-run with --yes to confirm")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			svc.Reset(ctx)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render("All data erased.")+" "+
				ui.Muted.Render("Defaults will be re-seeded on next run."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")

	return cmd
}
