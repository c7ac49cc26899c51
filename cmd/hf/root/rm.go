package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IgnasAns/HabitFlow/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <habit>",
		Short: "Delete a habit and its history",
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

			svc.DeleteHabit(ctx, h.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Warn.Render("Deleted"), h.Icon, h.Name)
			return nil
		},
	}

	return cmd
}
