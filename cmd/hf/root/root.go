package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/IgnasAns/HabitFlow/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "hf",
	Short:         "HabitFlow: habit tracker with streaks and XP",
	Long:          "HabitFlow is a local-first habit tracker: mark daily progress, keep streaks alive, earn XP and level up.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newListCmd(),
		newAddCmd(),
		newDoneCmd(),
		newIncCmd(),
		newRmCmd(),
		newGridCmd(),
		newStatsCmd(),
		newRemindCmd(),
		newResetCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
