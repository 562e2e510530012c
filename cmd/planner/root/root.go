package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"daily-planner-api/internal/ui"
)

const Version = "1.0.0"

// flags shared by every command
var (
	dbPath string
	driver string
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "planner",
		Short:         "Daily planner: tasks by time block, points, streaks and themes",
		Long:          "planner manages your daily plan from the terminal, against the same store the API server uses.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite file (overrides DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "Store driver sqlite|redis|memory (overrides STORE_DRIVER)")

	rootCmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newAddCmd(),
		newListCmd(),
		newDoneCmd(),
		newEditCmd(),
		newRmCmd(),
		newClearCmd(),
		newExportCmd(),
		newImportCmd(),
		newStatsCmd(),
		newThemesCmd(),
		newThemeCmd(),
	)
	return rootCmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
