package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"daily-planner-api/internal/app"
	"daily-planner-api/internal/planner"
	"daily-planner-api/internal/ui"
)

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show progress, points and streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				p, err := a.Progress()
				if err != nil {
					return explain(err)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconPlan, "Today's progress"))
				fmt.Fprintln(out, ui.LabelValue("Completed", fmt.Sprintf("%d/%d (%d%%)", p.Summary.Completed, p.Summary.Total, p.Summary.Percent)))
				fmt.Fprintln(out, ui.LabelValue("Pending", p.Summary.Pending))
				fmt.Fprintln(out, ui.LabelValue(ui.IconTrophy+" Points", p.Stats.TotalPoints))
				fmt.Fprintln(out, ui.LabelValue(ui.IconFire+" Streak", p.Stats.Streak))
				if len(p.Recent) > 0 {
					fmt.Fprintln(out, ui.H2.Render("Recent"))
					for _, t := range p.Recent {
						fmt.Fprintln(out, "  "+ui.TaskLine(t))
					}
				}
				return nil
			})
		},
	}
}

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List themes and what unlocks them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				statuses, err := a.Themes()
				if err != nil {
					return explain(err)
				}
				out := cmd.OutOrStdout()
				group := ""
				for _, s := range statuses {
					if string(s.Theme.Group) != group {
						group = string(s.Theme.Group)
						fmt.Fprintln(out, ui.H2.Render(group))
					}
					marker := "  "
					if s.Active {
						marker = ui.Good.Render("* ")
					}
					line := fmt.Sprintf("%s%s %s", marker, s.Theme.Name, ui.Muted.Render(s.Theme.ID))
					if !s.Unlocked {
						line += " " + ui.Warn.Render(ui.IconLock+" "+s.Requirement)
					}
					fmt.Fprintln(out, line)
				}
				return nil
			})
		},
	}
}

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme <id>",
		Short: "Apply an unlocked theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.ApplyTheme(ctx, args[0]); err != nil {
					return explain(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Theme set to %s\n", ui.IconTheme, planner.ThemeLabel(args[0]))
				return nil
			})
		},
	}
}
