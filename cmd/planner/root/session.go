package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"daily-planner-api/internal/app"
	"daily-planner-api/internal/planner"
	"daily-planner-api/internal/ui"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <name> <email>",
		Short: "Start a session for an identity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				state, err := a.Login(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("Welcome, %s", state.Identity.Name)))
				fmt.Fprintln(out, ui.LabelValue("Tasks", len(state.Tasks)))
				fmt.Fprintln(out, ui.LabelValue("Points", state.Stats.TotalPoints))
				fmt.Fprintln(out, ui.LabelValue("Theme", planner.ThemeLabel(state.Theme)))
				return nil
			})
		},
	}
}

func newLogoutCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "End the active session; saved tasks stay on disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				if err := a.Logout(ctx, newConfirmer(cmd, yes)); err != nil {
					return explain(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Logged out."))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the active identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				id, ok := a.Identity()
				if !ok {
					return explain(app.ErrNoSession)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>\n", id.Name, id.Email)
				return nil
			})
		},
	}
}
