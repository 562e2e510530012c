package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"daily-planner-api/internal/app"
	"daily-planner-api/internal/models"
	"daily-planner-api/internal/planner"
	"daily-planner-api/internal/ui"
)

func parsePriorityFlag(value string) (models.Priority, error) {
	if strings.TrimSpace(value) == "" {
		return models.PriorityMedium, nil
	}
	p, ok := planner.ParsePriority(value)
	if !ok {
		return "", fmt.Errorf("invalid priority %q (use High, Medium or Low)", value)
	}
	return p, nil
}

func newAddCmd() *cobra.Command {
	var (
		description string
		priority    string
		estimate    string
	)
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task; its time block follows the priority",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePriorityFlag(priority)
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				task, err := a.AddTask(ctx, models.TaskDraft{
					Title:         strings.Join(args, " "),
					Description:   description,
					Priority:      p,
					EstimatedTime: estimate,
				})
				if err != nil {
					return explain(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.IconPlus, ui.TaskLine(task), ui.Muted.Render(string(task.TimeBlock)))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Optional details")
	cmd.Flags().StringVarP(&priority, "priority", "p", "Medium", "High, Medium or Low")
	cmd.Flags().StringVarP(&estimate, "estimate", "e", "", "Estimated time, free text (e.g. 30m)")
	return cmd
}

func newListCmd() *cobra.Command {
	var (
		query    string
		priority string
		status   string
		sortBy   string
		flat     bool
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks grouped by time block",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := planner.QueryOptions{
				Text:     query,
				Priority: titleCase(priority),
				Status:   planner.StatusFilter(titleCase(status)),
				Sort:     planner.SortMode(titleCase(sortBy)),
			}
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				out := cmd.OutOrStdout()
				if flat {
					tasks, err := a.Query(opts)
					if err != nil {
						return explain(err)
					}
					for _, t := range tasks {
						fmt.Fprintln(out, ui.TaskLine(t))
					}
					if len(tasks) == 0 {
						fmt.Fprintln(out, ui.Muted.Render("No tasks."))
					}
					return nil
				}

				buckets, err := a.Grouped(opts)
				if err != nil {
					return explain(err)
				}
				for _, b := range buckets {
					fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s (%d)", b.Block, len(b.Tasks))))
					for _, t := range b.Tasks {
						fmt.Fprintln(out, "  "+ui.TaskLine(t))
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Search title and description")
	cmd.Flags().StringVar(&priority, "priority", "All", "All, High, Medium or Low")
	cmd.Flags().StringVar(&status, "status", "All", "All, Pending or Completed")
	cmd.Flags().StringVar(&sortBy, "sort", "Newest", "Newest, Oldest or Title")
	cmd.Flags().BoolVar(&flat, "flat", false, "Print one flat list instead of time-block groups")
	return cmd
}

func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion; the first completion earns points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				id, err := lookupID(a, args[0])
				if err != nil {
					return err
				}
				task, events, err := a.ToggleComplete(ctx, id)
				if err != nil {
					return explain(err)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.TaskLine(task))
				for _, n := range events {
					fmt.Fprintln(out, ui.NotificationText(n))
				}
				return nil
			})
		},
	}
}

func newEditCmd() *cobra.Command {
	var (
		title       string
		description string
		priority    string
		estimate    string
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task; changing priority moves it to the matching time block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				id, err := lookupID(a, args[0])
				if err != nil {
					return err
				}
				current, _ := planner.FindTask(a.Snapshot().Tasks, id)
				edit := models.TaskEdit{
					Title:         current.Title,
					Description:   current.Description,
					Priority:      current.Priority,
					EstimatedTime: current.EstimatedTime,
				}
				flags := cmd.Flags()
				if flags.Changed("title") {
					edit.Title = title
				}
				if flags.Changed("description") {
					edit.Description = description
				}
				if flags.Changed("estimate") {
					edit.EstimatedTime = estimate
				}
				if flags.Changed("priority") {
					p, err := parsePriorityFlag(priority)
					if err != nil {
						return err
					}
					edit.Priority = p
				}

				task, err := a.EditTask(ctx, id, edit)
				if err != nil {
					return explain(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.TaskLine(task), ui.Muted.Render(string(task.TimeBlock)))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "New priority")
	cmd.Flags().StringVarP(&estimate, "estimate", "e", "", "New estimated time")
	return cmd
}

func newRmCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				id, err := lookupID(a, args[0])
				if err != nil {
					return err
				}
				if err := a.DeleteTask(ctx, id, newConfirmer(cmd, yes)); err != nil {
					return explain(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Deleted."))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func newClearCmd() *cobra.Command {
	var (
		yes       bool
		completed bool
	)
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all tasks, or only completed ones with --completed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(ctx context.Context, a *app.App) error {
				c := newConfirmer(cmd, yes)
				var (
					n   int
					err error
				)
				if completed {
					n, err = a.ClearCompleted(ctx, c)
				} else {
					n, err = a.ClearAll(ctx, c)
				}
				if err != nil {
					return explain(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("Removed %d task(s).", n)))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&completed, "completed", false, "Only remove completed tasks")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func lookupID(a *app.App, arg string) (string, error) {
	if _, ok := a.Identity(); !ok {
		return "", explain(app.ErrNoSession)
	}
	return resolveTaskID(a.Snapshot().Tasks, arg)
}

// titleCase maps "pending" to "Pending" so flags accept any case.
func titleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
