package app

import (
	"context"
	"fmt"

	"daily-planner-api/internal/models"
	"daily-planner-api/internal/planner"
)

// AddTask creates a task at the head of the list.
func (a *App) AddTask(ctx context.Context, draft models.TaskDraft) (models.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := a.requireSession()
	if err != nil {
		return models.Task{}, err
	}
	tasks, task, err := planner.AddTask(a.state.Tasks, draft, a.now())
	if err != nil {
		return models.Task{}, err
	}
	a.state.Tasks = tasks
	a.persistTasks(ctx, id)

	a.log.Debug("task added", "id", task.ID, "priority", task.Priority, "block", task.TimeBlock)
	return task, nil
}

// ToggleComplete flips a task. A first completion awards points, may unlock themes and
// may force a theme fallback; the returned notifications list those events in order.
func (a *App) ToggleComplete(ctx context.Context, taskID string) (models.Task, []models.Notification, error) {
	id, task, events, err := a.toggleComplete(ctx, taskID)
	if err != nil {
		return models.Task{}, nil, err
	}
	a.notify(id, events)
	return task, events, nil
}

func (a *App) toggleComplete(ctx context.Context, taskID string) (models.Identity, models.Task, []models.Notification, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := a.requireSession()
	if err != nil {
		return id, models.Task{}, nil, err
	}

	now := a.now()
	tasks, event, found := planner.ToggleComplete(a.state.Tasks, taskID, now)
	if !found {
		return id, models.Task{}, nil, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	a.state.Tasks = tasks
	a.persistTasks(ctx, id)
	task, _ := planner.FindTask(tasks, taskID)

	var events []models.Notification
	if event != nil {
		events = append(events, *event)

		stats := planner.AwardCompletion(a.state.Stats, event.Points, now)
		stats, unlocked := planner.UnlockEligibleThemes(stats, now)
		events = append(events, unlocked...)

		a.state.Stats = stats
		a.persistStats(ctx, id)
		a.enforceTheme(ctx)

		a.log.Info("task completed",
			"id", task.ID,
			"points", event.Points,
			"total_points", stats.TotalPoints,
			"streak", stats.Streak,
			"unlocked", len(unlocked),
		)
	}

	return id, task, events, nil
}

// UpdateTask replaces a task wholesale and returns it as stored. The time block is kept as
// given; an existing reward stamp is kept.
func (a *App) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := a.requireSession()
	if err != nil {
		return models.Task{}, err
	}
	tasks, stored, found, err := planner.ReplaceTask(a.state.Tasks, task)
	if !found {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, task.ID)
	}
	if err != nil {
		return models.Task{}, err
	}
	a.state.Tasks = tasks
	a.persistTasks(ctx, id)
	return stored, nil
}

// EditTask applies a field edit and recomputes the time block.
func (a *App) EditTask(ctx context.Context, taskID string, edit models.TaskEdit) (models.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := a.requireSession()
	if err != nil {
		return models.Task{}, err
	}
	tasks, task, found, err := planner.EditTask(a.state.Tasks, taskID, edit)
	if !found {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	if err != nil {
		return models.Task{}, err
	}
	a.state.Tasks = tasks
	a.persistTasks(ctx, id)
	return task, nil
}

// DeleteTask removes one task after confirmation.
func (a *App) DeleteTask(ctx context.Context, taskID string, c Confirmer) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := a.requireSession()
	if err != nil {
		return err
	}
	task, ok := planner.FindTask(a.state.Tasks, taskID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	if err := confirm(c, deletePrompt(task.Title)); err != nil {
		return err
	}
	a.state.Tasks, _ = planner.DeleteTask(a.state.Tasks, taskID)
	a.persistTasks(ctx, id)
	return nil
}

// ClearCompleted removes every completed task after confirmation. With nothing to clear it
// returns 0 without asking.
func (a *App) ClearCompleted(ctx context.Context, c Confirmer) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := a.requireSession()
	if err != nil {
		return 0, err
	}
	n := planner.CountCompleted(a.state.Tasks)
	if n == 0 {
		return 0, nil
	}
	if err := confirm(c, clearCompletedPrompt(n)); err != nil {
		return 0, err
	}
	a.state.Tasks, n = planner.ClearCompleted(a.state.Tasks)
	a.persistTasks(ctx, id)
	return n, nil
}

// ClearAll removes every task after confirmation. With an empty list it returns 0 without asking.
func (a *App) ClearAll(ctx context.Context, c Confirmer) (int, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := a.requireSession()
	if err != nil {
		return 0, err
	}
	n := len(a.state.Tasks)
	if n == 0 {
		return 0, nil
	}
	if err := confirm(c, clearAllPrompt(n)); err != nil {
		return 0, err
	}
	a.state.Tasks = []models.Task{}
	a.persistTasks(ctx, id)
	return n, nil
}

// Import replaces the task list with a sanitized backup after confirmation. A malformed
// backup leaves the current list untouched.
func (a *App) Import(ctx context.Context, data []byte, c Confirmer) ([]models.Task, error) {
	raw, err := planner.ParseBackup(data)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	id, err := a.requireSession()
	if err != nil {
		return nil, err
	}
	tasks := planner.SanitizeImport(raw, a.now())
	if err := confirm(c, importPrompt(len(a.state.Tasks))); err != nil {
		return nil, err
	}
	a.state.Tasks = tasks
	a.persistTasks(ctx, id)

	a.log.Info("backup imported", "received", len(raw), "kept", len(tasks))
	return append([]models.Task{}, tasks...), nil
}

// Export returns the current list as a backup document.
func (a *App) Export() (planner.Document, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.requireSession(); err != nil {
		return planner.Document{}, err
	}
	return planner.Export(a.state.Tasks, a.now()), nil
}

// Query returns a filtered, sorted view.
func (a *App) Query(opts planner.QueryOptions) ([]models.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.requireSession(); err != nil {
		return nil, err
	}
	return planner.Query(a.state.Tasks, opts), nil
}

// Grouped returns a query view partitioned by time block.
func (a *App) Grouped(opts planner.QueryOptions) ([]planner.Bucket, error) {
	tasks, err := a.Query(opts)
	if err != nil {
		return nil, err
	}
	return planner.GroupByTimeBlock(tasks), nil
}

// Progress is the dashboard view of one identity.
type Progress struct {
	Summary planner.Summary `json:"summary"`
	Recent  []models.Task   `json:"recent"`
	Stats   models.Stats    `json:"stats"`
}

// RecentCount is the length of the recent list in Progress.
const RecentCount = 5

func (a *App) Progress() (Progress, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.requireSession(); err != nil {
		return Progress{}, err
	}
	s := a.snapshot()
	return Progress{
		Summary: planner.Summarize(s.Tasks),
		Recent:  planner.Recent(s.Tasks, RecentCount),
		Stats:   s.Stats,
	}, nil
}
