package planner

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"daily-planner-api/internal/models"
)

// NewID returns a fresh opaque task identifier.
func NewID() string {
	return uuid.NewString()
}

// AddTask inserts a new task at the head of the list (most recent first).
func AddTask(tasks []models.Task, draft models.TaskDraft, now time.Time) ([]models.Task, models.Task, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return tasks, models.Task{}, invalid("title", "Please enter a task title.", ErrEmptyTitle)
	}

	task := models.Task{
		ID:            NewID(),
		Title:         title,
		Description:   strings.TrimSpace(draft.Description),
		Priority:      draft.Priority,
		EstimatedTime: strings.TrimSpace(draft.EstimatedTime),
		TimeBlock:     Classify(string(draft.Priority)),
		Completed:     false,
		RewardedAt:    nil,
		CreatedAt:     now.UnixMilli(),
	}

	next := make([]models.Task, 0, len(tasks)+1)
	next = append(next, task)
	next = append(next, tasks...)
	return next, task, nil
}

// FindTask returns the task with the given id.
func FindTask(tasks []models.Task, id string) (models.Task, bool) {
	for _, t := range tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// ToggleComplete flips the completed flag of one task. A false→true transition of a task that was
// never rewarded stamps RewardedAt and yields a completion event; every other transition yields none.
func ToggleComplete(tasks []models.Task, id string, now time.Time) ([]models.Task, *models.Notification, bool) {
	next := cloneTasks(tasks)
	for i := range next {
		t := &next[i]
		if t.ID != id {
			continue
		}

		completing := !t.Completed
		t.Completed = completing
		if !completing || t.Rewarded() {
			return next, nil, true
		}

		stamp := now.UnixMilli()
		t.RewardedAt = &stamp
		return next, &models.Notification{
			ID:       now.UnixNano(),
			Kind:     models.KindTask,
			Title:    t.Title,
			Priority: t.Priority,
			Points:   PointsForPriority(t.Priority),
		}, true
	}
	return tasks, nil, false
}

// UpdateTask replaces the task with the same id. TimeBlock is taken as given. A stored reward
// stamp is never cleared or moved, so a replaced task cannot be rewarded twice.
func UpdateTask(tasks []models.Task, task models.Task) ([]models.Task, bool) {
	if task.ID == "" {
		return tasks, false
	}
	next := cloneTasks(tasks)
	for i := range next {
		if next[i].ID == task.ID {
			if next[i].Rewarded() {
				task.RewardedAt = next[i].RewardedAt
			}
			next[i] = task
			return next, true
		}
	}
	return tasks, false
}

// ReplaceTask is UpdateTask behind the title rule of AddTask. It returns the task as stored.
func ReplaceTask(tasks []models.Task, task models.Task) ([]models.Task, models.Task, bool, error) {
	if _, ok := FindTask(tasks, task.ID); !ok || task.ID == "" {
		return tasks, models.Task{}, false, nil
	}
	if strings.TrimSpace(task.Title) == "" {
		return tasks, models.Task{}, true, invalid("title", "Please enter a task title.", ErrEmptyTitle)
	}
	next, _ := UpdateTask(tasks, task)
	stored, _ := FindTask(next, task.ID)
	return next, stored, true, nil
}

// EditTask applies an explicit field edit and recomputes the time block from the new priority.
func EditTask(tasks []models.Task, id string, edit models.TaskEdit) ([]models.Task, models.Task, bool, error) {
	current, ok := FindTask(tasks, id)
	if !ok {
		return tasks, models.Task{}, false, nil
	}
	title := strings.TrimSpace(edit.Title)
	if title == "" {
		return tasks, current, true, invalid("title", "Please enter a task title.", ErrEmptyTitle)
	}

	current.Title = title
	current.Description = strings.TrimSpace(edit.Description)
	current.Priority = edit.Priority
	current.EstimatedTime = strings.TrimSpace(edit.EstimatedTime)
	current.TimeBlock = Classify(string(edit.Priority))

	next, _ := UpdateTask(tasks, current)
	return next, current, true, nil
}

// DeleteTask removes one task by id.
func DeleteTask(tasks []models.Task, id string) ([]models.Task, bool) {
	next := make([]models.Task, 0, len(tasks))
	found := false
	for _, t := range tasks {
		if t.ID == id {
			found = true
			continue
		}
		next = append(next, t)
	}
	if !found {
		return tasks, false
	}
	return next, true
}

// ClearCompleted removes completed tasks and reports how many were removed.
func ClearCompleted(tasks []models.Task) ([]models.Task, int) {
	next := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			next = append(next, t)
		}
	}
	return next, len(tasks) - len(next)
}

// CountCompleted returns the number of completed tasks.
func CountCompleted(tasks []models.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// DecodeTasks reads a stored task list. Anything that is not a JSON array is treated as empty;
// elements that cannot be decoded are skipped.
func DecodeTasks(raw string) []models.Task {
	if raw == "" {
		return []models.Task{}
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []models.Task{}
	}
	out := make([]models.Task, 0, len(items))
	for _, item := range items {
		var t models.Task
		if err := json.Unmarshal(item, &t); err != nil {
			continue
		}
		out = append(out, t)
	}
	return out
}

// EncodeTasks serialises the list for storage.
func EncodeTasks(tasks []models.Task) (string, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func cloneTasks(tasks []models.Task) []models.Task {
	next := make([]models.Task, len(tasks))
	copy(next, tasks)
	return next
}
