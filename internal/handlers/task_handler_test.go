package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"daily-planner-api/internal/models"
	"daily-planner-api/internal/planner"
)

func TestCreateTask_Success(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	task := s.createTask(t, "Write report", "high")
	require.Equal(t, "Write report", task.Title)
	require.Equal(t, models.PriorityHigh, task.Priority)
	require.Equal(t, models.BlockMorning, task.TimeBlock)
	require.False(t, task.Completed)

	task = s.createTask(t, "Default priority", "")
	require.Equal(t, models.PriorityMedium, task.Priority)
	require.Equal(t, models.BlockAfternoon, task.TimeBlock)
}

func TestCreateTask_Invalid(t *testing.T) {
	s := newTestServer(t)
	s.login(t)

	w := s.do(t, http.MethodPost, "/api/tasks", map[string]string{"title": "  "})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), `"field":"title"`)

	w = s.do(t, http.MethodPost, "/api/tasks", map[string]string{"title": "x", "priority": "Urgent"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTasks_FiltersAndGroups(t *testing.T) {
	s := newTestServer(t)
	s.login(t)
	s.createTask(t, "alpha", "High")
	s.createTask(t, "beta", "Low")

	w := s.do(t, http.MethodGet, "/api/tasks?priority=low", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Tasks []models.Task `json:"tasks"`
		Count int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	require.Equal(t, "beta", resp.Tasks[0].Title)

	w = s.do(t, http.MethodGet, "/api/tasks?sort=title", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "alpha", resp.Tasks[0].Title)

	w = s.do(t, http.MethodGet, "/api/tasks?grouped=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var grouped struct {
		Groups []planner.Bucket `json:"groups"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &grouped))
	require.Len(t, grouped.Groups, 3)
	require.Equal(t, models.BlockMorning, grouped.Groups[0].Block)
	require.Len(t, grouped.Groups[0].Tasks, 1)
	require.Empty(t, grouped.Groups[1].Tasks)

	for _, bad := range []string{"?sort=random", "?status=done", "?priority=urgent"} {
		w = s.do(t, http.MethodGet, "/api/tasks"+bad, nil)
		require.Equal(t, http.StatusBadRequest, w.Code, bad)
	}
}

func TestToggleTask_AwardsPointsOnce(t *testing.T) {
	s := newTestServer(t)
	s.login(t)
	task := s.createTask(t, "Write report", "High")

	w := s.do(t, http.MethodPatch, "/api/tasks/"+task.ID+"/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Task          models.Task           `json:"task"`
		Notifications []models.Notification `json:"notifications"`
		Stats         models.Stats          `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Task.Completed)
	require.NotNil(t, resp.Task.RewardedAt)
	require.Len(t, resp.Notifications, 1)
	require.Equal(t, 30, resp.Notifications[0].Points)
	require.Equal(t, 30, resp.Stats.TotalPoints)
	require.Equal(t, 1, resp.Stats.Streak)

	current := s.do(t, http.MethodGet, "/api/notifications/current", nil)
	require.Equal(t, http.StatusOK, current.Code)
	require.Contains(t, current.Body.String(), "Write report")

	s.do(t, http.MethodPatch, "/api/tasks/"+task.ID+"/toggle", nil)
	w = s.do(t, http.MethodPatch, "/api/tasks/"+task.ID+"/toggle", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Empty(t, resp.Notifications)
	require.Equal(t, 30, resp.Stats.TotalPoints)

	w = s.do(t, http.MethodPatch, "/api/tasks/missing/toggle", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestEditAndReplaceTask(t *testing.T) {
	s := newTestServer(t)
	s.login(t)
	task := s.createTask(t, "a", "High")

	w := s.do(t, http.MethodPatch, "/api/tasks/"+task.ID, map[string]string{"title": "b", "priority": "Low"})
	require.Equal(t, http.StatusOK, w.Code)
	var edited models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &edited))
	require.Equal(t, models.BlockEvening, edited.TimeBlock)

	edited.Priority = models.PriorityHigh
	w = s.do(t, http.MethodPut, "/api/tasks/"+task.ID, edited)
	require.Equal(t, http.StatusOK, w.Code)

	snap := s.app.Snapshot()
	require.Equal(t, models.PriorityHigh, snap.Tasks[0].Priority)
	require.Equal(t, models.BlockEvening, snap.Tasks[0].TimeBlock)

	w = s.do(t, http.MethodPut, "/api/tasks/missing", edited)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestReplaceTask_CannotResetReward(t *testing.T) {
	s := newTestServer(t)
	s.login(t)
	task := s.createTask(t, "Write report", "High")

	w := s.do(t, http.MethodPatch, "/api/tasks/"+task.ID+"/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)

	task.Completed = false
	task.RewardedAt = nil
	w = s.do(t, http.MethodPut, "/api/tasks/"+task.ID, task)
	require.Equal(t, http.StatusOK, w.Code)
	var stored models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stored))
	require.False(t, stored.Completed)
	require.NotNil(t, stored.RewardedAt)

	w = s.do(t, http.MethodPatch, "/api/tasks/"+task.ID+"/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Notifications []models.Notification `json:"notifications"`
		Stats         models.Stats          `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Empty(t, resp.Notifications)
	require.Equal(t, 30, resp.Stats.TotalPoints)
}

func TestReplaceTask_RejectsEmptyTitle(t *testing.T) {
	s := newTestServer(t)
	s.login(t)
	task := s.createTask(t, "keep", "Low")

	task.Title = "   "
	w := s.do(t, http.MethodPut, "/api/tasks/"+task.ID, task)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), `"field":"title"`)
	require.Equal(t, "keep", s.app.Snapshot().Tasks[0].Title)
}

func TestDestructiveEndpointsRequireConfirm(t *testing.T) {
	s := newTestServer(t)
	s.login(t)
	a := s.createTask(t, "a", "High")
	s.createTask(t, "b", "Low")
	s.do(t, http.MethodPatch, "/api/tasks/"+a.ID+"/toggle", nil)

	for _, path := range []string{"/api/tasks/" + a.ID, "/api/tasks/completed", "/api/tasks"} {
		w := s.do(t, http.MethodDelete, path, nil)
		require.Equal(t, http.StatusConflict, w.Code, path)
	}
	require.Len(t, s.app.Snapshot().Tasks, 2)

	w := s.do(t, http.MethodDelete, "/api/tasks/completed?confirm=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"removed":1}`, w.Body.String())

	w = s.do(t, http.MethodDelete, "/api/tasks?confirm=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"removed":1}`, w.Body.String())

	w = s.do(t, http.MethodDelete, "/api/tasks/"+a.ID+"?confirm=true", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
