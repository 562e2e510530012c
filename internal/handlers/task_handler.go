package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"daily-planner-api/internal/models"
	"daily-planner-api/internal/planner"
)

// TaskRequest represents the payload for creating or editing a task
type TaskRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Priority      string `json:"priority"`
	EstimatedTime string `json:"estimatedTime"`
}

// priority resolves the form value. Empty defaults to Medium.
func (r TaskRequest) priority() (models.Priority, bool) {
	if strings.TrimSpace(r.Priority) == "" {
		return models.PriorityMedium, true
	}
	return planner.ParsePriority(r.Priority)
}

func parseSort(v string) (planner.SortMode, bool) {
	switch strings.ToLower(v) {
	case "", "newest":
		return planner.SortNewest, true
	case "oldest":
		return planner.SortOldest, true
	case "title":
		return planner.SortTitle, true
	}
	return "", false
}

func parseStatus(v string) (planner.StatusFilter, bool) {
	switch strings.ToLower(v) {
	case "", "all":
		return planner.StatusAll, true
	case "pending":
		return planner.StatusPending, true
	case "completed":
		return planner.StatusCompleted, true
	}
	return "", false
}

/*
GetTasks handles GET /api/tasks
Query params: q (text), priority (All|High|Medium|Low), status (All|Pending|Completed),
sort (Newest|Oldest|Title), grouped (bool, group by time block).
*/
func (h *Handler) GetTasks(c *gin.Context) {
	opts := planner.QueryOptions{Text: c.Query("q")}

	if p := c.Query("priority"); p != "" && !strings.EqualFold(p, planner.PriorityAll) {
		priority, ok := planner.ParsePriority(p)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
		opts.Priority = string(priority)
	}
	status, ok := parseStatus(c.Query("status"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}
	opts.Status = status
	sortMode, ok := parseSort(c.Query("sort"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort"})
		return
	}
	opts.Sort = sortMode

	if grouped, _ := strconv.ParseBool(c.Query("grouped")); grouped {
		buckets, err := h.app.Grouped(opts)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"groups": buckets})
		return
	}

	tasks, err := h.app.Query(opts)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"count": len(tasks),
		"sort":  opts.Sort,
	})
}

// CreateTask handles POST /api/tasks
func (h *Handler) CreateTask(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	priority, ok := req.priority()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	task, err := h.app.AddTask(c.Request.Context(), models.TaskDraft{
		Title:         req.Title,
		Description:   req.Description,
		Priority:      priority,
		EstimatedTime: req.EstimatedTime,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// ReplaceTask handles PUT /api/tasks/:id. The body is stored as given, including its time block,
// but an earned reward stamp survives.
func (h *Handler) ReplaceTask(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task.ID = c.Param("id")

	stored, err := h.app.UpdateTask(c.Request.Context(), task)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

// EditTask handles PATCH /api/tasks/:id and recomputes the time block.
func (h *Handler) EditTask(c *gin.Context) {
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	priority, ok := req.priority()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	task, err := h.app.EditTask(c.Request.Context(), c.Param("id"), models.TaskEdit{
		Title:         req.Title,
		Description:   req.Description,
		Priority:      priority,
		EstimatedTime: req.EstimatedTime,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// ToggleTask handles PATCH /api/tasks/:id/toggle
func (h *Handler) ToggleTask(c *gin.Context) {
	task, events, err := h.app.ToggleComplete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if events == nil {
		events = []models.Notification{}
	}
	c.JSON(http.StatusOK, gin.H{
		"task":          task,
		"notifications": events,
		"stats":         h.app.Snapshot().Stats,
	})
}

// DeleteTask handles DELETE /api/tasks/:id?confirm=true
func (h *Handler) DeleteTask(c *gin.Context) {
	if err := h.app.DeleteTask(c.Request.Context(), c.Param("id"), confirmation(c)); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// ClearCompleted handles DELETE /api/tasks/completed?confirm=true
func (h *Handler) ClearCompleted(c *gin.Context) {
	n, err := h.app.ClearCompleted(c.Request.Context(), confirmation(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": n})
}

// ClearAll handles DELETE /api/tasks?confirm=true
func (h *Handler) ClearAll(c *gin.Context) {
	n, err := h.app.ClearAll(c.Request.Context(), confirmation(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": n})
}
