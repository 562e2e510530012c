package planner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"daily-planner-api/internal/models"
)

const (
	// BackupVersion is written into every exported document.
	BackupVersion = 1
	// BackupFilename is the suggested name of an exported document.
	BackupFilename = "ai-smart-planner-backup.json"

	exportedAtLayout = "2006-01-02T15:04:05.000Z"
)

// Document is the exported backup shape.
type Document struct {
	Version    int           `json:"version"`
	ExportedAt string        `json:"exportedAt"`
	Tasks      []models.Task `json:"tasks"`
}

// Export wraps tasks in a versioned backup document.
func Export(tasks []models.Task, now time.Time) Document {
	if tasks == nil {
		tasks = []models.Task{}
	}
	return Document{
		Version:    BackupVersion,
		ExportedAt: now.UTC().Format(exportedAtLayout),
		Tasks:      cloneTasks(tasks),
	}
}

// ParseBackup extracts the raw task elements from a backup. Both a bare JSON array and an
// object carrying a "tasks" array are accepted.
func ParseBackup(data []byte) ([]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, ErrInvalidBackup
	}

	switch v := parsed.(type) {
	case []any:
		return v, nil
	case map[string]any:
		if list, ok := v["tasks"].([]any); ok {
			return list, nil
		}
	}
	return nil, ErrInvalidBackup
}

// SanitizeImport turns raw backup elements into tasks. Elements that are not objects or whose
// trimmed title is empty are dropped.
func SanitizeImport(raw []any, now time.Time) []models.Task {
	out := make([]models.Task, 0, len(raw))
	for _, el := range raw {
		obj, ok := el.(map[string]any)
		if !ok {
			continue
		}

		title := strings.TrimSpace(coerceString(obj["title"]))
		if title == "" {
			continue
		}

		id := coerceString(obj["id"])
		if id == "" {
			id = NewID()
		}

		priority := coerceString(obj["priority"])
		if priority == "" {
			priority = string(models.PriorityMedium)
		}

		block := models.TimeBlock(coerceString(obj["timeBlock"]))
		if block == "" {
			block = Classify(priority)
		}

		createdAt := now.UnixMilli()
		if n, ok := toNumber(obj["createdAt"]); ok && n != 0 {
			createdAt = int64(n)
		}

		task := models.Task{
			ID:            id,
			Title:         title,
			Description:   coerceString(obj["description"]),
			Priority:      models.Priority(priority),
			EstimatedTime: coerceString(obj["estimatedTime"]),
			TimeBlock:     block,
			Completed:     truthy(obj["completed"]),
			CreatedAt:     createdAt,
		}
		if n, ok := toNumber(obj["rewardedAt"]); ok && n > 0 {
			stamp := int64(n)
			task.RewardedAt = &stamp
		}
		out = append(out, task)
	}
	return out
}

// coerceString renders scalars as text. Falsy values and composite values become "".
func coerceString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case bool:
		if s {
			return "true"
		}
		return ""
	case json.Number:
		if f, err := s.Float64(); err == nil && f == 0 {
			return ""
		}
		return s.String()
	case float64:
		if s == 0 || math.IsNaN(s) {
			return ""
		}
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

func truthy(v any) bool {
	switch s := v.(type) {
	case nil:
		return false
	case bool:
		return s
	case string:
		return s != ""
	case json.Number:
		f, err := s.Float64()
		return err == nil && f != 0 && !math.IsNaN(f)
	case float64:
		return s != 0 && !math.IsNaN(s)
	default:
		return true
	}
}

func toNumber(v any) (float64, bool) {
	var f float64
	switch s := v.(type) {
	case json.Number:
		n, err := s.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case float64:
		f = s
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		f = n
	case bool:
		if s {
			f = 1
		}
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
