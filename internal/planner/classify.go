// Package planner holds the rules of the daily planner: time-block classification, task list
// transitions, streak and points bookkeeping, theme unlocking and backup sanitization.
//
// Every function here is pure. Callers pass the current time explicitly and persist the
// returned values themselves.
package planner

import (
	"strings"

	"daily-planner-api/internal/models"
)

// Classify maps a priority label to its time block. It is total: unknown labels land in the evening.
func Classify(priority string) models.TimeBlock {
	switch strings.ToLower(priority) {
	case "high":
		return models.BlockMorning
	case "medium":
		return models.BlockAfternoon
	default:
		return models.BlockEvening
	}
}

// PointsForPriority returns the reward for a first-time completion.
func PointsForPriority(priority models.Priority) int {
	switch strings.ToLower(string(priority)) {
	case "high":
		return 30
	case "medium":
		return 20
	default:
		return 10
	}
}

// ParsePriority resolves user input to a canonical label. Used at the form boundary only.
func ParsePriority(input string) (models.Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "high":
		return models.PriorityHigh, true
	case "medium":
		return models.PriorityMedium, true
	case "low":
		return models.PriorityLow, true
	default:
		return "", false
	}
}
