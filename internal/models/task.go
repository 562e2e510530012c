package models

// Priority represents the priority label of a task
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// TimeBlock represents the time-of-day slot a task is planned into
type TimeBlock string

const (
	BlockMorning   TimeBlock = "Morning"
	BlockAfternoon TimeBlock = "Afternoon"
	BlockEvening   TimeBlock = "Evening"
)

// TimeBlocks lists the known blocks in display order.
var TimeBlocks = []TimeBlock{BlockMorning, BlockAfternoon, BlockEvening}

// Task represents a planned task.
// CreatedAt and RewardedAt are Unix milliseconds, matching the stored browser format.
type Task struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Priority      Priority  `json:"priority"`
	EstimatedTime string    `json:"estimatedTime"`
	TimeBlock     TimeBlock `json:"timeBlock"`
	Completed     bool      `json:"completed"`
	RewardedAt    *int64    `json:"rewardedAt"`
	CreatedAt     int64     `json:"createdAt"`
}

// Rewarded reports whether the task has already been counted toward points.
func (t Task) Rewarded() bool {
	return t.RewardedAt != nil && *t.RewardedAt != 0
}

// TaskDraft is the input of the add operation.
type TaskDraft struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Priority      Priority `json:"priority"`
	EstimatedTime string   `json:"estimatedTime"`
}

// TaskEdit is the input of an explicit field edit.
type TaskEdit struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Priority      Priority `json:"priority"`
	EstimatedTime string   `json:"estimatedTime"`
}
