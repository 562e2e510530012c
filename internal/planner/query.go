package planner

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"daily-planner-api/internal/models"
)

// SortMode orders a query view
type SortMode string

const (
	SortNewest SortMode = "Newest"
	SortOldest SortMode = "Oldest"
	SortTitle  SortMode = "Title"
)

// StatusFilter restricts a query view by completion
type StatusFilter string

const (
	StatusAll       StatusFilter = "All"
	StatusPending   StatusFilter = "Pending"
	StatusCompleted StatusFilter = "Completed"
)

// PriorityAll disables the priority filter.
const PriorityAll = "All"

// QueryOptions describes a derived view over the task list. Zero values mean "no filter" and Newest.
type QueryOptions struct {
	Text     string
	Priority string
	Status   StatusFilter
	Sort     SortMode
}

// Query returns a filtered, sorted copy of tasks. The input slice is never modified.
func Query(tasks []models.Task, opts QueryOptions) []models.Task {
	q := strings.ToLower(strings.TrimSpace(opts.Text))
	out := make([]models.Task, 0, len(tasks))

	for _, t := range tasks {
		if q != "" {
			hay := strings.ToLower(t.Title + " " + t.Description)
			if !strings.Contains(hay, q) {
				continue
			}
		}
		if opts.Priority != "" && opts.Priority != PriorityAll && string(t.Priority) != opts.Priority {
			continue
		}
		switch opts.Status {
		case StatusPending:
			if t.Completed {
				continue
			}
		case StatusCompleted:
			if !t.Completed {
				continue
			}
		}
		out = append(out, t)
	}

	switch opts.Sort {
	case SortOldest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt < out[j].CreatedAt })
	case SortTitle:
		col := collate.New(language.Und)
		sort.SliceStable(out, func(i, j int) bool { return col.CompareString(out[i].Title, out[j].Title) < 0 })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	}
	return out
}

// Bucket is one time-block group of a view.
type Bucket struct {
	Block models.TimeBlock `json:"block"`
	Tasks []models.Task    `json:"tasks"`
}

// GroupByTimeBlock partitions tasks into Morning, Afternoon and Evening, in that order. A task carrying
// an unrecognised stored block gets a bucket of its own, appended in first-seen order.
func GroupByTimeBlock(tasks []models.Task) []Bucket {
	buckets := make([]Bucket, 0, len(models.TimeBlocks))
	index := make(map[models.TimeBlock]int, len(models.TimeBlocks))
	for _, b := range models.TimeBlocks {
		index[b] = len(buckets)
		buckets = append(buckets, Bucket{Block: b, Tasks: []models.Task{}})
	}

	for _, t := range tasks {
		block := t.TimeBlock
		if block == "" {
			block = Classify(string(t.Priority))
		}
		i, ok := index[block]
		if !ok {
			i = len(buckets)
			index[block] = i
			buckets = append(buckets, Bucket{Block: block, Tasks: []models.Task{}})
		}
		buckets[i].Tasks = append(buckets[i].Tasks, t)
	}
	return buckets
}

// Recent returns up to n tasks, newest first.
func Recent(tasks []models.Task, n int) []models.Task {
	out := Query(tasks, QueryOptions{Sort: SortNewest})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Summary is the progress snapshot of a task list.
type Summary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Percent   int `json:"percent"`
}

func Summarize(tasks []models.Task) Summary {
	total := len(tasks)
	completed := CountCompleted(tasks)
	s := Summary{Total: total, Completed: completed, Pending: total - completed}
	if total > 0 {
		s.Percent = int(math.Round(float64(completed) * 100 / float64(total)))
	}
	return s
}
