package planner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"daily-planner-api/internal/models"
)

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: "1", Title: "banana", Description: "buy fruit", Priority: models.PriorityLow, TimeBlock: models.BlockEvening, CreatedAt: 10},
		{ID: "2", Title: "Apple pie", Priority: models.PriorityHigh, TimeBlock: models.BlockMorning, Completed: true, CreatedAt: 30},
		{ID: "3", Title: "cherry", Priority: models.PriorityMedium, TimeBlock: models.BlockAfternoon, CreatedAt: 20},
	}
}

func ids(tasks []models.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestQuery_Sorts(t *testing.T) {
	tasks := sampleTasks()
	require.Equal(t, []string{"2", "3", "1"}, ids(Query(tasks, QueryOptions{})))
	require.Equal(t, []string{"1", "3", "2"}, ids(Query(tasks, QueryOptions{Sort: SortOldest})))
	require.Equal(t, []string{"2", "1", "3"}, ids(Query(tasks, QueryOptions{Sort: SortTitle})))
	// input untouched
	require.Equal(t, []string{"1", "2", "3"}, ids(tasks))
}

func TestQuery_Filters(t *testing.T) {
	tasks := sampleTasks()
	require.Equal(t, []string{"1"}, ids(Query(tasks, QueryOptions{Text: "FRUIT"})))
	require.Equal(t, []string{"2"}, ids(Query(tasks, QueryOptions{Priority: "High"})))
	require.Len(t, Query(tasks, QueryOptions{Priority: PriorityAll}), 3)
	require.Equal(t, []string{"2"}, ids(Query(tasks, QueryOptions{Status: StatusCompleted})))
	require.Equal(t, []string{"3", "1"}, ids(Query(tasks, QueryOptions{Status: StatusPending})))
	require.Empty(t, Query(tasks, QueryOptions{Text: "zzz"}))
}

func TestGroupByTimeBlock(t *testing.T) {
	tasks := append(sampleTasks(),
		models.Task{ID: "4", Title: "odd", TimeBlock: "Night"},
		models.Task{ID: "5", Title: "legacy", Priority: models.PriorityHigh},
	)
	buckets := GroupByTimeBlock(tasks)
	require.Len(t, buckets, 4)
	require.Equal(t, models.BlockMorning, buckets[0].Block)
	require.Equal(t, []string{"2", "5"}, ids(buckets[0].Tasks))
	require.Equal(t, models.BlockAfternoon, buckets[1].Block)
	require.Equal(t, models.BlockEvening, buckets[2].Block)
	require.Equal(t, models.TimeBlock("Night"), buckets[3].Block)
	require.Equal(t, []string{"4"}, ids(buckets[3].Tasks))
}

func TestGroupByTimeBlock_EmptyHasFixedBuckets(t *testing.T) {
	buckets := GroupByTimeBlock(nil)
	require.Len(t, buckets, 3)
	for _, b := range buckets {
		require.NotNil(t, b.Tasks)
		require.Empty(t, b.Tasks)
	}
}

func TestRecentAndSummarize(t *testing.T) {
	tasks := sampleTasks()
	require.Equal(t, []string{"2", "3"}, ids(Recent(tasks, 2)))
	require.Len(t, Recent(tasks, 10), 3)

	s := Summarize(tasks)
	require.Equal(t, Summary{Total: 3, Completed: 1, Pending: 2, Percent: 33}, s)
	require.Equal(t, Summary{}, Summarize(nil))

	tasks[2].Completed = true
	require.Equal(t, 67, Summarize(tasks).Percent)
}
