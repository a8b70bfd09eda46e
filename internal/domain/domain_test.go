package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []Task {
	return []Task{
		{ID: "1", Title: "Complete project proposal", Priority: PriorityHigh, DueDate: "2024-12-20", CreatedAt: "2024-12-15"},
		{ID: "2", Title: "Review team feedback", Completed: true, Priority: PriorityMedium, CreatedAt: "2024-12-14"},
		{ID: "3", Title: "Update documentation", Priority: PriorityLow, DueDate: "2024-12-25", CreatedAt: "2024-12-13"},
	}
}

func ids(tasks []Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestVisible(t *testing.T) {
	tests := []struct {
		filter Filter
		want   []string
	}{
		{FilterAll, []string{"1", "2", "3"}},
		{FilterActive, []string{"1", "3"}},
		{FilterCompleted, []string{"2"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Visible(fixture(), tt.filter)))
		})
	}
}

func TestVisible_DoesNotAlias(t *testing.T) {
	tasks := fixture()
	out := Visible(tasks, FilterAll)
	out[0].Title = "changed"
	assert.Equal(t, "Complete project proposal", tasks[0].Title)
}

func TestVisible_Empty(t *testing.T) {
	assert.Empty(t, Visible(nil, FilterActive))
}

func TestParseFilter(t *testing.T) {
	for in, want := range map[string]Filter{
		"":          FilterAll,
		"all":       FilterAll,
		" Active ":  FilterActive,
		"COMPLETED": FilterCompleted,
		"completed": FilterCompleted,
	} {
		got, err := ParseFilter(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFilter("done")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestEmptyMessage(t *testing.T) {
	assert.Equal(t, "No tasks yet. Add your first task above!", FilterAll.EmptyMessage())
	assert.Equal(t, "No active tasks. Great job!", FilterActive.EmptyMessage())
	assert.Equal(t, "No completed tasks yet.", FilterCompleted.EmptyMessage())
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
	assert.Equal(t, Summary{Completed: 1, Total: 3, Percentage: 33}, Summarize(fixture()))

	tasks := fixture()
	tasks[0].Completed = true
	assert.Equal(t, Summary{Completed: 2, Total: 3, Percentage: 67}, Summarize(tasks))

	half := []Task{{ID: "a", Completed: true}, {ID: "b"}}
	assert.Equal(t, 50, Summarize(half).Percentage)

	all := []Task{{ID: "a", Completed: true}}
	assert.Equal(t, 100, Summarize(all).Percentage)
}

func TestSummary_String(t *testing.T) {
	assert.Equal(t, "1 of 3 tasks completed (33%)", Summarize(fixture()).String())
}

func TestNewTask(t *testing.T) {
	now := time.Date(2025, 3, 9, 23, 30, 0, 0, time.UTC)
	task := NewTask("abc", "Write tests", now)

	assert.Equal(t, "abc", task.ID)
	assert.Equal(t, "Write tests", task.Title)
	assert.False(t, task.Completed)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.Equal(t, "2025-03-09", task.CreatedAt)
	assert.Empty(t, task.Description)
	assert.Empty(t, task.DueDate)
}

func TestPriority_Valid(t *testing.T) {
	assert.True(t, PriorityLow.Valid())
	assert.True(t, PriorityMedium.Valid())
	assert.True(t, PriorityHigh.Valid())
	assert.False(t, Priority("urgent").Valid())
}
