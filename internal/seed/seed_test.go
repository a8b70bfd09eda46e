package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasklist/internal/domain"
)

func TestDefault(t *testing.T) {
	want := []domain.Task{
		{
			ID:          "1",
			Title:       "Complete project proposal",
			Description: "Draft and finalize the Q4 project proposal for client review",
			Priority:    domain.PriorityHigh,
			DueDate:     "2024-12-20",
			CreatedAt:   "2024-12-15",
		},
		{
			ID:          "2",
			Title:       "Review team feedback",
			Description: "Go through all team member feedback from last sprint",
			Completed:   true,
			Priority:    domain.PriorityMedium,
			CreatedAt:   "2024-12-14",
		},
		{
			ID:        "3",
			Title:     "Update documentation",
			Priority:  domain.PriorityLow,
			DueDate:   "2024-12-25",
			CreatedAt: "2024-12-13",
		},
	}
	assert.Equal(t, want, Default())
}

func TestDefault_FreshCopy(t *testing.T) {
	a := Default()
	a[0].Completed = true
	assert.False(t, Default()[0].Completed)
}

func TestLoad_EmptyPath(t *testing.T) {
	tasks, err := Load("")
	require.NoError(t, err)
	assert.Len(t, tasks, 3)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`tasks:
  - id: a
    title: Only task
    createdAt: "2025-01-01"
`), 0o644))

	tasks, err := Load(path)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "a", tasks[0].ID)
	assert.Equal(t, domain.PriorityMedium, tasks[0].Priority)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"duplicate", "tasks:\n  - {id: a, title: x}\n  - {id: a, title: y}\n", ErrDuplicateID},
		{"empty title", "tasks:\n  - {id: a, title: '  '}\n", ErrEmptyTitle},
		{"empty id", "tasks:\n  - {title: x}\n", ErrEmptyID},
		{"priority", "tasks:\n  - {id: a, title: x, priority: urgent}\n", ErrBadPriority},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("tasks: [unterminated"))
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	tasks, err := Parse([]byte("tasks: []\n"))
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}
