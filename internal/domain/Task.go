package domain

import "time"

// DateLayout is the date-only layout used for CreatedAt and DueDate.
const DateLayout = time.DateOnly

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Completed   bool     `json:"completed" yaml:"completed"`
	Priority    Priority `json:"priority" yaml:"priority"`
	DueDate     string   `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`
	CreatedAt   string   `json:"createdAt" yaml:"createdAt"`
}

// NewTask builds a task the way the add form does: medium priority,
// not completed, created today.
func NewTask(id, title string, now time.Time) Task {
	return Task{
		ID:        id,
		Title:     title,
		Priority:  PriorityMedium,
		CreatedAt: now.UTC().Format(DateLayout),
	}
}
