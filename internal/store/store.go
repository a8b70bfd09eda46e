package store

import (
	"tasklist/internal/domain"
)

// TaskStore owns the ordered task collection. Missing ids are reported
// through the bool results, never as errors.
type TaskStore interface {
	Add(t domain.Task) (domain.Task, bool)
	Get(id string) (domain.Task, bool)
	List() []domain.Task
	Toggle(id string) (domain.Task, bool)
	Delete(id string) bool
	Reset(tasks []domain.Task)
}
