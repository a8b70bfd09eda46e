package memory

import (
	"slices"
	"strings"
	"sync"

	"tasklist/internal/domain"
	"tasklist/internal/store"
)

var _ store.TaskStore = (*TaskStore)(nil)

// TaskStore keeps tasks newest-first in a slice.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []domain.Task
}

func New(seed ...domain.Task) *TaskStore {
	ts := &TaskStore{}
	ts.Reset(seed)
	return ts
}

// Add prepends t. It is a no-op when the trimmed title is empty or the id
// is empty or already taken.
func (ts *TaskStore) Add(task domain.Task) (domain.Task, bool) {
	task.Title = strings.TrimSpace(task.Title)
	if task.Title == "" || task.ID == "" {
		return domain.Task{}, false
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.indexOf(task.ID) >= 0 {
		return domain.Task{}, false
	}
	ts.tasks = slices.Insert(ts.tasks, 0, task)

	return task, true
}

func (ts *TaskStore) Get(id string) (domain.Task, bool) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	i := ts.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	// task is non-pointer value
	return ts.tasks[i], true
}

func (ts *TaskStore) List() []domain.Task {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	return slices.Clone(ts.tasks)
}

func (ts *TaskStore) Toggle(id string) (domain.Task, bool) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	i := ts.indexOf(id)
	if i < 0 {
		return domain.Task{}, false
	}
	ts.tasks[i].Completed = !ts.tasks[i].Completed

	return ts.tasks[i], true
}

func (ts *TaskStore) Delete(id string) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	i := ts.indexOf(id)
	if i < 0 {
		return false
	}
	ts.tasks = slices.Delete(ts.tasks, i, i+1)

	return true
}

// Reset replaces the collection, keeping the given order.
func (ts *TaskStore) Reset(tasks []domain.Task) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	ts.tasks = slices.Clone(tasks)
	if ts.tasks == nil {
		ts.tasks = []domain.Task{}
	}
}

// caller holds mu
func (ts *TaskStore) indexOf(id string) int {
	return slices.IndexFunc(ts.tasks, func(t domain.Task) bool { return t.ID == id })
}
