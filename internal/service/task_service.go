package service

import (
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tasklist/internal/domain"
	"tasklist/internal/workerpool"
)

type TaskStore interface {
	Add(t domain.Task) (domain.Task, bool)
	Get(id string) (domain.Task, bool)
	List() []domain.Task
	Toggle(id string) (domain.Task, bool)
	Delete(id string) bool
	Reset(tasks []domain.Task)
}

// TaskService is the state container: it owns the store, the current
// filter selection and the pending draft title, and publishes an event
// after every change.
type TaskService struct {
	store TaskStore
	pool  workerpool.EventPool

	seed   []domain.Task
	now    func() time.Time
	newID  func() string
	logger *slog.Logger

	// mu serialises mutations so events leave in the order they happened.
	mu     sync.Mutex
	filter domain.Filter
	draft  string
}

type Option func(*TaskService)

// WithSeed sets the tasks Reset restores.
func WithSeed(tasks []domain.Task) Option {
	return func(s *TaskService) { s.seed = slices.Clone(tasks) }
}

func WithClock(now func() time.Time) Option {
	return func(s *TaskService) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *TaskService) { s.newID = newID }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *TaskService) { s.logger = l }
}

func New(store TaskStore, pool workerpool.EventPool, opts ...Option) (*TaskService, error) {
	if store == nil {
		return nil, ErrStoreNil
	}
	if pool == nil {
		return nil, ErrPoolNil
	}

	s := &TaskService{
		store:  store,
		pool:   pool,
		now:    time.Now,
		newID:  uuid.NewString,
		logger: slog.Default(),
		filter: domain.FilterAll,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(slog.String("component", "service"))

	return s, nil
}

// AddTask creates a medium-priority task at the front of the list and
// clears the draft. A blank title leaves everything untouched.
func (s *TaskService) AddTask(title string) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addLocked(title)
}

func (s *TaskService) addLocked(title string) (domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.Task{}, ErrInvalidInput
	}

	task := domain.NewTask(s.newID(), title, s.now())
	created, ok := s.store.Add(task)
	if !ok {
		return domain.Task{}, ErrDuplicateID
	}
	s.draft = ""

	s.logger.Debug("task added", slog.String("id", created.ID))
	s.publishLocked(domain.EventAdded, created.ID)

	return created, nil
}

func (s *TaskService) SetDraft(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.draft == text {
		return
	}
	s.draft = text
	s.publishLocked(domain.EventDraftChanged, "")
}

func (s *TaskService) Draft() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// SubmitDraft adds the pending draft as a task.
func (s *TaskService) SubmitDraft() (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addLocked(s.draft)
}

// ToggleTask flips completion. Unknown ids are ignored.
func (s *TaskService) ToggleTask(id string) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.store.Toggle(id)
	if !ok {
		return domain.Task{}, false
	}

	s.logger.Debug("task toggled", slog.String("id", id), slog.Bool("completed", task.Completed))
	s.publishLocked(domain.EventToggled, id)

	return task, true
}

// DeleteTask removes a task. Unknown ids are ignored.
func (s *TaskService) DeleteTask(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.Delete(id) {
		return false
	}

	s.logger.Debug("task deleted", slog.String("id", id))
	s.publishLocked(domain.EventDeleted, id)

	return true
}

func (s *TaskService) SetFilter(f domain.Filter) error {
	parsed, err := domain.ParseFilter(string(f))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.filter == parsed {
		return nil
	}
	s.filter = parsed
	s.publishLocked(domain.EventFilterChanged, "")

	return nil
}

func (s *TaskService) Filter() domain.Filter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// Reset restores the seed tasks and clears filter and draft.
func (s *TaskService) Reset() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Reset(s.seed)
	s.filter = domain.FilterAll
	s.draft = ""

	s.logger.Info("task list reset", slog.Int("tasks", len(s.seed)))
	return s.publishLocked(domain.EventReset, "")
}

func (s *TaskService) GetTask(id string) (domain.Task, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Task{}, ErrInvalidID
	}

	task, ok := s.store.Get(id)
	if !ok {
		return domain.Task{}, ErrNotFound
	}
	return task, nil
}

// ListTasks returns the whole collection, newest first.
func (s *TaskService) ListTasks() []domain.Task {
	return s.store.List()
}

func (s *TaskService) Visible(f domain.Filter) []domain.Task {
	return domain.Visible(s.store.List(), f)
}

func (s *TaskService) Summary() domain.Summary {
	return domain.Summarize(s.store.List())
}

// Snapshot is the current view under the selected filter.
func (s *TaskService) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// SnapshotFor is the current view under f without changing the selection.
func (s *TaskService) SnapshotFor(f domain.Filter) domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildSnapshot(f)
}

func (s *TaskService) snapshotLocked() domain.Snapshot {
	return s.buildSnapshot(s.filter)
}

func (s *TaskService) buildSnapshot(f domain.Filter) domain.Snapshot {
	all := s.store.List()
	snap := domain.Snapshot{
		Filter:  f,
		Tasks:   domain.Visible(all, f),
		Summary: domain.Summarize(all),
		Draft:   s.draft,
	}
	if len(snap.Tasks) == 0 {
		snap.Empty = f.EmptyMessage()
	}
	return snap
}

func (s *TaskService) publishLocked(kind domain.EventKind, taskID string) domain.Snapshot {
	snap := s.snapshotLocked()

	err := s.pool.Enqueue(domain.Event{Kind: kind, TaskID: taskID, Snapshot: snap})
	switch {
	case err == nil:
	case errors.Is(err, workerpool.ErrPoolFull), errors.Is(err, workerpool.ErrPoolClosed):
		s.logger.Warn("event dropped", slog.String("kind", string(kind)), slog.Any("err", err))
	default:
		s.logger.Error("event publish failed", slog.String("kind", string(kind)), slog.Any("err", err))
	}

	return snap
}
