package domain

type EventKind string

const (
	EventAdded         EventKind = "added"
	EventToggled       EventKind = "toggled"
	EventDeleted       EventKind = "deleted"
	EventFilterChanged EventKind = "filter_changed"
	EventDraftChanged  EventKind = "draft_changed"
	EventReset         EventKind = "reset"
)

// Snapshot is the derived view recomputed after every change.
type Snapshot struct {
	Filter  Filter  `json:"filter"`
	Tasks   []Task  `json:"tasks"`
	Summary Summary `json:"summary"`
	Draft   string  `json:"draft"`
	Empty   string  `json:"empty,omitempty"`
}

type Event struct {
	Kind     EventKind `json:"kind"`
	TaskID   string    `json:"taskId,omitempty"`
	Snapshot Snapshot  `json:"snapshot"`
}
