package dto

import "tasklist/internal/domain"

type CreateTaskRequest struct {
	Title string `json:"title"`
}

type DraftRequest struct {
	Title string `json:"title"`
}

type FilterRequest struct {
	Filter string `json:"filter"`
}

type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

type SummaryResponse struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type SnapshotResponse struct {
	Filter  string          `json:"filter"`
	Tasks   []TaskResponse  `json:"tasks"`
	Summary SummaryResponse `json:"summary"`
	Draft   string          `json:"draft"`
	Empty   string          `json:"empty,omitempty"`
}

type EventResponse struct {
	Kind     string           `json:"kind"`
	TaskID   string           `json:"taskId,omitempty"`
	Snapshot SnapshotResponse `json:"snapshot"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func Task(t domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
	}
}

func Summary(s domain.Summary) SummaryResponse {
	return SummaryResponse{Completed: s.Completed, Total: s.Total, Percentage: s.Percentage}
}

func Snapshot(s domain.Snapshot) SnapshotResponse {
	tasks := make([]TaskResponse, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		tasks = append(tasks, Task(t))
	}
	return SnapshotResponse{
		Filter:  string(s.Filter),
		Tasks:   tasks,
		Summary: Summary(s.Summary),
		Draft:   s.Draft,
		Empty:   s.Empty,
	}
}

func Event(ev domain.Event) EventResponse {
	return EventResponse{Kind: string(ev.Kind), TaskID: ev.TaskID, Snapshot: Snapshot(ev.Snapshot)}
}
