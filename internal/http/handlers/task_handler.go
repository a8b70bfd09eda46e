package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"tasklist/internal/domain"
	"tasklist/internal/export"
	"tasklist/internal/http/dto"
	"tasklist/internal/service"
)

type TaskService interface {
	AddTask(title string) (domain.Task, error)
	SetDraft(text string)
	SubmitDraft() (domain.Task, error)
	ToggleTask(id string) (domain.Task, bool)
	DeleteTask(id string) bool
	SetFilter(f domain.Filter) error
	Filter() domain.Filter
	GetTask(id string) (domain.Task, error)
	Summary() domain.Summary
	Snapshot() domain.Snapshot
	SnapshotFor(f domain.Filter) domain.Snapshot
	Reset() domain.Snapshot
}

type Exporter interface {
	Export(ctx context.Context, format export.Format, filter domain.Filter) ([]byte, error)
}

type TaskHandler struct {
	taskService TaskService
	exporter    Exporter
}

func New(taskService TaskService, exporter Exporter) *TaskHandler {
	return &TaskHandler{taskService: taskService, exporter: exporter}
}

// POST /tasks
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.taskService.AddTask(req.Title)
	if err != nil {
		h.writeAddError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.Task(task))
}

// GET /tasks?filter=
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshotForQuery(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dto.Snapshot(snap))
}

// GET /tasks/{id}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	task, err := h.taskService.GetTask(r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidID):
			writeError(w, http.StatusBadRequest, service.ErrInvalidID.Error())
		case errors.Is(err, service.ErrNotFound):
			writeError(w, http.StatusNotFound, service.ErrNotFound.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed getting task")
		}
		return
	}

	writeJSON(w, http.StatusOK, dto.Task(task))
}

// POST /tasks/{id}/toggle
// Unknown ids leave the list as it is; the response is the current view
// either way.
func (h *TaskHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.taskService.ToggleTask(r.PathValue("id"))
	writeJSON(w, http.StatusOK, dto.Snapshot(h.taskService.Snapshot()))
}

// DELETE /tasks/{id}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.taskService.DeleteTask(r.PathValue("id"))
	writeJSON(w, http.StatusOK, dto.Snapshot(h.taskService.Snapshot()))
}

// GET /summary
func (h *TaskHandler) Summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.Summary(h.taskService.Summary()))
}

// PUT /filter
func (h *TaskHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	var req dto.FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.taskService.SetFilter(domain.Filter(req.Filter)); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.Snapshot(h.taskService.Snapshot()))
}

// PUT /draft
func (h *TaskHandler) SetDraft(w http.ResponseWriter, r *http.Request) {
	var req dto.DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.taskService.SetDraft(req.Title)
	writeJSON(w, http.StatusOK, dto.Snapshot(h.taskService.Snapshot()))
}

// POST /draft/submit
func (h *TaskHandler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	task, err := h.taskService.SubmitDraft()
	if err != nil {
		h.writeAddError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.Task(task))
}

// POST /reset
func (h *TaskHandler) Reset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.Snapshot(h.taskService.Reset()))
}

// GET /export?format=&filter=
func (h *TaskHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	filter := h.taskService.Filter()
	if q := r.URL.Query().Get("filter"); q != "" {
		if filter, err = domain.ParseFilter(q); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	data, err := h.exporter.Export(r.Context(), format, filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=tasks.%s", format))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// GET /healthz
func (h *TaskHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *TaskHandler) snapshotForQuery(w http.ResponseWriter, r *http.Request) (domain.Snapshot, bool) {
	q := r.URL.Query().Get("filter")
	if q == "" {
		return h.taskService.Snapshot(), true
	}

	f, err := domain.ParseFilter(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return domain.Snapshot{}, false
	}
	return h.taskService.SnapshotFor(f), true
}

func (h *TaskHandler) writeAddError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, service.ErrInvalidInput.Error())
	case errors.Is(err, service.ErrDuplicateID):
		writeError(w, http.StatusConflict, service.ErrDuplicateID.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
