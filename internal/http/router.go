package router

import (
	"net/http"

	"tasklist/internal/http/handlers"
)

// New wires the JSON API. live serves the websocket feed at /ws; it may
// be nil.
func New(handler *handlers.TaskHandler, live http.Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /tasks", handler.List)
	mux.HandleFunc("POST /tasks", handler.Create)
	mux.HandleFunc("GET /tasks/{id}", handler.Get)
	mux.HandleFunc("POST /tasks/{id}/toggle", handler.Toggle)
	mux.HandleFunc("DELETE /tasks/{id}", handler.Delete)

	mux.HandleFunc("GET /summary", handler.Summary)
	mux.HandleFunc("PUT /filter", handler.SetFilter)
	mux.HandleFunc("PUT /draft", handler.SetDraft)
	mux.HandleFunc("POST /draft/submit", handler.SubmitDraft)
	mux.HandleFunc("POST /reset", handler.Reset)
	mux.HandleFunc("GET /export", handler.Export)
	mux.HandleFunc("GET /healthz", handler.Health)

	if live != nil {
		mux.Handle("GET /ws", live)
	}

	return mux
}
