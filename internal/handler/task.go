package handler

import (
	"log/slog"
	"net/http"

	"roomledger/internal/domain"
	"roomledger/internal/domain/repositories"
	"roomledger/internal/httputil"
)

// TaskHandler serves task status and report retrieval.
type TaskHandler struct {
	tasks   repositories.TaskRepository
	reports repositories.ReportStore
	logger  *slog.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(tasks repositories.TaskRepository, reports repositories.ReportStore, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		tasks:   tasks,
		reports: reports,
		logger:  logger,
	}
}

// GetTask returns the task's current status and report reference.
// GET /api/tasks/{id}
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.tasks.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, task)
}

// GetReport returns the report artifact for a task. A task without a report
// reference had a clean run; that is a 404 by design, not a missing file.
// GET /api/tasks/{id}/report
func (h *TaskHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	task, err := h.tasks.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	if task.ReportRef == "" {
		handleError(w, &domain.NotFoundError{Message: "no report for this task"})
		return
	}

	entries, err := h.reports.Read(r.Context(), task.ReportRef)
	if err != nil {
		handleError(w, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, entries)
}

// HealthCheck responds to liveness probes.
// GET /health
func (h *TaskHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
