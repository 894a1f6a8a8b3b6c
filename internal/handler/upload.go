package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"roomledger/internal/config"
	"roomledger/internal/domain"
	"roomledger/internal/domain/models"
	"roomledger/internal/domain/repositories"
	"roomledger/internal/httputil"

	"github.com/google/uuid"
)

// IngestEnqueuer is the slice of the queue client the handler needs.
type IngestEnqueuer interface {
	EnqueueIngest(ctx context.Context, taskID string) error
}

// UploadHandler accepts reservation spreadsheets, creates the task record
// and hands the work to the queue. Processing happens asynchronously; the
// response only carries the task id to poll or subscribe on.
type UploadHandler struct {
	tasks     repositories.TaskRepository
	queue     IngestEnqueuer
	uploadDir string
	logger    *slog.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(tasks repositories.TaskRepository, queue IngestEnqueuer, uploadDir string, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		tasks:     tasks,
		queue:     queue,
		uploadDir: uploadDir,
		logger:    logger,
	}
}

// UploadResponse is the accepted-upload payload.
type UploadResponse struct {
	TaskID string            `json:"task_id"`
	Status models.TaskStatus `json:"status"`
}

// Upload handles spreadsheet uploads.
// POST /api/uploads, multipart field "file", xlsx only.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(config.MaxUploadBytes); err != nil {
		handleError(w, &domain.ValidationError{Message: "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(w, &domain.ValidationError{Message: "missing file field"})
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		handleError(w, &domain.ValidationError{Message: "only .xlsx files are accepted"})
		return
	}

	taskID := uuid.New().String()
	dest := filepath.Join(h.uploadDir, taskID+".xlsx")
	if err := saveUpload(file, dest); err != nil {
		h.logger.Error("persist upload", "filename", header.Filename, "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "could not store upload")
		return
	}

	task := &models.Task{
		ID:       taskID,
		FilePath: dest,
		Status:   models.TaskPending,
	}
	if err := h.tasks.Create(r.Context(), task); err != nil {
		h.discardUpload(dest)
		handleError(w, err)
		return
	}

	if err := h.queue.EnqueueIngest(r.Context(), taskID); err != nil {
		h.logger.Error("enqueue ingest", "task_id", taskID, "error", err)
		h.discardUpload(dest)
		httputil.RespondError(w, http.StatusInternalServerError, "could not queue processing")
		return
	}

	h.logger.Info("upload accepted",
		"task_id", taskID,
		"filename", header.Filename,
		"size", header.Size,
	)

	httputil.RespondJSON(w, http.StatusAccepted, UploadResponse{
		TaskID: taskID,
		Status: task.Status,
	})
}

// discardUpload removes a stored file whose task never made it into the
// pipeline, so a failed request leaves nothing behind on disk.
func (h *UploadHandler) discardUpload(dest string) {
	if err := os.Remove(dest); err != nil {
		h.logger.Warn("remove orphaned upload", "file", dest, "error", err)
	}
}

func saveUpload(src io.Reader, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("create upload directory: %w", err)
	}
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("write upload file: %w", err)
	}
	return nil
}
