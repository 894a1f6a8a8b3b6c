package ingest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"roomledger/internal/config"
	"roomledger/internal/domain"
	"roomledger/internal/domain/models"
	"roomledger/internal/domain/repositories"
	"roomledger/internal/domain/services"
)

// Summary aggregates per-row outcomes for one job execution.
type Summary struct {
	Rows     int `json:"rows"`
	Upserted int `json:"upserted"`
	Updated  int `json:"updated"`
	Skipped  int `json:"skipped"`
	Errors   int `json:"errors"`
}

// Orchestrator owns the task lifecycle and coordinates the row pipeline:
// normalize, duplicate-check, validate, apply business rules, persist, with
// error accumulation and progress events along the way.
//
// Error policy: row-data problems become error items and never abort the
// job; a failure of the stream itself becomes one file-level item and marks
// the task FAILED; store and report-write failures propagate out so the
// queue redelivers the job. Each attempt starts with a fresh tracker and
// reporter, and the store operations are idempotent by key, so redelivery
// re-derives the same outcome.
type Orchestrator struct {
	tasks    repositories.TaskRepository
	reports  repositories.ReportStore
	reader   services.RowReader
	rules    *RuleEngine
	notifier services.Notifier
	statuses config.StatusLiterals
	logger   *slog.Logger
}

func NewOrchestrator(
	tasks repositories.TaskRepository,
	reports repositories.ReportStore,
	reader services.RowReader,
	rules *RuleEngine,
	notifier services.Notifier,
	statuses config.StatusLiterals,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		tasks:    tasks,
		reports:  reports,
		reader:   reader,
		rules:    rules,
		notifier: notifier,
		statuses: statuses,
		logger:   logger,
	}
}

// ProcessTask runs one queued job to completion. A nil return means the task
// reached a terminal state (or referenced no task at all); a non-nil return
// is an infrastructure failure the queue should retry.
func (o *Orchestrator) ProcessTask(ctx context.Context, taskID string) error {
	task, err := o.tasks.GetByID(ctx, taskID)
	if errors.Is(err, domain.ErrNotFound) {
		// Data-integrity anomaly, not a transient fault: a retry would
		// find the same nothing. Log and drop the job.
		o.logger.Error("job references unknown task, dropping", "task_id", taskID)
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := o.tasks.UpdateStatus(ctx, taskID, models.TaskInProgress); err != nil {
		return err
	}

	reporter := NewReporter(o.reports, o.statuses)
	tracker := NewTracker()
	validator := NewValidator(o.statuses)
	var summary Summary

	it, err := o.reader.Open(ctx, task.FilePath)
	if err != nil {
		o.logger.Warn("cannot open spreadsheet", "task_id", taskID, "file", task.FilePath, "error", err)
		return o.fail(ctx, taskID, reporter, err)
	}
	defer it.Close()

	for it.Next() {
		row, err := it.Row()
		if err != nil {
			// Corrupt stream, same failure class as a file that
			// would not open.
			o.logger.Warn("spreadsheet stream corrupt", "task_id", taskID, "error", err)
			return o.fail(ctx, taskID, reporter, err)
		}
		if row.Number == 1 {
			// Header row by convention
			continue
		}

		if err := o.processRow(ctx, row, validator, tracker, reporter, &summary); err != nil {
			return err
		}

		summary.Rows++
		if summary.Rows%config.ProgressInterval == 0 {
			o.notifier.EmitProgress(ctx, services.ProgressEvent{
				TaskID:        taskID,
				RowsProcessed: summary.Rows,
				ErrorCount:    reporter.Count(),
				Timestamp:     time.Now().UTC(),
			})
		}
	}
	if err := it.Err(); err != nil {
		o.logger.Warn("spreadsheet stream corrupt", "task_id", taskID, "error", err)
		return o.fail(ctx, taskID, reporter, err)
	}

	// Row errors are data problems, not pipeline failures: the run still
	// completes, with the report carrying the details.
	ref, err := reporter.Persist(ctx, taskID)
	if err != nil {
		return err
	}
	if _, err := o.tasks.Complete(ctx, taskID, models.TaskCompleted, ref); err != nil {
		return err
	}

	o.notifier.EmitStatus(ctx, services.StatusEvent{
		TaskID:    taskID,
		Status:    models.TaskCompleted,
		ReportRef: ref,
		Timestamp: time.Now().UTC(),
	})

	o.logger.Info("task completed",
		"task_id", taskID,
		"rows", summary.Rows,
		"upserted", summary.Upserted,
		"updated", summary.Updated,
		"skipped", summary.Skipped,
		"errors", summary.Errors,
	)
	return nil
}

// processRow routes one data row through the pipeline. Row-level problems
// land in the reporter; only store failures return an error.
func (o *Orchestrator) processRow(
	ctx context.Context,
	row models.Row,
	validator *Validator,
	tracker *Tracker,
	reporter *Reporter,
	summary *Summary,
) error {
	normalized := normalizeRow(row)

	// Duplicate check runs before field validation, and a duplicate row
	// never reaches the rule engine. The error item carries the key.
	if tracker.Seen(normalized.Key) {
		reporter.Add(models.ErrorItem{
			Row:   row.Number,
			Code:  models.ErrCodeDuplicate,
			Field: normalized.Key,
		})
		summary.Errors++
		return nil
	}

	record, violations := validator.Validate(normalized)
	if len(violations) > 0 {
		reporter.AddAll(violations)
		summary.Errors++
		return nil
	}

	// Only a fully valid row claims its key.
	tracker.Record(normalized.Key)

	outcome, err := o.rules.Apply(ctx, record)
	if err != nil {
		return err
	}
	switch outcome {
	case OutcomeUpserted:
		summary.Upserted++
	case OutcomeUpdated:
		summary.Updated++
	case OutcomeSkipped:
		summary.Skipped++
	}
	return nil
}

// fail handles a pipeline failure: one synthetic file-level error item, a
// report artifact, a FAILED transition and the final status event. The
// pipeline error itself is consumed here; only failures of these recovery
// steps (infrastructure) propagate for redelivery.
func (o *Orchestrator) fail(ctx context.Context, taskID string, reporter *Reporter, cause error) error {
	reporter.Add(models.ErrorItem{
		Row:     0,
		Code:    models.ErrCodeUnknown,
		Message: cause.Error(),
	})

	ref, err := reporter.Persist(ctx, taskID)
	if err != nil {
		return err
	}
	if _, err := o.tasks.Complete(ctx, taskID, models.TaskFailed, ref); err != nil {
		return err
	}

	o.notifier.EmitStatus(ctx, services.StatusEvent{
		TaskID:    taskID,
		Status:    models.TaskFailed,
		ReportRef: ref,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

// normalizeRow maps the fixed column order (key, name, status, check-in,
// check-out) through the cell normalizer.
func normalizeRow(row models.Row) models.ReservationRow {
	return models.ReservationRow{
		Number:    row.Number,
		Key:       NormalizeText(row.Cell(0)),
		GuestName: NormalizeText(row.Cell(1)),
		Status:    NormalizeText(row.Cell(2)),
		CheckIn:   NormalizeDate(row.Cell(3)),
		CheckOut:  NormalizeDate(row.Cell(4)),
	}
}
