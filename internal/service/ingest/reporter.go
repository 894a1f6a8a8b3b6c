package ingest

import (
	"context"
	"fmt"
	"strings"

	"roomledger/internal/config"
	"roomledger/internal/domain/models"
	"roomledger/internal/domain/repositories"
)

// Reporter accumulates error items for one job execution and renders them as
// the task's report artifact. Like the duplicate tracker it is owned by a
// single in-flight job and starts empty on every (re)delivery.
type Reporter struct {
	store    repositories.ReportStore
	statuses config.StatusLiterals
	items    []models.ErrorItem
}

func NewReporter(store repositories.ReportStore, statuses config.StatusLiterals) *Reporter {
	return &Reporter{store: store, statuses: statuses}
}

// Add appends one error item. Items keep insertion order, which is row order
// because the pipeline processes rows sequentially.
func (r *Reporter) Add(item models.ErrorItem) {
	r.items = append(r.items, item)
}

// AddAll appends a row's violation list in its given order.
func (r *Reporter) AddAll(items []models.ErrorItem) {
	r.items = append(r.items, items...)
}

// Count returns the number of accumulated items.
func (r *Reporter) Count() int {
	return len(r.items)
}

// Render maps each accumulated item to its user-facing (reason, suggestion)
// pair.
func (r *Reporter) Render() []models.ReportEntry {
	entries := make([]models.ReportEntry, 0, len(r.items))
	for _, it := range r.items {
		reason, suggestion := r.describe(it)
		entries = append(entries, models.ReportEntry{
			Row:        it.Row,
			Code:       it.Code,
			Field:      it.Field,
			Reason:     reason,
			Suggestion: suggestion,
		})
	}
	return entries
}

// Persist writes the rendered report through the store and returns its
// reference. When no errors accumulated it writes nothing and returns an
// empty reference: the artifact's absence is what signals a clean run, so an
// empty-but-present artifact must never exist.
func (r *Reporter) Persist(ctx context.Context, taskID string) (string, error) {
	if len(r.items) == 0 {
		return "", nil
	}
	ref, err := r.store.Write(ctx, taskID, r.Render())
	if err != nil {
		return "", fmt.Errorf("write report for task %s: %w", taskID, err)
	}
	return ref, nil
}

func (r *Reporter) describe(it models.ErrorItem) (reason, suggestion string) {
	switch it.Code {
	case models.ErrCodeMissingField:
		return fmt.Sprintf("Missing required field: %s", it.Field),
			fmt.Sprintf("Provide value for field %q", it.Field)
	case models.ErrCodeValueTooLong:
		return fmt.Sprintf("Value exceeds maximum length in field: %s", it.Field),
			fmt.Sprintf("Shorten field %q to at most %d characters", it.Field, fieldLengthLimit(it.Field))
	case models.ErrCodeInvalidDate:
		return fmt.Sprintf("Invalid date format in field: %s", it.Field),
			"Use YYYY-MM-DD format"
	case models.ErrCodeInvalidStatus:
		return "Invalid reservation status",
			fmt.Sprintf("Use one of allowed values: %s", strings.Join(r.statuses.Allowed(), ", "))
	case models.ErrCodeCheckoutOrder:
		return "Check-out date is before check-in date",
			"Ensure check-out date is after check-in date"
	case models.ErrCodeDuplicate:
		return fmt.Sprintf("Duplicate reservation ID: %s", it.Field),
			"Remove duplicate entry or use unique reservation ID"
	default:
		reason = it.Message
		if reason == "" {
			reason = "Unknown error"
		}
		return reason, "Verify row data"
	}
}

func fieldLengthLimit(field string) int {
	if field == FieldReservationID {
		return config.MaxReservationKeyLength
	}
	return config.MaxGuestNameLength
}
