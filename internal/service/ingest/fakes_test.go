package ingest

import (
	"context"
	"errors"
	"fmt"

	"roomledger/internal/domain"
	"roomledger/internal/domain/models"
	"roomledger/internal/domain/services"
)

// In-memory collaborators for pipeline tests. They mirror the repository
// contracts, including ErrNotFound wrapping, and count store interactions so
// tests can assert on read/write behavior per row.

type fakeReservationRepo struct {
	records     map[string]models.Reservation
	getCalls    int
	upsertCalls int
	updateCalls int
	failWith    error // when set, every call fails (simulated outage)
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{records: make(map[string]models.Reservation)}
}

func (f *fakeReservationRepo) GetByKey(ctx context.Context, key string) (*models.Reservation, error) {
	f.getCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	r, ok := f.records[key]
	if !ok {
		return nil, fmt.Errorf("reservation %s: %w", key, domain.ErrNotFound)
	}
	return &r, nil
}

func (f *fakeReservationRepo) Upsert(ctx context.Context, r *models.Reservation) error {
	f.upsertCalls++
	if f.failWith != nil {
		return f.failWith
	}
	f.records[r.Key] = *r
	return nil
}

func (f *fakeReservationRepo) UpdateStatusByKey(ctx context.Context, key, status string) error {
	f.updateCalls++
	if f.failWith != nil {
		return f.failWith
	}
	r, ok := f.records[key]
	if !ok {
		return fmt.Errorf("reservation %s: %w", key, domain.ErrNotFound)
	}
	r.Status = status
	f.records[key] = r
	return nil
}

type fakeTaskRepo struct {
	tasks       map[string]models.Task
	transitions []models.TaskStatus
}

func newFakeTaskRepo(tasks ...models.Task) *fakeTaskRepo {
	f := &fakeTaskRepo{tasks: make(map[string]models.Task)}
	for _, t := range tasks {
		f.tasks[t.ID] = t
	}
	return f
}

func (f *fakeTaskRepo) Create(ctx context.Context, task *models.Task) error {
	if _, ok := f.tasks[task.ID]; ok {
		return fmt.Errorf("task %s: %w", task.ID, domain.ErrConflict)
	}
	f.tasks[task.ID] = *task
	return nil
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, id string) (*models.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return &t, nil
}

func (f *fakeTaskRepo) UpdateStatus(ctx context.Context, id string, status models.TaskStatus) (*models.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	t.Status = status
	f.tasks[id] = t
	f.transitions = append(f.transitions, status)
	return &t, nil
}

func (f *fakeTaskRepo) Complete(ctx context.Context, id string, status models.TaskStatus, reportRef string) (*models.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	t.Status = status
	t.ReportRef = reportRef
	f.tasks[id] = t
	f.transitions = append(f.transitions, status)
	return &t, nil
}

type fakeReportStore struct {
	reports map[string][]models.ReportEntry
	writes  int
}

func newFakeReportStore() *fakeReportStore {
	return &fakeReportStore{reports: make(map[string][]models.ReportEntry)}
}

func (f *fakeReportStore) Write(ctx context.Context, taskID string, entries []models.ReportEntry) (string, error) {
	f.writes++
	ref := taskID + ".json"
	f.reports[ref] = entries
	return ref, nil
}

func (f *fakeReportStore) Read(ctx context.Context, ref string) ([]models.ReportEntry, error) {
	entries, ok := f.reports[ref]
	if !ok {
		return nil, fmt.Errorf("report %s: %w", ref, domain.ErrNotFound)
	}
	return entries, nil
}

type fakeNotifier struct {
	statuses []services.StatusEvent
	progress []services.ProgressEvent
}

func (f *fakeNotifier) EmitStatus(ctx context.Context, ev services.StatusEvent) {
	f.statuses = append(f.statuses, ev)
}

func (f *fakeNotifier) EmitProgress(ctx context.Context, ev services.ProgressEvent) {
	f.progress = append(f.progress, ev)
}

// fakeReader streams pre-built rows. openErr simulates a file that cannot be
// opened; corruptAt simulates a stream that breaks at the given row index.
type fakeReader struct {
	rows      []models.Row
	openErr   error
	corruptAt int // -1 disables
}

func newFakeReader(rows ...models.Row) *fakeReader {
	return &fakeReader{rows: rows, corruptAt: -1}
}

func (f *fakeReader) Open(ctx context.Context, path string) (services.RowIterator, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return &fakeIterator{rows: f.rows, corruptAt: f.corruptAt, pos: -1}, nil
}

type fakeIterator struct {
	rows      []models.Row
	corruptAt int
	pos       int
}

var errCorrupt = errors.New("unexpected end of archive")

func (it *fakeIterator) Next() bool {
	it.pos++
	return it.pos < len(it.rows)
}

func (it *fakeIterator) Row() (models.Row, error) {
	if it.corruptAt >= 0 && it.pos == it.corruptAt {
		return models.Row{}, errCorrupt
	}
	return it.rows[it.pos], nil
}

func (it *fakeIterator) Err() error { return nil }

func (it *fakeIterator) Close() error { return nil }

// textRow builds a row of plain text cells in the fixed column order.
func textRow(number int, cells ...string) models.Row {
	row := models.Row{Number: number}
	for _, c := range cells {
		kind := models.CellText
		if c == "" {
			kind = models.CellEmpty
		}
		row.Cells = append(row.Cells, models.Cell{Kind: kind, Text: c})
	}
	return row
}

var headerRow = textRow(1, "Reservation ID", "Guest Name", "Status", "Check-in", "Check-out")
