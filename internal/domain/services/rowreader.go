package services

import (
	"context"

	"roomledger/internal/domain/models"
)

// RowReader opens a lazy, forward-only stream of rows over the first
// worksheet of a spreadsheet file. The stream is restartable per job (a
// redelivered job opens a fresh iterator) but not mid-job.
type RowReader interface {
	Open(ctx context.Context, path string) (RowIterator, error)
}

// RowIterator yields rows in file order. Usage mirrors database cursors:
//
//	for it.Next() {
//	    row, err := it.Row()
//	    ...
//	}
//	if err := it.Err(); err != nil { ... }
//
// A Row error or a non-nil Err means the stream is corrupt; the iterator
// must not be advanced further.
type RowIterator interface {
	Next() bool
	Row() (models.Row, error)
	Err() error
	Close() error
}
