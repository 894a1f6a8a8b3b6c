// Package spreadsheet adapts excelize's streaming row API to the pipeline's
// RowReader contract.
package spreadsheet

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"roomledger/internal/domain/models"
	"roomledger/internal/domain/services"

	"github.com/xuri/excelize/v2"
)

// ExcelReader opens xlsx files and streams the first worksheet row by row.
// The stream is lazy and forward-only; a redelivered job simply opens a
// fresh reader.
type ExcelReader struct{}

func NewExcelReader() *ExcelReader {
	return &ExcelReader{}
}

func (r *ExcelReader) Open(ctx context.Context, path string) (services.RowIterator, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet %s: %w", path, err)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, fmt.Errorf("spreadsheet %s: no worksheets", path)
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stream worksheet %s: %w", sheets[0], err)
	}

	return &excelIterator{file: f, rows: rows}, nil
}

type excelIterator struct {
	file   *excelize.File
	rows   *excelize.Rows
	number int
}

func (it *excelIterator) Next() bool {
	if !it.rows.Next() {
		return false
	}
	it.number++
	return true
}

func (it *excelIterator) Row() (models.Row, error) {
	cols, err := it.rows.Columns(excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Row{}, fmt.Errorf("read row %d: %w", it.number, err)
	}

	cells := make([]models.Cell, len(cols))
	for i, raw := range cols {
		cells[i] = toCell(raw)
	}
	return models.Row{Number: it.number, Cells: cells}, nil
}

func (it *excelIterator) Err() error {
	return it.rows.Error()
}

func (it *excelIterator) Close() error {
	cerr := it.rows.Close()
	if err := it.file.Close(); err != nil {
		return err
	}
	return cerr
}

// toCell classifies one raw cell value. With RawCellValue set, excelize
// returns date cells as day serials, so numeric values keep enough
// information for the normalizer's serial-to-date conversion; rich text
// arrives already concatenated. Boolean cells are stored as "1"/"0" in the
// raw form and are indistinguishable from numbers here, so they surface as
// numeric cells.
func toCell(raw string) models.Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return models.Cell{Kind: models.CellEmpty}
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return models.Cell{Kind: models.CellNumber, Number: n}
	}
	return models.Cell{Kind: models.CellText, Text: raw}
}
