package models

import "time"

// CellKind discriminates the raw shapes a spreadsheet cell can take before
// normalization.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
	CellBool
	CellDate
	CellRichText
)

// Cell is one raw spreadsheet cell. Only the field matching Kind is
// meaningful; everything else is zero.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Bool   bool
	Date   time.Time
	Runs   []string // rich text runs, concatenated by the normalizer
}

// Row is one raw spreadsheet row with indexed cell access. Number is 1-based
// and counts the header row.
type Row struct {
	Number int
	Cells  []Cell
}

// Cell returns the cell at index i, or an empty cell when the row is shorter.
func (r Row) Cell(i int) Cell {
	if i < len(r.Cells) {
		return r.Cells[i]
	}
	return Cell{}
}
