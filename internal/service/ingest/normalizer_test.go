package ingest

import (
	"testing"
	"time"

	"roomledger/internal/domain/models"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		cell models.Cell
		want string
	}{
		{
			name: "empty cell",
			cell: models.Cell{Kind: models.CellEmpty},
			want: "",
		},
		{
			name: "plain string is trimmed",
			cell: models.Cell{Kind: models.CellText, Text: "  Alice Smith  "},
			want: "Alice Smith",
		},
		{
			name: "integer number",
			cell: models.Cell{Kind: models.CellNumber, Number: 12345},
			want: "12345",
		},
		{
			name: "fractional number keeps minimal form",
			cell: models.Cell{Kind: models.CellNumber, Number: 1.5},
			want: "1.5",
		},
		{
			name: "boolean",
			cell: models.Cell{Kind: models.CellBool, Bool: true},
			want: "true",
		},
		{
			name: "native date formats as calendar date",
			cell: models.Cell{Kind: models.CellDate, Date: time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)},
			want: "2026-03-14",
		},
		{
			name: "rich text concatenates runs",
			cell: models.Cell{Kind: models.CellRichText, Runs: []string{"Bob ", "the ", "Guest"}},
			want: "Bob the Guest",
		},
		{
			name: "rich text with no runs",
			cell: models.Cell{Kind: models.CellRichText},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.cell); got != tt.want {
				t.Errorf("NormalizeText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		cell models.Cell
		want string
	}{
		{
			name: "native date drops time of day",
			cell: models.Cell{Kind: models.CellDate, Date: time.Date(2026, 1, 2, 23, 59, 0, 0, time.UTC)},
			want: "2026-01-02",
		},
		{
			// Serial 1 is 1900-01-01 against the 1899-12-30 epoch,
			// which already bakes in the Lotus leap-year offset.
			name: "day serial 1",
			cell: models.Cell{Kind: models.CellNumber, Number: 1},
			want: "1899-12-31",
		},
		{
			name: "day serial 60 (phantom 1900-02-29 slot)",
			cell: models.Cell{Kind: models.CellNumber, Number: 60},
			want: "1900-02-28",
		},
		{
			name: "modern day serial",
			cell: models.Cell{Kind: models.CellNumber, Number: 46023},
			want: "2026-01-01",
		},
		{
			name: "serial with fractional time discards time",
			cell: models.Cell{Kind: models.CellNumber, Number: 46023.75},
			want: "2026-01-01",
		},
		{
			name: "text date passes through for validation",
			cell: models.Cell{Kind: models.CellText, Text: " 2026-02-10 "},
			want: "2026-02-10",
		},
		{
			name: "garbage text passes through untouched",
			cell: models.Cell{Kind: models.CellText, Text: "next tuesday"},
			want: "next tuesday",
		},
		{
			name: "empty cell",
			cell: models.Cell{Kind: models.CellEmpty},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDate(tt.cell); got != tt.want {
				t.Errorf("NormalizeDate() = %q, want %q", got, tt.want)
			}
		})
	}
}
