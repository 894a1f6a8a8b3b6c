package spreadsheet

import (
	"context"
	"testing"

	"roomledger/internal/domain/models"
)

func TestToCell(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want models.Cell
	}{
		{
			name: "empty value",
			raw:  "",
			want: models.Cell{Kind: models.CellEmpty},
		},
		{
			name: "whitespace only",
			raw:  "   ",
			want: models.Cell{Kind: models.CellEmpty},
		},
		{
			name: "plain text",
			raw:  "Alice Smith",
			want: models.Cell{Kind: models.CellText, Text: "Alice Smith"},
		},
		{
			name: "date serial stays numeric for the normalizer",
			raw:  "46023",
			want: models.Cell{Kind: models.CellNumber, Number: 46023},
		},
		{
			name: "serial with time fraction",
			raw:  "46023.5",
			want: models.Cell{Kind: models.CellNumber, Number: 46023.5},
		},
		{
			// Raw boolean cells are stored as "1"/"0"; they classify as
			// numbers like any other numeric literal.
			name: "raw boolean true is numeric",
			raw:  "1",
			want: models.Cell{Kind: models.CellNumber, Number: 1},
		},
		{
			name: "raw boolean false is numeric",
			raw:  "0",
			want: models.Cell{Kind: models.CellNumber, Number: 0},
		},
		{
			name: "boolean-looking text stays text",
			raw:  "TRUE",
			want: models.Cell{Kind: models.CellText, Text: "TRUE"},
		},
		{
			name: "iso date string is text",
			raw:  "2026-03-01",
			want: models.Cell{Kind: models.CellText, Text: "2026-03-01"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := toCell(tt.raw)
			if got.Kind != tt.want.Kind || got.Text != tt.want.Text ||
				got.Number != tt.want.Number || got.Bool != tt.want.Bool {
				t.Errorf("toCell(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestOpenMissingFile(t *testing.T) {
	r := NewExcelReader()
	if _, err := r.Open(context.Background(), "does/not/exist.xlsx"); err == nil {
		t.Fatal("Open() on a missing file must error (pipeline failure path)")
	}
}
