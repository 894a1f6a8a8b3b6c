package ingest

import (
	"strconv"
	"strings"
	"time"

	"roomledger/internal/domain/models"
)

// dateLayout is the canonical calendar-date form used everywhere downstream:
// normalization output, validation, suggestions and the persisted record.
const dateLayout = "2006-01-02"

// serialEpoch is the spreadsheet day-serial epoch. Day 1 is 1900-01-01, but
// the epoch sits at 1899-12-30 to absorb the historical Lotus leap-year bug
// (serials pretend 1900 was a leap year).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// NormalizeText converts one raw cell into a canonical string. It never
// fails: shapes it does not understand normalize to the empty string, which
// the validator then reports as a missing field.
func NormalizeText(c models.Cell) string {
	switch c.Kind {
	case models.CellText:
		return strings.TrimSpace(c.Text)
	case models.CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case models.CellBool:
		return strconv.FormatBool(c.Bool)
	case models.CellDate:
		return c.Date.Format(dateLayout)
	case models.CellRichText:
		var b strings.Builder
		for _, run := range c.Runs {
			b.WriteString(run)
		}
		return strings.TrimSpace(b.String())
	default:
		return ""
	}
}

// NormalizeDate converts one raw cell destined for a date column into
// canonical YYYY-MM-DD form. Native date values drop their time-of-day;
// numeric cells are treated as spreadsheet day serials. Anything else falls
// back to the text normalization and is left for the validator to parse.
func NormalizeDate(c models.Cell) string {
	switch c.Kind {
	case models.CellDate:
		return c.Date.Format(dateLayout)
	case models.CellNumber:
		return fromSerial(c.Number).Format(dateLayout)
	default:
		return NormalizeText(c)
	}
}

// fromSerial converts a day serial to a calendar date, discarding the
// fractional time-of-day part.
func fromSerial(serial float64) time.Time {
	return serialEpoch.AddDate(0, 0, int(serial))
}
