package ingest

import (
	"time"

	"roomledger/internal/config"
	"roomledger/internal/domain/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field names as they appear in error items and the report artifact. The
// column order in the file is fixed: key, name, status, check-in, check-out.
const (
	FieldReservationID = "reservation_id"
	FieldGuestName     = "guest_name"
	FieldStatus        = "status"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
)

// Validator applies the row schema to a normalized row. All rules run on
// every call, so a row with several problems reports all of them together
// instead of stopping at the first.
type Validator struct {
	statuses config.StatusLiterals
}

func NewValidator(statuses config.StatusLiterals) *Validator {
	return &Validator{statuses: statuses}
}

// Validate returns the typed reservation for a valid row, or the ordered,
// non-empty list of violations. Violations follow column order, with the
// cross-field date rule last. The date-order rule is skipped whenever either
// date already failed on its own, so a missing check-in does not cascade
// into a bogus ordering violation.
func (v *Validator) Validate(row models.ReservationRow) (*models.Reservation, []models.ErrorItem) {
	var items []models.ErrorItem
	add := func(code models.ErrorCode, field string) {
		items = append(items, models.ErrorItem{Row: row.Number, Code: code, Field: field})
	}

	// Required and the length cap report under separate codes: an overlong
	// value is present, just not storable.
	if row.Key == "" {
		add(models.ErrCodeMissingField, FieldReservationID)
	} else if err := validation.Validate(row.Key,
		validation.Length(1, config.MaxReservationKeyLength),
	); err != nil {
		add(models.ErrCodeValueTooLong, FieldReservationID)
	}

	if row.GuestName == "" {
		add(models.ErrCodeMissingField, FieldGuestName)
	} else if err := validation.Validate(row.GuestName,
		validation.Length(1, config.MaxGuestNameLength),
	); err != nil {
		add(models.ErrCodeValueTooLong, FieldGuestName)
	}

	if row.Status == "" {
		add(models.ErrCodeMissingField, FieldStatus)
	} else if err := validation.Validate(row.Status,
		validation.In(toAny(v.statuses.Allowed())...),
	); err != nil {
		add(models.ErrCodeInvalidStatus, FieldStatus)
	}

	checkIn, ok := v.validateDate(row.CheckIn, FieldCheckIn, add)
	checkOut, okOut := v.validateDate(row.CheckOut, FieldCheckOut, add)

	// Cross-field rule only when both dates parsed
	if ok && okOut && !checkOut.After(checkIn) {
		add(models.ErrCodeCheckoutOrder, FieldCheckOut)
	}

	if len(items) > 0 {
		return nil, items
	}

	return &models.Reservation{
		Key:       row.Key,
		GuestName: row.GuestName,
		Status:    row.Status,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	}, nil
}

// validateDate reports missing-field for empty values and invalid-date for
// unparseable ones. The returned bool is true only for a usable date.
func (v *Validator) validateDate(value, field string, add func(models.ErrorCode, string)) (time.Time, bool) {
	if value == "" {
		add(models.ErrCodeMissingField, field)
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		add(models.ErrCodeInvalidDate, field)
		return time.Time{}, false
	}
	return t, true
}

func toAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
