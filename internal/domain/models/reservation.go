package models

import "time"

// Reservation is the durable business record, keyed uniquely by reservation
// key. Status holds one of the configured canonical literals (by default
// pending, completed, cancelled).
type Reservation struct {
	Key       string    `json:"reservation_id"`
	GuestName string    `json:"guest_name"`
	Status    string    `json:"status"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReservationRow is one parsed, normalized spreadsheet row prior to
// validation. All fields are canonical strings as produced by the cell
// normalizer; dates are in YYYY-MM-DD form when the source cell was a date.
// The value only lives for the duration of processing one row.
type ReservationRow struct {
	Number    int // 1-based row number in the file, header included
	Key       string
	GuestName string
	Status    string
	CheckIn   string
	CheckOut  string
}
