package models

// ErrorCode classifies one row-level or file-level diagnostic.
type ErrorCode string

const (
	ErrCodeMissingField  ErrorCode = "missing-field"
	ErrCodeValueTooLong  ErrorCode = "value-too-long"
	ErrCodeInvalidDate   ErrorCode = "invalid-date"
	ErrCodeInvalidStatus ErrorCode = "invalid-status"
	ErrCodeCheckoutOrder ErrorCode = "checkout-before-checkin"
	ErrCodeDuplicate     ErrorCode = "duplicate"
	ErrCodeUnknown       ErrorCode = "unknown"
)

// ErrorItem is one structured diagnostic tied to a row, or to the whole file
// when Row is 0. For duplicate errors, Field carries the offending
// reservation key rather than a column name. Message is only set for
// unclassified (unknown) errors.
type ErrorItem struct {
	Row     int       `json:"row"`
	Code    ErrorCode `json:"code"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"message,omitempty"`
}

// ReportEntry is the user-facing rendering of one ErrorItem as it appears in
// the persisted report artifact.
type ReportEntry struct {
	Row        int       `json:"row"`
	Code       ErrorCode `json:"code"`
	Field      string    `json:"field,omitempty"`
	Reason     string    `json:"reason"`
	Suggestion string    `json:"suggestion"`
}
