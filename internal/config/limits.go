package config

const (
	// MaxUploadBytes caps the multipart upload size. Reservation sheets
	// are small; 32 MiB leaves ample headroom while keeping memory for
	// the multipart parser bounded.
	MaxUploadBytes = 32 << 20

	// MaxGuestNameLength is the maximum length for guest names.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255).
	MaxGuestNameLength = 255

	// MaxReservationKeyLength is the maximum length for reservation keys.
	// Same bound as guest names for consistency.
	MaxReservationKeyLength = 255

	// ProgressInterval is the number of processed rows between progress
	// events emitted by the orchestrator.
	ProgressInterval = 100
)
