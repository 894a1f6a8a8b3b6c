package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StatusLiterals holds the concrete strings accepted for the reservation
// status column. The pipeline only cares about three canonical states; the
// literal spelling is a localization concern, so deployments can override the
// defaults with a small YAML file. The same literals are used in validation
// and in user-facing suggestions, end to end.
type StatusLiterals struct {
	Pending   string `yaml:"pending"`
	Completed string `yaml:"completed"`
	Cancelled string `yaml:"cancelled"`
}

// DefaultStatusLiterals returns the canonical English literal set.
func DefaultStatusLiterals() StatusLiterals {
	return StatusLiterals{
		Pending:   "pending",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// LoadStatusLiterals reads literal overrides from a YAML file. An empty path
// or a missing file yields the defaults; a present-but-broken file also falls
// back to defaults rather than taking the worker down over a presentation
// concern.
func LoadStatusLiterals(path string) StatusLiterals {
	literals := DefaultStatusLiterals()
	if path == "" {
		return literals
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: status literals file %s: %v\n", path, err)
		return DefaultStatusLiterals()
	}

	if err := yaml.Unmarshal(data, &literals); err != nil {
		fmt.Fprintf(os.Stderr, "warning: parse status literals %s: %v\n", path, err)
		return DefaultStatusLiterals()
	}

	// Partial overrides keep defaults for the untouched states
	defaults := DefaultStatusLiterals()
	if literals.Pending == "" {
		literals.Pending = defaults.Pending
	}
	if literals.Completed == "" {
		literals.Completed = defaults.Completed
	}
	if literals.Cancelled == "" {
		literals.Cancelled = defaults.Cancelled
	}
	return literals
}

// Allowed returns the full literal set in presentation order.
func (s StatusLiterals) Allowed() []string {
	return []string{s.Pending, s.Completed, s.Cancelled}
}

// Terminal reports whether the literal names a completed or cancelled
// reservation. Terminal rows never originate a record (business rule).
func (s StatusLiterals) Terminal(status string) bool {
	return status == s.Completed || status == s.Cancelled
}
