// Package errtrack provides typed application errors and an in-memory
// tracker used for error-rate monitoring.
package errtrack

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bizvet/bizvet/pkg/constants"
)

// Error kinds
const (
	// KindValidation marks errors caused by malformed or incomplete input
	KindValidation = "validation"

	// KindConfiguration marks errors caused by invalid configuration
	KindConfiguration = "configuration"

	// KindInternal marks unexpected internal failures
	KindInternal = "internal"
)

// Error codes
const (
	CodeValidation           = "VALIDATION_ERROR"
	CodeMissingFields        = "MISSING_FIELDS"
	CodeTypeValidationFailed = "TYPE_VALIDATION_FAILED"
	CodeUnknownKeys          = "UNKNOWN_KEYS"
	CodeConfiguration        = "CONFIGURATION_ERROR"
	CodeInternal             = "INTERNAL_ERROR"
)

// Error is a typed application error carrying a kind, a machine-readable
// code, and optional structured details.
type Error struct {
	Kind      string
	Code      string
	Message   string
	Details   map[string]any
	Timestamp time.Time
}

// Error returns the human-readable message.
func (e *Error) Error() string {
	return e.Message
}

// New constructs a typed error with the current UTC timestamp.
func New(kind, code, message string, details map[string]any) *Error {
	return &Error{
		Kind:      kind,
		Code:      code,
		Message:   message,
		Details:   details,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidation constructs a validation error.
func NewValidation(code, message string, details map[string]any) *Error {
	if code == "" {
		code = CodeValidation
	}
	return New(KindValidation, code, message, details)
}

// NewConfiguration constructs a configuration error.
func NewConfiguration(message string, details map[string]any) *Error {
	return New(KindConfiguration, CodeConfiguration, message, details)
}

// NewInternal constructs an internal error.
func NewInternal(message string, details map[string]any) *Error {
	return New(KindInternal, CodeInternal, message, details)
}

// AsError extracts a typed *Error from err if one is present in its chain.
func AsError(err error) (*Error, bool) {
	var typed *Error
	if errors.As(err, &typed) {
		return typed, true
	}
	return nil, false
}

// ValidateInput checks that data contains every required key. A nil data map
// or missing keys produce a validation error; extra keys are not an error.
func ValidateInput(data map[string]any, required []string) error {
	if data == nil {
		return NewValidation(CodeValidation, "input data must be a map", nil)
	}

	var missing []string
	for _, field := range required {
		if _, ok := data[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return NewValidation(CodeMissingFields,
			fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")),
			map[string]any{"missing_fields": missing})
	}
	return nil
}

// Record is a single tracked error occurrence.
type Record struct {
	Timestamp time.Time      `json:"timestamp"`
	Kind      string         `json:"kind"`
	Code      string         `json:"code,omitempty"`
	Message   string         `json:"message"`
	Context   map[string]any `json:"context,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

// Summary aggregates recent errors over a time window.
type Summary struct {
	TotalErrors int            `json:"total_errors"`
	ByKind      map[string]int `json:"error_types"`
	Recent      []Record       `json:"recent_errors"`
	WindowHours float64        `json:"time_window_hours"`
}

// Tracker keeps a bounded in-memory history of errors. Safe for concurrent
// use. Nothing is persisted.
type Tracker struct {
	mu         sync.Mutex
	maxRecords int
	records    []Record
}

// NewTracker constructs a tracker holding at most maxRecords entries; a
// non-positive value selects the default capacity.
func NewTracker(maxRecords int) *Tracker {
	if maxRecords <= 0 {
		maxRecords = constants.DefaultMaxTrackedErrors
	}
	return &Tracker{maxRecords: maxRecords}
}

// Record stores an error occurrence with optional caller context. Typed
// errors contribute their kind, code, and details; anything else is
// recorded as internal.
func (t *Tracker) Record(err error, context map[string]any) {
	if err == nil {
		return
	}

	rec := Record{
		Timestamp: time.Now().UTC(),
		Kind:      KindInternal,
		Message:   err.Error(),
		Context:   context,
	}
	if typed, ok := AsError(err); ok {
		rec.Kind = typed.Kind
		rec.Code = typed.Code
		rec.Details = typed.Details
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.records = append(t.records, rec)
	if len(t.records) > t.maxRecords {
		t.records = t.records[len(t.records)-t.maxRecords:]
	}
}

// Summary reports the errors recorded within the past window, counted by
// kind, with the last ten occurrences included verbatim.
func (t *Tracker) Summary(window time.Duration) Summary {
	cutoff := time.Now().UTC().Add(-window)

	t.mu.Lock()
	defer t.mu.Unlock()

	byKind := make(map[string]int)
	recent := make([]Record, 0, len(t.records))
	for _, rec := range t.records {
		if rec.Timestamp.Before(cutoff) {
			continue
		}
		byKind[rec.Kind]++
		recent = append(recent, rec)
	}

	total := len(recent)
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}

	return Summary{
		TotalErrors: total,
		ByKind:      byKind,
		Recent:      recent,
		WindowHours: window.Hours(),
	}
}
