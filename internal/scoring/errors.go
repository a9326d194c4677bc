package scoring

import "fmt"

// Validation error kinds. Language-neutral identifiers; the presentation
// layer owns any user-facing translation.
const (
	ErrKindNegative     = "negative"
	ErrKindOutOfRange   = "out_of_range"
	ErrKindUnknownValue = "unknown_value"
	ErrKindMissing      = "missing"
)

// ValidationError reports a rejected input value with the offending field
// and a stable error kind.
type ValidationError struct {
	Field string `json:"field"`
	Kind  string `json:"kind"`
	Value any    `json:"value,omitempty"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s (got %v)", e.Field, e.Kind, e.Value)
}

func errNegative(field string, value any) error {
	return &ValidationError{Field: field, Kind: ErrKindNegative, Value: value}
}

func errOutOfRange(field string, value any) error {
	return &ValidationError{Field: field, Kind: ErrKindOutOfRange, Value: value}
}

func errUnknownValue(field string, value any) error {
	return &ValidationError{Field: field, Kind: ErrKindUnknownValue, Value: value}
}
