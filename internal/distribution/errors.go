package distribution

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind is returned for a tag that names no distribution.
	ErrUnknownKind = errors.New("unknown distribution")

	// ErrInvalidParameters matches every *ParamError via errors.Is.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrNoEntropy is returned when Sample is called without a source.
	ErrNoEntropy = errors.New("no entropy source")
)

// ParamError reports a parameter that is missing, unknown, mistyped or out
// of its domain.
type ParamError struct {
	Kind   Kind
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ParamError) Error() string {
	return fmt.Sprintf("invalid parameters for %s distribution: %q %s", e.Kind, e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidParameters) hold.
func (e *ParamError) Is(target error) bool {
	return target == ErrInvalidParameters
}

func paramErr(kind Kind, field, format string, args ...any) *ParamError {
	return &ParamError{Kind: kind, Field: field, Reason: fmt.Sprintf(format, args...)}
}
