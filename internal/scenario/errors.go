// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/randscenario/internal/distribution"
)

// Sentinels for errors.Is. Every *Error matches exactly one of them.
var (
	ErrEmptyScenario       = errors.New("scenario declares no variables")
	ErrInvalidName         = errors.New("invalid variable name")
	ErrDuplicateVariable   = errors.New("duplicate variable")
	ErrUnknownDistribution = errors.New("unknown distribution")
	ErrInvalidParameters   = errors.New("invalid parameters")
	ErrInvalidSampleCount  = errors.New("invalid sample count")
)

// Error reports why a scenario was rejected.
type Error struct {
	// Kind is one of the Err* sentinels.
	Kind error

	// Variable is the offending variable's name, if it has one.
	Variable string
	// Index is the 1-based declaration position of the variable, or 0 for
	// scenario-level problems.
	Index int
	// Field names the offending parameter, or "samples".
	Field string
	// Tag is the distribution tag as written in the scenario.
	Tag string
	// Location points at the declaration when the loader tracked it.
	Location string

	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("scenario: ")
	switch {
	case e.Variable != "":
		fmt.Fprintf(&b, "variable %q: ", e.Variable)
	case e.Index > 0:
		fmt.Fprintf(&b, "variable #%d: ", e.Index)
	}

	var pe *distribution.ParamError
	switch {
	case errors.As(e.Err, &pe):
		fmt.Fprintf(&b, "invalid %s parameter %q: %s", pe.Kind, pe.Field, pe.Reason)
	case e.Kind == ErrUnknownDistribution && e.Tag != "":
		fmt.Fprintf(&b, "unknown distribution %q", e.Tag)
	default:
		b.WriteString(e.Kind.Error())
		if e.Err != nil {
			fmt.Fprintf(&b, ": %v", e.Err)
		}
	}

	if e.Location != "" {
		fmt.Fprintf(&b, " (%s)", e.Location)
	}
	return b.String()
}

// Is matches the error's Kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the underlying cause, e.g. a *distribution.ParamError.
func (e *Error) Unwrap() error {
	return e.Err
}
