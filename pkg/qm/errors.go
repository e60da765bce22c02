package qm

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrFileNotFound = errors.New("output file not found")
)

// UnsupportedProgramError is returned by Create when no backend is
// registered under the requested name. Name carries the original,
// non-normalized spelling for diagnostics.
type UnsupportedProgramError struct {
	Name string
}

func (e *UnsupportedProgramError) Error() string {
	return fmt.Sprintf("unsupported quantum chemistry program: %s", e.Name)
}

// ValidationError reports an extracted result that failed the
// physical-plausibility rules. It is always propagated: returning an
// implausible energy would silently corrupt downstream reporting.
type ValidationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s = %g (%s)", e.Field, e.Value, e.Reason)
}
