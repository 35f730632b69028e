package types

import (
	"errors"
	"fmt"
)

// Standard errors. Callers match them with errors.Is.
var (
	ErrParse        = errors.New("malformed parts list row")
	ErrImport       = errors.New("cannot import parts list")
	ErrArgument     = errors.New("invalid operand")
	ErrConfig       = errors.New("invalid configuration")
	ErrListNotFound = errors.New("parts list not found")
)

// RowError describes a row that could not be turned into a Part.
// It unwraps to ErrParse.
type RowError struct {
	Field string // Column that failed, empty for field-count errors.
	Value string // Offending raw value.
	Msg   string
}

func (e *RowError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s %q: %s", ErrParse, e.Field, e.Value, e.Msg)
	}
	return fmt.Sprintf("%s: %s", ErrParse, e.Msg)
}

// Unwrap returns ErrParse.
func (e *RowError) Unwrap() error {
	return ErrParse
}
