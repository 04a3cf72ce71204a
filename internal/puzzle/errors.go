package puzzle

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrUnknownUnit = errors.New("unknown unit")
	ErrParse       = errors.New("parse failure")
)

// ParseError reports input that does not match a unit's grammar.
type ParseError struct {
	Unit string
	Line int // 1-based; 0 when the failure is not tied to a line
	Err  error
}

// Errorf builds a ParseError with a formatted cause.
func Errorf(unit string, line int, format string, args ...any) *ParseError {
	return &ParseError{Unit: unit, Line: line, Err: fmt.Errorf(format, args...)}
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s: %s", e.Unit, ErrParse)
	if e.Line > 0 {
		base += fmt.Sprintf(" (line %d)", e.Line)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is makes errors.Is(err, ErrParse) hold for every ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
