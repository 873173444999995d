package parse

import (
	"errors"
	"fmt"
	"strings"
)

var ErrParse = errors.New("parse error")

// Error reports the offending input line. Err always wraps ErrParse.
type Error struct {
	Err  error
	File string
	Line int
	Raw  string
}

func (e *Error) Error() string {
	loc := fmt.Sprintf("line %d", e.Line)
	if e.File != "" {
		loc = fmt.Sprintf("%s:%d", e.File, e.Line)
	}
	return fmt.Sprintf("%v: %s: %q", e.Err, loc, strings.TrimRight(e.Raw, "\n"))
}

func (e *Error) Unwrap() error { return e.Err }

func newError(err error, file string, line int, raw string) *Error {
	return &Error{
		Err:  fmt.Errorf("%w: %w", ErrParse, err),
		File: file,
		Line: line,
		Raw:  raw,
	}
}
