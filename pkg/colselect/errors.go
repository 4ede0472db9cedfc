package colselect

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates the input path is not a supported spreadsheet.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

// ErrIO indicates a workbook could not be read or written.
var ErrIO = errors.New("i/o error")

// ErrNoSelection indicates a projection was requested with no columns.
var ErrNoSelection = errors.New("no columns selected")

// Kind classifies an Error.
type Kind int

const (
	KindIO Kind = iota
	KindInvalidFormat
	KindNoSelection
)

func (k Kind) String() string {
	switch k {
	case KindInvalidFormat:
		return "InvalidFormat"
	case KindNoSelection:
		return "NoSelection"
	default:
		return "IOError"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidFormat:
		return ErrInvalidFormat
	case KindNoSelection:
		return ErrNoSelection
	default:
		return ErrIO
	}
}

// Error represents a failed operation.
type Error struct {
	Kind Kind
	Op   string // "list_columns", "load", "project", "write"
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// KindOf returns the kind of err, or false if err is not an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func newError(kind Kind, op, path string, err error) *Error {
	return &Error{
		Kind: kind,
		Op:   op,
		Path: path,
		Err:  err,
	}
}
