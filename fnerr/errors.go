// Package fnerr defines the error taxonomy shared by the galaseq packages.
package fnerr

import (
	"fmt"
	"strings"
)

// ErrorType defines the category of the error.
type ErrorType string

const (
	TypeEmptyOptional   ErrorType = "EmptyOptionalError"
	TypeNoMatch         ErrorType = "NoMatchError"
	TypePrecondition    ErrorType = "PreconditionError"
	TypePostcondition   ErrorType = "PostconditionError"
	TypeAssertion       ErrorType = "AssertionError"
	TypeInvalidArgument ErrorType = "InvalidArgumentError"
)

// FnError is the interface for all galaseq errors.
type FnError interface {
	error
	Type() ErrorType
}

// BaseError provides common fields for galaseq errors.
type BaseError struct {
	Msg     string
	ErrType ErrorType
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

func (e *BaseError) Type() ErrorType {
	return e.ErrType
}

// Is reports whether target is an FnError of the same type, so that
// errors.Is(err, ErrNoMatch) holds for every no-match error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(FnError)
	return ok && t.Type() == e.ErrType
}

var (
	// ErrEmptyOptional is returned when a value is extracted from an empty optional.
	ErrEmptyOptional = &BaseError{Msg: "empty optional", ErrType: TypeEmptyOptional}
	// ErrNoMatch is returned when no case of a match accepts the value.
	ErrNoMatch = &BaseError{Msg: "no match", ErrType: TypeNoMatch}
)

// MatchError reports the value a match failed on.
type MatchError struct {
	BaseError
	Value any
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("[%s] %s for %v", e.ErrType, e.Msg, e.Value)
}

// ConditionError represents a failed precondition, postcondition or value check.
type ConditionError struct {
	BaseError
	Name     string
	Expected string
	Actual   string
}

func (e *ConditionError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("[%s] expected = %s; actual = %s", e.ErrType, e.Expected, e.Actual)
	}
	return fmt.Sprintf("[%s] %s: expected = %s; actual = %s", e.ErrType, e.Name, e.Expected, e.Actual)
}

// MultiError collects multiple errors.
type MultiError struct {
	Errors []error
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s) occurred:\n", len(m.Errors)))
	for _, err := range m.Errors {
		sb.WriteString(fmt.Sprintf("- %v\n", err))
	}
	return sb.String()
}

func (m *MultiError) Type() ErrorType {
	if len(m.Errors) > 0 {
		if fe, ok := m.Errors[0].(FnError); ok {
			return fe.Type()
		}
	}
	return "MultiError"
}

// Unwrap exposes the collected errors to errors.Is and errors.As.
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// ErrorOrNil returns nil when nothing was collected.
func (m *MultiError) ErrorOrNil() error {
	if m == nil || len(m.Errors) == 0 {
		return nil
	}
	return m
}

// New creates a BaseError of the given type.
func New(t ErrorType, msg string) *BaseError {
	return &BaseError{Msg: msg, ErrType: t}
}

// Newf creates a BaseError of the given type with a formatted message.
func Newf(t ErrorType, format string, args ...any) *BaseError {
	return New(t, fmt.Sprintf(format, args...))
}

// NewMatchError creates a MatchError for value.
func NewMatchError(value any) *MatchError {
	return &MatchError{
		BaseError: BaseError{
			Msg:     ErrNoMatch.Msg,
			ErrType: TypeNoMatch,
		},
		Value: value,
	}
}

// NewConditionError creates a ConditionError of the given type.
func NewConditionError(t ErrorType, name, expected, actual string) *ConditionError {
	return &ConditionError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf("expected = %s; actual = %s", expected, actual),
			ErrType: t,
		},
		Name:     name,
		Expected: expected,
		Actual:   actual,
	}
}

// InvalidArgument panics with an InvalidArgumentError. It is used for
// precondition violations in library APIs, which are never recovered.
func InvalidArgument(format string, args ...any) {
	panic(Newf(TypeInvalidArgument, format, args...))
}
