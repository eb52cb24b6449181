package xopt

import "fmt"

// CombineError is returned when a token combines multiple short options
// while NoCondense forbids it.
type CombineError struct {
	Token string
}

func (e *CombineError) Error() string {
	return fmt.Sprintf("short options cannot be combined: %s", e.Token)
}

// UnknownOptionError is returned in Strict mode when an option has no table
// entry. Option includes the leading dash(es), e.g. "-z" or "--zap".
type UnknownOptionError struct {
	Option string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Option)
}

// MissingValueError is returned when a value-requiring option is the last
// token in the argument vector and no value follows it.
type MissingValueError struct {
	Option string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("missing option value: %s", e.Option)
}

// CombinedValueError is returned when a value-requiring short option appears
// anywhere but last in a combined token such as -ov.
type CombinedValueError struct {
	Option string
}

func (e *CombinedValueError) Error() string {
	return fmt.Sprintf("combined short option requiring value not last: %s", e.Option)
}

// OrderingError is returned under StrictOrdering when an option token
// appears after a positional argument has already been captured.
type OrderingError struct {
	Token string
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("options cannot be specified after arguments: %s", e.Token)
}

// ValueError wraps a failure to assign an option's value to its destination
// field. It unwraps to the underlying conversion error.
type ValueError struct {
	Option string
	Value  string
	Err    error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value for %s: %v", e.Option, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
