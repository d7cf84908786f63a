package sequence

import (
	"errors"
	"fmt"
)

// Kind is the machine-readable category of a rejected request
type Kind string

const (
	KindInvalidInput     Kind = "invalid_input"
	KindNonPositiveCount Kind = "non_positive_count"
	KindInvertedRange    Kind = "inverted_range"
	KindRangeTooSmall    Kind = "range_too_small"
	KindInvalidMode      Kind = "invalid_mode"
	KindCountTooLarge    Kind = "count_limit_exceeded"
	KindUnexpected       Kind = "unexpected"
)

var (
	ErrInvalidInput     = &Error{Kind: KindInvalidInput}
	ErrNonPositiveCount = &Error{Kind: KindNonPositiveCount}
	ErrInvertedRange    = &Error{Kind: KindInvertedRange}
	ErrRangeTooSmall    = &Error{Kind: KindRangeTooSmall}
	ErrInvalidMode      = &Error{Kind: KindInvalidMode}
	ErrCountTooLarge    = &Error{Kind: KindCountTooLarge}
)

// Error is returned for every rejected request. Message is safe to show to users.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}

	return e.Message
}

// Is matches any *Error of the same kind, so the Err* values work with errors.Is
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Kind == e.Kind
}

// KindOf returns the kind of err; errors not produced by this package are unexpected
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnexpected
}

func invalidInput(field, value string) *Error {
	return &Error{
		Kind:    KindInvalidInput,
		Message: fmt.Sprintf("invalid input: %s must be an integer, got %q", field, value),
	}
}

func nonPositiveCount(count int64) *Error {
	return &Error{
		Kind:    KindNonPositiveCount,
		Message: fmt.Sprintf("count must be greater than 0, got %d", count),
	}
}

func invertedRange(min, max int64) *Error {
	return &Error{
		Kind:    KindInvertedRange,
		Message: fmt.Sprintf("minimum value %d must not be greater than maximum value %d", min, max),
	}
}

func rangeTooSmall(count, min, max int64) *Error {
	return &Error{
		Kind:    KindRangeTooSmall,
		Message: fmt.Sprintf("cannot generate %d unique numbers in range %d-%d: range too small", count, min, max),
	}
}

func invalidMode(mode Mode) *Error {
	return &Error{
		Kind:    KindInvalidMode,
		Message: fmt.Sprintf("invalid duplicate option %q", string(mode)),
	}
}

func countTooLarge(count, limit int64) *Error {
	return &Error{
		Kind:    KindCountTooLarge,
		Message: fmt.Sprintf("count %d exceeds the limit of %d values per request", count, limit),
	}
}
