package ai

import (
	"errors"
	"fmt"
)

// Kind classifies why a generation fell back.
type Kind string

const (
	KindEmptyInput Kind = "empty_input"
	KindTransport  Kind = "transport"
	KindParse      Kind = "parse"
)

var (
	ErrEmptyInput      = errors.New("no input provided")
	ErrEmptyCompletion = errors.New("empty completion")
)

// Error records the failure behind a fallback payload.
// Err is the cause whose message is spoken back to the user.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Detail is the cause message without the kind prefix.
func (e *Error) Detail() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return e.Err.Error()
}

// KindOf returns the Kind of err, or "" when err is not a generation error.
func KindOf(err error) Kind {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return ""
}
