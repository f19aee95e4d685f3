package assistant

import (
	"errors"
	"fmt"
)

// ErrorKind classifies pipeline failures for the presentation layer.
type ErrorKind string

const (
	KindConfig            ErrorKind = "config_error"
	KindNLUService        ErrorKind = "nlu_service_error"
	KindMalformedResponse ErrorKind = "malformed_response_error"
)

// Error is a pipeline failure tagged with its kind.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError tags err with kind. A nil err stays nil.
func NewError(kind ErrorKind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the kind of err. Untagged errors count as NLU service failures.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNLUService
}

// Detail returns the message of err without its kind tag.
func Detail(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Err != nil {
		return e.Err.Error()
	}
	return err.Error()
}
