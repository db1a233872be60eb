package ggdraw

import (
	"errors"
	"fmt"
	"io"
)

// Errors.
var (
	// ErrNilCause replaces a nil cause handed to one of the Error constructors.
	ErrNilCause = errors.New("ggdraw: nil cause")

	// ErrInvalidArgument reports a malformed caller-supplied argument, such as
	// a zero surface size or a clip without data.
	ErrInvalidArgument = errors.New("ggdraw: invalid argument")

	// ErrAliasedDrawable is returned when a drawing call references the same
	// Drawable twice, as target and pattern or as pattern and mask.
	ErrAliasedDrawable = errors.New("ggdraw: drawable aliased within one call")

	// ErrReleased is returned when the resource behind a Drawable has been
	// closed.
	ErrReleased = errors.New("ggdraw: resource released")

	// ErrUnsupported is matched by every *UnsupportedError.
	ErrUnsupported = errors.New("ggdraw: unsupported")
)

// UnsupportedError reports a composite operation, pattern or clip variant
// that a Drawable cannot honor.
type UnsupportedError struct {
	Feature string // "composite operation", "pattern", "clip"
	Variant string
}

func (e *UnsupportedError) Error() string {
	return "ggdraw: unsupported " + e.Feature + " " + e.Variant
}

// Is reports whether target is ErrUnsupported.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// Error is the error returned by every fallible operation in ggdraw and its
// backends.
//
// An Error holds a cause and an optional message. A public cause is returned
// as is by Unwrap, so callers can match it with [errors.Is] and [errors.As].
// A private cause is stored behind a shim that only forwards its text: the
// concrete type of a private cause is never recoverable.
type Error struct {
	message    string
	hasMessage bool
	cause      error
}

// FromPublicError wraps a cause whose type is part of the public contract.
func FromPublicError(cause error) *Error {
	return &Error{cause: publicCause(cause)}
}

// FromPublicErrorWithMessage is like FromPublicError and attaches message.
func FromPublicErrorWithMessage(cause error, message string) *Error {
	return &Error{message: message, hasMessage: true, cause: publicCause(cause)}
}

// FromError wraps a cause whose type must stay hidden from callers, such as a
// native backend failure.
func FromError(cause error) *Error {
	return &Error{cause: hide(cause)}
}

// FromErrorWithMessage is like FromError and attaches message.
func FromErrorWithMessage(cause error, message string) *Error {
	return &Error{message: message, hasMessage: true, cause: hide(cause)}
}

// WrapError returns nil when err is nil and FromErrorWithMessage(err, message)
// otherwise.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return FromErrorWithMessage(err, message)
}

// WrapPublicError returns nil when err is nil and
// FromPublicErrorWithMessage(err, message) otherwise.
func WrapPublicError(err error, message string) error {
	if err == nil {
		return nil
	}
	return FromPublicErrorWithMessage(err, message)
}

func publicCause(cause error) error {
	if cause == nil {
		return ErrNilCause
	}
	return cause
}

func hide(cause error) error {
	if cause == nil {
		return ErrNilCause
	}
	return hiddenError{err: cause}
}

// Message returns the attached message, if any.
func (e *Error) Message() (string, bool) {
	return e.message, e.hasMessage
}

// reason returns the cause. The zero Error has ErrNilCause.
func (e *Error) reason() error {
	if e.cause == nil {
		return ErrNilCause
	}
	return e.cause
}

// Error renders "message: cause", or just the cause without a message.
func (e *Error) Error() string {
	if e.hasMessage {
		return e.message + ": " + e.reason().Error()
	}
	return e.reason().Error()
}

// Unwrap returns the public cause, or the shim in front of a private cause.
func (e *Error) Unwrap() error {
	return e.reason()
}

// Format implements fmt.Formatter. %+v and %#v print the message and the
// detailed form of the cause; other verbs print Error().
func (e *Error) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') || f.Flag('#') {
			if e.hasMessage {
				fmt.Fprintf(f, "ggdraw.Error{message: %q, cause: %+v}", e.message, e.reason())
			} else {
				fmt.Fprintf(f, "ggdraw.Error{cause: %+v}", e.reason())
			}
			return
		}
		_, _ = io.WriteString(f, e.Error())
	case 's':
		_, _ = io.WriteString(f, e.Error())
	case 'q':
		fmt.Fprintf(f, "%q", e.Error())
	default:
		fmt.Fprintf(f, "%%!%c(*ggdraw.Error=%s)", verb, e.Error())
	}
}

// hiddenError forwards the text of err. It has no Unwrap, Is or As method,
// so the error chain stops here.
type hiddenError struct {
	err error
}

func (h hiddenError) Error() string {
	return h.err.Error()
}

func (h hiddenError) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), h.err)
}
