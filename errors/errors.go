// Package errors annotates errors with the source location that raised them.
//
// Locations are only rendered with "%+v", or everywhere when
// SYSIDENT_DEBUG=errortrace is set.
package errors

import (
	"errors" // nolint: depguard
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/cashapp/sysident/util/debug"
)

type located struct {
	msg   string
	cause error
	at    string
}

func (e *located) Error() string { return e.render(debug.Flags.ErrorTrace) }
func (e *located) Unwrap() error { return e.cause }

func (e *located) Format(s fmt.State, verb rune) {
	text := e.render(debug.Flags.ErrorTrace || (verb == 'v' && s.Flag('+')))
	if verb == 'q' {
		fmt.Fprintf(s, "%q", text)
		return
	}
	_, _ = io.WriteString(s, text)
}

// render joins location, message and cause with ": ", skipping empty parts.
func (e *located) render(trace bool) string {
	parts := make([]string, 0, 3)
	if trace {
		parts = append(parts, e.at)
	}
	if e.msg != "" {
		parts = append(parts, e.msg)
	}
	if e.cause != nil {
		if trace {
			parts = append(parts, fmt.Sprintf("%+v", e.cause))
		} else {
			parts = append(parts, e.cause.Error())
		}
	}
	return strings.Join(parts, ": ")
}

// Module root, stripped from recorded file names.
var moduleRoot = func() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(file)) + "/"
}()

// at records the location of the caller of the exported constructor.
func at(cause error, msg string) error {
	_, file, line, _ := runtime.Caller(2)
	return &located{msg: msg, cause: cause, at: strings.TrimPrefix(file, moduleRoot) + ":" + strconv.Itoa(line)}
}

// New creates a new error.
func New(message string) error {
	return at(nil, message)
}

// Errorf creates a new error using fmt.Sprintf().
func Errorf(format string, args ...interface{}) error {
	return at(nil, fmt.Sprintf(format, args...))
}

// Wrap chains a new error to "err" if it is not nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return at(err, message)
}

// Wrapf chains a new fmt.Sprintf() formatted error to "err" if "err" is not nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return at(err, fmt.Sprintf(format, args...))
}

// WithStack records the caller's location on "err" if it is not nil.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	return at(err, "")
}

// Is mirrors the stdlib errors.Is function.
func Is(err, target error) bool { return errors.Is(err, target) }

// As mirrors the stdlib errors.As function.
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Join mirrors the stdlib errors.Join function.
func Join(errs ...error) error { return errors.Join(errs...) }
