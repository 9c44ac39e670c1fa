package errors

import "strconv"

// Error carries the process exit status a command should terminate with.
type Error struct {
	err    error
	code   int
	silent bool
}

// WithExitCode attaches an exit status to "err".
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &Error{err: err, code: code}
}

// Exit ends a command with "code" without reporting anything.
func Exit(code int) error {
	return &Error{err: at(nil, "exit status "+strconv.Itoa(code)), code: code, silent: true}
}

func (e *Error) ExitCode() int { return e.code }
func (e *Error) Error() string { return e.err.Error() }
func (e *Error) Unwrap() error { return e.err }

// ExitCode is the status carried by "err", 1 if it carries none and 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coded *Error
	if As(err, &coded) {
		return coded.code
	}
	return 1
}

// Silent returns true if "err" only sets the exit status and should not be logged.
func Silent(err error) bool {
	var coded *Error
	return As(err, &coded) && coded.silent
}
