package errors

import (
	"fmt"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLineAndFormatting(t *testing.T) {
	err := New("unknown architecture")
	wrapErr := Wrap(err, "current platform")
	assert.Equal(t, `unknown architecture`, fmt.Sprintf("%s", err))
	assert.Equal(t, `"unknown architecture"`, fmt.Sprintf("%q", err))
	assert.Equal(t, `errors/errors_test.go:11: unknown architecture`, fmt.Sprintf("%+v", err))
	assert.Equal(t, `current platform: unknown architecture`, fmt.Sprintf("%s", wrapErr))
	assert.Equal(t, `errors/errors_test.go:12: current platform: errors/errors_test.go:11: unknown architecture`, fmt.Sprintf("%+v", wrapErr))
}

func TestWrapPreservesSentinel(t *testing.T) {
	sentinel := New("invalid identifier")
	err := Wrapf(sentinel, "unknown operating system %q", "PSP")
	assert.True(t, Is(err, sentinel))
	assert.Equal(t, `unknown operating system "PSP": invalid identifier`, err.Error())
	assert.NoError(t, Wrap(nil, "nothing"))
	assert.NoError(t, WithStack(nil))
}

func TestWithExitCode(t *testing.T) {
	cause := New("musl not detected")
	err := WithExitCode(cause, 1)
	var coded *Error
	assert.True(t, As(err, &coded))
	assert.Equal(t, 1, coded.ExitCode())
	assert.Equal(t, "musl not detected", err.Error())
	assert.True(t, Is(err, cause))
	assert.False(t, Silent(err))
	assert.NoError(t, WithExitCode(nil, 1))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(New("boom")))
	assert.Equal(t, 3, ExitCode(Wrap(WithExitCode(New("boom"), 3), "wrapped")))
	assert.Equal(t, 2, ExitCode(WithStack(Exit(2))))
}

func TestExitIsSilent(t *testing.T) {
	err := Exit(1)
	assert.True(t, Silent(err))
	assert.True(t, Silent(Wrap(err, "musl")))
	assert.Equal(t, "exit status 1", err.Error())
	assert.False(t, Silent(New("boom")))
}

func TestWithStackKeepsMessage(t *testing.T) {
	err := WithStack(New("unresolved"))
	assert.Equal(t, "unresolved", err.Error())
	assert.Equal(t, `errors/errors_test.go:57: errors/errors_test.go:57: unresolved`, fmt.Sprintf("%+v", err))
}
