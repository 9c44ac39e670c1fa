package util

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/cashapp/sysident/errors"
	"github.com/cashapp/sysident/ui"
)

// CommandRunner abstracts how we run commands.
type CommandRunner interface {
	// CaptureWithTimeout runs a command, returning combined stdout and stderr.
	CaptureWithTimeout(ctx context.Context, log ui.Logger, timeout time.Duration, args ...string) ([]byte, error)
}

// RealCommandRunner actually calls commands.
type RealCommandRunner struct{}

var _ CommandRunner = &RealCommandRunner{}

// CaptureWithTimeout implements CommandRunner.
func (*RealCommandRunner) CaptureWithTimeout(ctx context.Context, log ui.Logger, timeout time.Duration, args ...string) ([]byte, error) {
	data, err := CaptureWithTimeout(ctx, log, timeout, args...)
	return data, errors.WithStack(err)
}

// CaptureWithTimeout runs a command, returning combined stdout and stderr.
//
// If the command does not exit within "timeout", or "ctx" is cancelled first,
// the command and every process it spawned are killed before returning.
func CaptureWithTimeout(ctx context.Context, log ui.Logger, timeout time.Duration, args ...string) ([]byte, error) {
	if len(args) == 0 {
		return nil, errors.New("no command given")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(err, "%s not started", shellquote.Join(args...))
	}
	log.Debugf("%s", shellquote.Join(args...))
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	cmd, out := command(ctx, args...)
	err := cmd.Run()
	if errors.Is(err, exec.ErrWaitDelay) {
		// The command exited but something it started still holds the output open.
		if kerr := KillProcessTree(cmd.Process.Pid); kerr != nil {
			log.Debugf("%s: %s", shellquote.Join(args...), kerr)
		}
	}
	if ctx.Err() != nil {
		return out.Bytes(), errors.Wrapf(ctx.Err(), "%s killed", shellquote.Join(args...))
	}
	if err != nil {
		return out.Bytes(), errors.Wrapf(err, "%s: %s", shellquote.Join(args...), strings.TrimSpace(out.String()))
	}
	_, _ = log.WriterAt(ui.LevelTrace).Write(out.Bytes())
	return out.Bytes(), nil
}

// waitDelay bounds how long Wait keeps draining output pipes after the
// process tree has been killed.
const waitDelay = 250 * time.Millisecond

// command constructs a new exec.Cmd whose cancellation kills the whole process tree.
//
// Returns the command, and a *bytes.Buffer receiving the combined stdout and stderr.
func command(ctx context.Context, args ...string) (*exec.Cmd, *bytes.Buffer) {
	b := &bytes.Buffer{}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdout = b
	cmd.Stderr = b
	cmd.WaitDelay = waitDelay
	setProcessGroup(cmd)
	cmd.Cancel = func() error {
		return KillProcessTree(cmd.Process.Pid)
	}
	return cmd, b
}
