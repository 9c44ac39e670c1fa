//go:build !windows

package util

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/cashapp/sysident/errors"
	"github.com/cashapp/sysident/ui"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0700) // nolint: gosec
	require.NoError(t, err)
	return path
}

func TestCaptureWithTimeoutCombinesOutput(t *testing.T) {
	log, buf := ui.NewForTesting()
	script := writeScript(t, "echo out\necho err >&2")
	out, err := CaptureWithTimeout(context.Background(), log, 5*time.Second, script, "--version")
	require.NoError(t, err)
	require.Equal(t, "out\nerr\n", string(out))
	require.Contains(t, buf.String(), "debug: "+script+" --version")
}

func TestCaptureWithTimeoutReportsFailure(t *testing.T) {
	log, _ := ui.NewForTesting()
	script := writeScript(t, "echo broken >&2\nexit 3")
	out, err := CaptureWithTimeout(context.Background(), log, 5*time.Second, script)
	require.Error(t, err)
	require.Equal(t, "broken\n", string(out))
	require.Contains(t, err.Error(), "broken")
}

func TestCaptureWithTimeoutMissingExecutable(t *testing.T) {
	log, _ := ui.NewForTesting()
	_, err := CaptureWithTimeout(context.Background(), log, time.Second, "/non/existing/path")
	require.Error(t, err)
	_, err = CaptureWithTimeout(context.Background(), log, time.Second, "/\x00-NUL-is-never-allowed-in-any-path")
	require.Error(t, err)
	_, err = CaptureWithTimeout(context.Background(), log, time.Second)
	require.Error(t, err)
}

func TestCaptureWithTimeoutCancelledBeforeStart(t *testing.T) {
	log, buf := ui.NewForTesting()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	marker := filepath.Join(t.TempDir(), "started")
	script := writeScript(t, "touch "+marker)
	_, err := CaptureWithTimeout(ctx, log, time.Second, script)
	require.True(t, errors.Is(err, context.Canceled))
	require.NoFileExists(t, marker)
	require.Empty(t, buf.String())
	require.Error(t, ctx.Err())
}

func TestCaptureWithTimeoutKillsProcessTree(t *testing.T) {
	log, _ := ui.NewForTesting()
	pidFile := filepath.Join(t.TempDir(), "pid")
	script := writeScript(t, "sleep 60 &\necho $! > "+pidFile+"\nwait")
	start := time.Now()
	_, err := CaptureWithTimeout(context.Background(), log, 500*time.Millisecond, script)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
	require.Less(t, time.Since(start), 5*time.Second)

	data, err := os.ReadFile(pidFile)
	require.NoError(t, err)
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return !alive(pid)
	}, 5*time.Second, 50*time.Millisecond, "grandchild %d still running", pid)
}

// alive treats zombies as dead, an unreaped orphan is not running.
func alive(pid int) bool {
	if unix.Kill(pid, 0) == unix.ESRCH {
		return false
	}
	stat, err := os.ReadFile(filepath.Join("/proc", strconv.Itoa(pid), "stat"))
	if err != nil {
		return true
	}
	fields := strings.Fields(string(stat[strings.LastIndexByte(string(stat), ')')+1:]))
	return len(fields) == 0 || fields[0] != "Z"
}

func TestDescendants(t *testing.T) {
	descendants, err := Descendants(os.Getpid())
	require.NoError(t, err)
	require.NotContains(t, descendants, os.Getpid())
}

func TestCaptureWithTimeoutKillsLeftoverChildren(t *testing.T) {
	log, _ := ui.NewForTesting()
	pidFile := filepath.Join(t.TempDir(), "pid")
	script := writeScript(t, "sleep 60 &\necho $! > "+pidFile+"\necho done")
	start := time.Now()
	out, err := CaptureWithTimeout(context.Background(), log, 10*time.Second, script)
	require.True(t, errors.Is(err, exec.ErrWaitDelay), "%v", err)
	require.Less(t, time.Since(start), 5*time.Second)
	require.Equal(t, "done\n", string(out))

	data, err := os.ReadFile(pidFile)
	require.NoError(t, err)
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		return !alive(pid)
	}, 5*time.Second, 50*time.Millisecond, "leftover child %d still running", pid)
}
