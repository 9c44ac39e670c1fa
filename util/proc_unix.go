//go:build !windows

package util

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/cashapp/sysident/errors"
)

func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killGroup kills the process group led by "pid".
func killGroup(pid int) error {
	err := unix.Kill(-pid, unix.SIGKILL)
	if err == unix.ESRCH {
		return nil
	}
	return errors.WithStack(err)
}
