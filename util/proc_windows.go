//go:build windows

package util

import (
	"os/exec"
)

func setProcessGroup(cmd *exec.Cmd) {}

// killGroup is a no-op, the descendant walk covers Windows.
func killGroup(pid int) error { return nil }
