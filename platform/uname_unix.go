//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package platform

import (
	"golang.org/x/sys/unix"

	"github.com/cashapp/sysident/errors"
)

// uname returns the machine hardware name (x86_64, aarch64, ...) and the
// kernel name (Linux, Darwin, ...) of the running system.
func uname() (machine, sysname string, err error) {
	utsname := &unix.Utsname{}
	if err := unix.Uname(utsname); err != nil {
		return "", "", errors.Wrap(err, "uname")
	}
	return unix.ByteSliceToString(utsname.Machine[:]), unix.ByteSliceToString(utsname.Sysname[:]), nil
}
