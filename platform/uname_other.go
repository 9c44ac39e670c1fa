//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package platform

import (
	"github.com/cashapp/sysident/errors"
)

func uname() (machine, sysname string, err error) {
	return "", "", errors.Wrap(ErrUnsupported, "uname")
}
