// Package system locates per-user files.
package system

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/cashapp/sysident/errors"
)

// UserHomeDir tries to determine the current user's home directory.
func UserHomeDir() (string, error) {
	dir, err := os.UserHomeDir() // nolint: forbidigo
	if err == nil {
		return dir, nil
	}
	if dir = os.Getenv("SYSIDENT_USER_HOME"); dir != "" {
		return dir, nil
	}
	user, err := user.Current()
	if err != nil {
		return "", errors.WithStack(err)
	}
	return user.HomeDir, nil
}

// ExpandHome replaces a leading "~/" in "path" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := UserHomeDir()
	if err != nil {
		return "", errors.Wrapf(err, "could not expand %s", path)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
