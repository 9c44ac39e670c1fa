package platform

import (
	"github.com/cashapp/sysident/errors"
)

var (
	// ErrUnresolved is returned when the current OS, Arch or Platform cannot
	// be determined from the Properties, either because a signal is missing
	// or because it matches no catalog entry.
	ErrUnresolved = errors.New("unresolved current platform")
	// ErrInvalidIdentifier is returned when an explicit string does not match
	// any canonical id or alias.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrUnsupported is returned when a value has no equivalent in a foreign
	// platform vocabulary (GOOS/GOARCH, OCI).
	ErrUnsupported = errors.New("unsupported")
)
