package platform

import (
	"sort"
	"strings"

	"github.com/cashapp/sysident/errors"
)

// Platform describes a system by its operating system and CPU architecture.
//
// Platforms are comparable with == and usable as map keys. Their identity is
// the canonical id "<os>-<arch>", eg. linux-x86-64.
type Platform struct {
	os   OS
	arch Arch
}

// New composes a Platform.
func New(os OS, arch Arch) Platform {
	return Platform{os: os, arch: arch}
}

// Platforms returns every OS and Arch combination, sorted by id.
func Platforms() []Platform {
	out := make([]Platform, 0, len(oses)*len(archs))
	for _, os := range oses {
		for _, arch := range archs {
			out = append(out, New(os, arch))
		}
	}
	Sort(out)
	return out
}

// Current resolves the platform from "props". Both the OS and the Arch must
// resolve.
func Current(props Properties) (Platform, error) {
	os, err := CurrentOS(props)
	if err != nil {
		return Platform{}, errors.WithStack(err)
	}
	arch, err := CurrentArch(props)
	if err != nil {
		return Platform{}, errors.WithStack(err)
	}
	return New(os, arch), nil
}

// CurrentOK is like Current but reports failure as false.
func CurrentOK(props Properties) (Platform, bool) {
	p, err := Current(props)
	return p, err == nil
}

// FromString parses a canonical platform id, eg. darwin-arm-64.
//
// Both halves must be canonical ids, see OSFromString and ArchFromString.
func FromString(s string) (Platform, error) {
	return split(s, OSFromStringOK, ArchFromStringOK)
}

// FromStringOK is like FromString but reports failure as false.
func FromStringOK(s string) (Platform, bool) {
	p, err := FromString(s)
	return p, err == nil
}

// Parse a platform identifier, where each half may be an id, name or alias
// accepted by ParseOS and ParseArch respectively.
func Parse(s string) (Platform, error) {
	return split(s, ParseOSOK, ParseArchOK)
}

// ParseOK is like Parse but reports failure as false.
func ParseOK(s string) (Platform, bool) {
	p, err := Parse(s)
	return p, err == nil
}

// split tries every dash in "s" as the boundary between the OS and the Arch.
// Exactly one distinct platform must result.
func split(s string, parseOS func(string) (OS, bool), parseArch func(string) (Arch, bool)) (Platform, error) {
	var (
		found   Platform
		matched bool
	)
	for i := 0; i < len(s); i++ {
		if s[i] != '-' {
			continue
		}
		os, ok := parseOS(s[:i])
		if !ok {
			continue
		}
		arch, ok := parseArch(s[i+1:])
		if !ok {
			continue
		}
		p := New(os, arch)
		if matched && p != found {
			return Platform{}, errors.Wrapf(ErrInvalidIdentifier, "ambiguous platform %q could be %s or %s", s, found, p)
		}
		found, matched = p, true
	}
	if !matched {
		return Platform{}, errors.Wrapf(ErrInvalidIdentifier, "unknown platform %q", s)
	}
	return found, nil
}

// OS of the platform.
func (p Platform) OS() OS { return p.os }

// Arch of the platform.
func (p Platform) Arch() Arch { return p.arch }

// ID is the canonical identifier, eg. linux-arm-32-be.
func (p Platform) ID() string {
	return p.os.ID() + "-" + p.arch.ID()
}

func (p Platform) String() string {
	if !p.valid() {
		return "Platform(" + p.os.String() + ", " + p.arch.String() + ")"
	}
	return p.ID()
}

func (p Platform) valid() bool { return p.os.valid() && p.arch.valid() }

// Equal returns true if both platforms have the same id.
func (p Platform) Equal(o Platform) bool { return p == o }

// Compare platforms lexicographically by id.
func (p Platform) Compare(o Platform) int {
	return strings.Compare(p.ID(), o.ID())
}

// Less orders platforms lexicographically by id.
func (p Platform) Less(o Platform) bool { return p.Compare(o) < 0 }

// Sort platforms by id.
func Sort(platforms []Platform) {
	sort.Slice(platforms, func(i, j int) bool {
		return platforms[i].Less(platforms[j])
	})
}

// MarshalText encodes the canonical id.
func (p Platform) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, errors.Wrapf(ErrInvalidIdentifier, "%s", p)
	}
	return []byte(p.ID()), nil
}

// UnmarshalText accepts only canonical ids.
func (p *Platform) UnmarshalText(text []byte) error {
	platform, err := FromString(string(text))
	if err != nil {
		return err
	}
	*p = platform
	return nil
}
