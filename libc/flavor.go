// Package libc identifies the C standard library of the running system.
package libc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cashapp/sysident/errors"
	"github.com/cashapp/sysident/platform"
)

// Flavor of C standard library.
type Flavor int

// Known flavors. Unknown is the zero value.
const (
	Unknown Flavor = iota
	Bionic
	BSDLibc
	DietLibc
	GLibc
	KLibc
	MSVC
	Musl
	Newlib
	UCLibc
)

var flavorNames = [...]string{
	Unknown:  "UNKNOWN",
	Bionic:   "BIONIC",
	BSDLibc:  "BSDLIBC",
	DietLibc: "DIETLIBC",
	GLibc:    "GLIBC",
	KLibc:    "KLIBC",
	MSVC:     "MSVC",
	Musl:     "MUSL",
	Newlib:   "NEWLIB",
	UCLibc:   "UCLIBC",
}

// Flavors returns every known flavor except Unknown.
func Flavors() []Flavor {
	out := make([]Flavor, 0, len(flavorNames)-1)
	for f := Bionic; f <= UCLibc; f++ {
		out = append(out, f)
	}
	return out
}

var (
	gnuRe  = regexp.MustCompile(`g(cc|nu)`)
	bsdRe  = regexp.MustCompile(`apple|bsd|darwin|mac|osx|ios|dragonfly`)
	msvcRe = regexp.MustCompile(`crtdll|ucrt|vcruntime|vs|win`)
)

// ParseFlavor guesses the flavor from free text, such as the banner printed
// by "ldd --version" or a target triple.
func ParseFlavor(s string) Flavor {
	it := platform.Normalize(s, false)
	if it == "" {
		return Unknown
	}
	for _, f := range Flavors() {
		if strings.Contains(it, f.ID()) {
			return f
		}
	}
	switch {
	// "gnu" also matches GNU operating systems, but gcc toolchains need it.
	case gnuRe.MatchString(it):
		return GLibc
	case bsdRe.MatchString(it):
		return BSDLibc
	case msvcRe.MatchString(it):
		return MSVC
	case strings.Contains(it, "android"):
		return Bionic
	}
	return Unknown
}

// Name of the flavor, eg. GLIBC.
func (f Flavor) Name() string {
	if f < Unknown || f > UCLibc {
		return fmt.Sprintf("Flavor(%d)", int(f))
	}
	return flavorNames[f]
}

// ID is the canonical identifier, eg. glibc.
func (f Flavor) ID() string {
	return strings.ToLower(f.Name())
}

func (f Flavor) String() string { return f.ID() }

// MarshalText encodes the canonical id.
func (f Flavor) MarshalText() ([]byte, error) {
	return []byte(f.ID()), nil
}

// UnmarshalText accepts only canonical ids.
func (f *Flavor) UnmarshalText(text []byte) error {
	for flavor := Unknown; flavor <= UCLibc; flavor++ {
		if flavor.ID() == string(text) {
			*f = flavor
			return nil
		}
	}
	return errors.Wrapf(platform.ErrInvalidIdentifier, "unknown libc flavor %q", text)
}
