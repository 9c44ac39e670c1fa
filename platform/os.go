package platform

import (
	"fmt"
	"strings"

	"github.com/cashapp/sysident/errors"
)

// OS is an operating system.
//
// The zero value is not a valid OS.
type OS int

// Operating systems known to the catalog.
const (
	AIX OS = iota + 1
	Android
	Darwin
	DragonFlyBSD
	FreeBSD
	Fuchsia
	Haiku
	HPUX
	IBMi
	Illumos
	Linux
	NetBSD
	OpenBSD
	Plan9
	QNX
	Redox
	Solaris
	VxWorks
	Windows
	ZOS
)

type osInfo struct {
	name  string
	id    string
	rules []aliasRule
}

func newOS(name string, patterns ...string) osInfo {
	return osInfo{name: name, id: mustID(name), rules: aliases(patterns...)}
}

var osTable = [...]osInfo{
	AIX:          newOS("AIX", `AIX`),
	Android:      newOS("ANDROID", `Android`),
	Darwin:       newOS("DARWIN", `(Apple|Darwin|iOS)`, `Mac( ?OS( ?X)?)?`),
	DragonFlyBSD: newOS("DRAGONFLYBSD", `DragonFly( ?BSD)?`),
	FreeBSD:      newOS("FREEBSD", `Free ?BSD`),
	Fuchsia:      newOS("FUCHSIA", `Fuchsia`),
	Haiku:        newOS("HAIKU", `Haiku`),
	HPUX:         newOS("HPUX", `HP ?UX`),
	IBMi:         newOS("IBMI", `IBM ?i`, `OS(/| ?)400`),
	Illumos:      newOS("ILLUMOS", `Illum( ?OS)?`),
	Linux:        newOS("LINUX", `linux`, `u?nix`),
	NetBSD:       newOS("NETBSD", `Net ?BSD`),
	OpenBSD:      newOS("OPENBSD", `Open ?BSD`),
	Plan9:        newOS("PLAN9", `Plan ?9`),
	QNX:          newOS("QNX", `QNX`, `procnto`),
	Redox:        newOS("REDOX", `Redox`),
	Solaris:      newOS("SOLARIS", `Solaris`, `Sun ?OS`),
	VxWorks:      newOS("VXWORKS", `VxWorks`),
	Windows:      newOS("WINDOWS", `Win(dows)?`, `W(in(dows)?)? ?(7|8|1[01]|32|64|XP|NT)`),
	ZOS:          newOS("ZOS", `z/?OS`),
}

// oses is the catalog in declaration order. Android precedes Linux, which is
// all the resolution order needs.
var oses = func() []OS {
	out := make([]OS, 0, len(osTable)-1)
	for o := AIX; o <= ZOS; o++ {
		out = append(out, o)
	}
	return out
}()

// OSes returns every operating system in the catalog.
func OSes() []OS {
	return append([]OS(nil), oses...)
}

// CurrentOS resolves the operating system from the "file.separator",
// "os.name" and "runtime.name" properties, consulted in that order.
func CurrentOS(props Properties) (OS, error) {
	if sep, ok := props.Lookup(PropFileSeparator); ok && sep == `\` {
		return Windows, nil
	}
	name, ok := props.Lookup(PropOSName)
	if !ok {
		return 0, errors.Wrapf(ErrUnresolved, "%s is not set", PropOSName)
	}
	if Normalize(name, true) == "linux" {
		if runtime, ok := props.Lookup(PropRuntimeName); ok && strings.EqualFold(runtime, "dalvik") {
			return Android, nil
		}
	}
	os, ok := ParseOSOK(name)
	if !ok {
		return 0, errors.Wrapf(ErrUnresolved, "unknown operating system %q in %s", name, PropOSName)
	}
	return os, nil
}

// CurrentOSOK is like CurrentOS but reports failure as false.
func CurrentOSOK(props Properties) (OS, bool) {
	os, err := CurrentOS(props)
	return os, err == nil
}

// OSFromString returns the operating system whose canonical id is exactly "s".
func OSFromString(s string) (OS, error) {
	os, ok := OSFromStringOK(s)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidIdentifier, "unknown operating system id %q", s)
	}
	return os, nil
}

// OSFromStringOK is like OSFromString but reports failure as false.
func OSFromStringOK(s string) (OS, bool) {
	return lookupID(oses, s)
}

// ParseOS resolves a canonical id, catalog name or vendor alias of an
// operating system.
func ParseOS(s string) (OS, error) {
	os, ok := ParseOSOK(s)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidIdentifier, "unknown operating system %q", s)
	}
	return os, nil
}

// ParseOSOK is like ParseOS but reports failure as false.
func ParseOSOK(s string) (OS, bool) {
	return resolve(oses, s)
}

func (o OS) valid() bool { return o >= AIX && o <= ZOS }

func (o OS) info() *osInfo {
	if !o.valid() {
		return &osInfo{}
	}
	return &osTable[o]
}

// Name of the OS in the catalog, eg. FREEBSD.
func (o OS) Name() string { return o.info().name }

// ID is the canonical identifier, eg. freebsd.
func (o OS) ID() string { return o.info().id }

func (o OS) aliasRules() []aliasRule { return o.info().rules }

// ExecutableExtension is the file suffix of executables, including the dot.
func (o OS) ExecutableExtension() string {
	if o == Windows {
		return ".exe"
	}
	return ""
}

// StaticLibraryExtension is the file suffix of static libraries.
func (o OS) StaticLibraryExtension() string {
	if o == Windows {
		return ".lib"
	}
	return ".a"
}

// SharedLibraryExtension is the file suffix of dynamically loaded libraries.
func (o OS) SharedLibraryExtension() string {
	switch o {
	case Windows:
		return ".dll"
	case Darwin:
		return ".dylib"
	default:
		return ".so"
	}
}

// LinkLibraryExtension is the file suffix of the library passed to the linker
// when linking against a shared library.
func (o OS) LinkLibraryExtension() string {
	if o == Windows {
		return ".lib"
	}
	return ".so"
}

func (o OS) WithExecutableExtension(path string) string    { return path + o.ExecutableExtension() }
func (o OS) WithStaticLibraryExtension(path string) string { return path + o.StaticLibraryExtension() }
func (o OS) WithSharedLibraryExtension(path string) string { return path + o.SharedLibraryExtension() }
func (o OS) WithLinkLibraryExtension(path string) string   { return path + o.LinkLibraryExtension() }

func (o OS) String() string {
	if !o.valid() {
		return fmt.Sprintf("OS(%d)", int(o))
	}
	return o.ID()
}

// MarshalText encodes the canonical id.
func (o OS) MarshalText() ([]byte, error) {
	if !o.valid() {
		return nil, errors.Wrapf(ErrInvalidIdentifier, "%s", o)
	}
	return []byte(o.ID()), nil
}

// UnmarshalText accepts only canonical ids.
func (o *OS) UnmarshalText(text []byte) error {
	os, err := OSFromString(string(text))
	if err != nil {
		return err
	}
	*o = os
	return nil
}
