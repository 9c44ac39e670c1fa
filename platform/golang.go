package platform

import (
	"github.com/cashapp/sysident/errors"
)

// GOOS names, including ports that have no toolchain support.
var goOS = map[OS]string{
	AIX:          "aix",
	Android:      "android",
	Darwin:       "darwin",
	DragonFlyBSD: "dragonfly",
	FreeBSD:      "freebsd",
	Illumos:      "illumos",
	Linux:        "linux",
	NetBSD:       "netbsd",
	OpenBSD:      "openbsd",
	Plan9:        "plan9",
	Solaris:      "solaris",
	Windows:      "windows",
	ZOS:          "zos",
}

// GOARCH names, including ports that have no toolchain support.
var goArch = map[Arch]string{
	ARM32:    "arm",
	ARM32BE:  "armbe",
	ARM64:    "arm64",
	ARM64BE:  "arm64be",
	MIPS32:   "mips",
	MIPS32LE: "mipsle",
	MIPS64:   "mips64",
	MIPS64LE: "mips64le",
	PPC32:    "ppc",
	PPC64:    "ppc64",
	PPC64LE:  "ppc64le",
	RISCV32:  "riscv",
	RISCV64:  "riscv64",
	S390_32:  "s390",
	S390_64:  "s390x",
	SPARC32:  "sparc",
	SPARC64:  "sparc64",
	X86_32:   "386",
	X86_64:   "amd64",
}

var (
	fromGoOS   = invert(goOS)
	fromGoArch = invert(goArch)
)

func invert[K comparable](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func init() {
	fromGoOS["ios"] = Darwin
}

// GoOS returns the GOOS name of "os", if Go knows it.
func GoOS(os OS) (string, bool) {
	goos, ok := goOS[os]
	return goos, ok
}

// GoArch returns the GOARCH name of "arch", if Go knows it.
func GoArch(arch Arch) (string, bool) {
	goarch, ok := goArch[arch]
	return goarch, ok
}

// FromGo maps a GOOS/GOARCH pair to a Platform.
func FromGo(goos, goarch string) (Platform, error) {
	os, ok := fromGoOS[goos]
	if !ok {
		return Platform{}, errors.Wrapf(ErrUnsupported, "GOOS %q", goos)
	}
	arch, ok := fromGoArch[goarch]
	if !ok {
		return Platform{}, errors.Wrapf(ErrUnsupported, "GOARCH %q", goarch)
	}
	return New(os, arch), nil
}

// Go returns the GOOS and GOARCH names of the platform.
func (p Platform) Go() (goos, goarch string, err error) {
	goos, ok := GoOS(p.os)
	if !ok {
		return "", "", errors.Wrapf(ErrUnsupported, "%s has no GOOS", p.os)
	}
	goarch, ok = GoArch(p.arch)
	if !ok {
		return "", "", errors.Wrapf(ErrUnsupported, "%s has no GOARCH", p.arch)
	}
	return goos, goarch, nil
}
