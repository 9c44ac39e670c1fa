package platform

import (
	"fmt"

	"github.com/cashapp/sysident/errors"
)

// Arch is a CPU architecture together with its bitness.
//
// The zero value is not a valid architecture.
type Arch int

// Architectures known to the catalog.
const (
	Alpha64 Arch = iota + 1
	ARM32
	ARM32BE
	ARM64
	ARM64BE
	Itanium32
	Itanium64
	M68K32
	MIPS32
	MIPS32LE
	MIPS64
	MIPS64LE
	PPC32
	PPC32LE
	PPC64
	PPC64LE
	RISCV32
	RISCV64
	S390_32
	S390_64
	SPARC32
	SPARC64
	SuperH32
	SuperH32BE
	X86_32
	X86_64
)

type family int

const (
	familyAlpha family = iota
	familyARM
	familyItanium
	familyM68K
	familyMIPS
	familyPPC
	familyRISCV
	familyS390
	familySPARC
	familySuperH
	familyX86
)

type archInfo struct {
	name      string
	id        string
	bitness   int
	family    family
	bigEndian bool
	rules     []aliasRule
}

func newArch(name string, bitness int, family family, bigEndian bool, patterns ...string) archInfo {
	return archInfo{
		name:      name,
		id:        mustID(name),
		bitness:   bitness,
		family:    family,
		bigEndian: bigEndian,
		rules:     aliases(patterns...),
	}
}

const powerPC = `P(ower( ?(PC|RS))?|PC)`

var archTable = [...]archInfo{
	Alpha64:    newArch("ALPHA_64", 64, familyAlpha, false, `(DEC)?Alpha(64)?`),
	ARM32:      newArch("ARM_32", 32, familyARM, false, `ARM( ?32| ?v([1-3]|4T?|5(TE)?|6(-M)?|7(-A|E(-M)?|-R)?))?`),
	ARM32BE:    newArch("ARM_32_BE", 32, familyARM, true, `ARM( ?32)? ?(BE|EB)`, `ARM ?(BE|EB) ?32`),
	ARM64:      newArch("ARM_64", 64, familyARM, false, `A(ARCH|RM) ?(64|v(8(\.2(-A))?|9|[1-9][01]))`),
	ARM64BE:    newArch("ARM_64_BE", 64, familyARM, true, `AARCH( ?64)? ?(BE|EB)`, `AARCH ?(BE|EB) ?64`, `ARM ?64 ?(BE|EB)`, `ARM ?(BE|EB) ?64`),
	Itanium32:  newArch("ITANIUM_32", 32, familyItanium, false, `I(A-?64(n| ?32)|tanium ?32)`),
	Itanium64:  newArch("ITANIUM_64", 64, familyItanium, false, `I(A ?64|tanium( ?64)?)`),
	M68K32:     newArch("M68K_32", 32, familyM68K, true, `M68(k|000)`),
	MIPS32:     newArch("MIPS_32", 32, familyMIPS, true, `MIPS( ?32)?`),
	MIPS32LE:   newArch("MIPS_32_LE", 32, familyMIPS, false, `MIPS( ?32)? ?(LE|EL)`, `MIPS ?(LE|EL)32`),
	MIPS64:     newArch("MIPS_64", 64, familyMIPS, true, `MIPS ?64`),
	MIPS64LE:   newArch("MIPS_64_LE", 64, familyMIPS, false, `MIPS ?64 ?(LE|EL)`, `MIPS ?(EL|LE) ?64`),
	PPC32:      newArch("PPC_32", 32, familyPPC, true, powerPC+`(32)?`),
	PPC32LE:    newArch("PPC_32_LE", 32, familyPPC, false, powerPC+`( ?32) ?(LE|EL)`, powerPC+` ?(LE|EL)(32)?`),
	PPC64:      newArch("PPC_64", 64, familyPPC, true, powerPC+` ?64`),
	PPC64LE:    newArch("PPC_64_LE", 64, familyPPC, false, powerPC+` ?64 ?(LE|EL)`, powerPC+` ?(LE|EL) ?64`),
	RISCV32:    newArch("RISCV_32", 32, familyRISCV, false, `RISC ?V( ?32)?`),
	RISCV64:    newArch("RISCV_64", 64, familyRISCV, false, `RISC ?V ?64`),
	S390_32:    newArch("S390_32", 32, familyS390, true, `s390( ?32)?`, `IBM ?Z( ?32)?`),
	S390_64:    newArch("S390_64", 64, familyS390, true, `s390(x(64)?| ?64)`, `IBM ?Z ?64`),
	SPARC32:    newArch("SPARC_32", 32, familySPARC, true, `(hyper|micro|Super|Turbo)?SPARC( ?32)?`),
	SPARC64:    newArch("SPARC_64", 64, familySPARC, true, `(SPARC ?(64|v(9|[1-9][01]))|Ultra-?SPARC)`),
	SuperH32:   newArch("SUPERH_32", 32, familySuperH, false, `SuperH( ?32)?`, `SH ?32`),
	SuperH32BE: newArch("SUPERH_32_BE", 32, familySuperH, true, `SuperH( ?32)? ?(BE|EB)`, `SuperH ?(BE|EB)32`, `SH ?32 ?(BE|EB)`, `SH ?(BE|EB)32`),
	X86_32:     newArch("X86_32", 32, familyX86, false, `(ia|x)32`, `(i[1-7]|x)86`, `pentium`, `win ?32`),
	X86_64:     newArch("X86_64", 64, familyX86, false, `(amd ?|win ?|x(86 ?)?)64`, `em64t`, `i[89]86`, `ia32e`),
}

// archs is the catalog in declaration order.
var archs = func() []Arch {
	out := make([]Arch, 0, len(archTable)-1)
	for a := Alpha64; a <= X86_64; a++ {
		out = append(out, a)
	}
	return out
}()

// archResolutionOrder lists qualified variants before their unqualified
// siblings so that first match is also best match.
var archResolutionOrder = []Arch{
	X86_64, X86_32,
	ARM64BE, ARM32BE, ARM64, ARM32,
	Alpha64,
	Itanium32, Itanium64,
	M68K32,
	S390_64, S390_32,
	PPC64LE, PPC32LE, PPC64, PPC32,
	MIPS64LE, MIPS32LE, MIPS64, MIPS32,
	RISCV64, RISCV32,
	SPARC64, SPARC32,
	SuperH32BE, SuperH32,
}

// Values reported by runtimes for os.arch that are too short or too
// ambiguous to be aliases.
var currentArchSpecials = map[string]Arch{
	"386":    X86_32,
	"sh":     SuperH32,
	"shbe":   SuperH32BE,
	"armv6l": ARM32,
	"armv7l": ARM32,
	"armv8l": ARM32,
}

// Archs returns every architecture in the catalog.
func Archs() []Arch {
	return append([]Arch(nil), archs...)
}

// CurrentArch resolves the architecture reported by the "os.arch" property.
func CurrentArch(props Properties) (Arch, error) {
	value, ok := props.Lookup(PropArch)
	if !ok {
		return 0, errors.Wrapf(ErrUnresolved, "%s is not set", PropArch)
	}
	if arch, ok := currentArchSpecials[Normalize(value, true)]; ok {
		return arch, nil
	}
	arch, ok := ParseArchOK(value)
	if !ok {
		return 0, errors.Wrapf(ErrUnresolved, "unknown architecture %q in %s", value, PropArch)
	}
	return arch, nil
}

// CurrentArchOK is like CurrentArch but reports failure as false.
func CurrentArchOK(props Properties) (Arch, bool) {
	arch, err := CurrentArch(props)
	return arch, err == nil
}

// ArchFromString returns the architecture whose canonical id is exactly "s".
func ArchFromString(s string) (Arch, error) {
	arch, ok := ArchFromStringOK(s)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidIdentifier, "unknown architecture id %q", s)
	}
	return arch, nil
}

// ArchFromStringOK is like ArchFromString but reports failure as false.
func ArchFromStringOK(s string) (Arch, bool) {
	return lookupID(archs, s)
}

// ParseArch resolves a canonical id, catalog name or vendor alias of an
// architecture. Matching is case-insensitive and tolerates one garbage token
// on either side of an alias.
func ParseArch(s string) (Arch, error) {
	arch, ok := ParseArchOK(s)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidIdentifier, "unknown architecture %q", s)
	}
	return arch, nil
}

// ParseArchOK is like ParseArch but reports failure as false.
func ParseArchOK(s string) (Arch, bool) {
	return resolve(archResolutionOrder, s)
}

func (a Arch) valid() bool { return a >= Alpha64 && a <= X86_64 }

func (a Arch) info() *archInfo {
	if !a.valid() {
		return &archInfo{}
	}
	return &archTable[a]
}

// Name of the architecture in the catalog, eg. X86_64.
func (a Arch) Name() string { return a.info().name }

// ID is the canonical identifier, eg. x86-64.
func (a Arch) ID() string { return a.info().id }

func (a Arch) aliasRules() []aliasRule { return a.info().rules }

// Bitness is either 32 or 64, and 0 for an invalid Arch.
func (a Arch) Bitness() int { return a.info().bitness }

func (a Arch) Is32Bit() bool { return a.Bitness() == 32 }
func (a Arch) Is64Bit() bool { return a.Bitness() == 64 }

func (a Arch) is(f family) bool { return a.valid() && a.info().family == f }

func (a Arch) IsARM() bool     { return a.is(familyARM) }
func (a Arch) IsARMBE() bool   { return a.IsARM() && a.info().bigEndian }
func (a Arch) IsARMLE() bool   { return a.IsARM() && !a.info().bigEndian }
func (a Arch) IsItanium() bool { return a.is(familyItanium) }
func (a Arch) IsMIPS() bool    { return a.is(familyMIPS) }
func (a Arch) IsMIPSBE() bool  { return a.IsMIPS() && a.info().bigEndian }
func (a Arch) IsMIPSLE() bool  { return a.IsMIPS() && !a.info().bigEndian }
func (a Arch) IsPPC() bool     { return a.is(familyPPC) }
func (a Arch) IsPPCBE() bool   { return a.IsPPC() && a.info().bigEndian }
func (a Arch) IsPPCLE() bool   { return a.IsPPC() && !a.info().bigEndian }
func (a Arch) IsRISCV() bool   { return a.is(familyRISCV) }
func (a Arch) IsS390() bool    { return a.is(familyS390) }
func (a Arch) IsSPARC() bool   { return a.is(familySPARC) }
func (a Arch) IsX86() bool     { return a.is(familyX86) }

func (a Arch) String() string {
	if !a.valid() {
		return fmt.Sprintf("Arch(%d)", int(a))
	}
	return a.ID()
}

// MarshalText encodes the canonical id.
func (a Arch) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, errors.Wrapf(ErrInvalidIdentifier, "%s", a)
	}
	return []byte(a.ID()), nil
}

// UnmarshalText accepts only canonical ids.
func (a *Arch) UnmarshalText(text []byte) error {
	arch, err := ArchFromString(string(text))
	if err != nil {
		return err
	}
	*a = arch
	return nil
}
