package platform

import (
	"encoding/json"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/require"

	"github.com/cashapp/sysident/errors"
)

func archProps(value string) Properties {
	return MapProperties{PropArch: value}
}

func TestArchIDsAndNames(t *testing.T) {
	require.Len(t, Archs(), 26)
	for _, arch := range Archs() {
		t.Run(arch.Name(), func(t *testing.T) {
			actual, err := ArchFromString(arch.ID())
			require.NoError(t, err)
			require.Equal(t, arch, actual)
			actual, err = ParseArch(arch.ID())
			require.NoError(t, err)
			require.Equal(t, arch, actual)
			actual, err = CurrentArch(archProps(arch.ID()))
			require.NoError(t, err)
			require.Equal(t, arch, actual)

			_, err = ArchFromString(arch.Name())
			require.True(t, errors.Is(err, ErrInvalidIdentifier), "%v", err)
			actual, err = ParseArch(arch.Name())
			require.NoError(t, err)
			require.Equal(t, arch, actual)
			actual, err = CurrentArch(archProps(arch.Name()))
			require.NoError(t, err)
			require.Equal(t, arch, actual)
		})
	}
}

func TestArchIDFormat(t *testing.T) {
	require.Equal(t, "x86-64", X86_64.ID())
	require.Equal(t, "X86_64", X86_64.Name())
	require.Equal(t, "arm-32-be", ARM32BE.String())
	require.Equal(t, "s390-64", S390_64.ID())
	require.Equal(t, "Arch(0)", Arch(0).String())
}

func TestArchAliases(t *testing.T) {
	tests := []struct {
		arch     Arch
		patterns []string
	}{
		{Alpha64, []string{`(DEC)?Alpha(64)?`}},
		{ARM32, []string{`ARM( ?32| ?v([1-3]|4T?|5(TE)?|6(-M)?|7(-A|E(-M)?|-R)?))?`}},
		{ARM32BE, []string{`ARM( ?32)? ?(BE|EB)`, `ARM ?(BE|EB) ?32`}},
		{ARM64, []string{`A(ARCH|RM) ?(64|v(8(\.2(-A))?|9|[1-9][01]))`}},
		{ARM64BE, []string{`AARCH( ?64)? ?(BE|EB)`, `AARCH ?(BE|EB) ?64`, `ARM ?64 ?(BE|EB)`, `ARM ?(BE|EB) ?64`}},
		{Itanium32, []string{`I(A-?64(n| ?32)|tanium ?32)`}},
		{Itanium64, []string{`I(A ?64|tanium( ?64)?)`}},
		{M68K32, []string{`M68(k|000)`}},
		{MIPS32, []string{`MIPS( ?32)?`}},
		{MIPS32LE, []string{`MIPS( ?32)? ?(LE|EL)`, `MIPS ?(LE|EL)32`}},
		{MIPS64, []string{`MIPS ?64`}},
		{MIPS64LE, []string{`MIPS ?64 ?(LE|EL)`, `MIPS ?(EL|LE) ?64`}},
		{PPC32, []string{`P(ower( ?(PC|RS))?|PC)(32)?`}},
		{PPC32LE, []string{`P(ower( ?(PC|RS))?|PC)( ?32) ?(LE|EL)`, `P(ower( ?(PC|RS))?|PC) ?(LE|EL)(32)?`}},
		{PPC64, []string{`P(ower( ?(PC|RS))?|PC) ?64`}},
		{PPC64LE, []string{`P(ower( ?(PC|RS))?|PC) ?64 ?(LE|EL)`, `P(ower( ?(PC|RS))?|PC) ?(LE|EL) ?64`}},
		{RISCV32, []string{`RISC ?V( ?32)?`}},
		{RISCV64, []string{`RISC ?V ?64`}},
		{S390_32, []string{`s390( ?32)?`, `IBM ?Z( ?32)?`}},
		{S390_64, []string{`s390(x(64)?| ?64)`, `IBM ?Z ?64`}},
		{SPARC32, []string{`(hyper|micro|Super|Turbo)?SPARC( ?32)?`}},
		{SPARC64, []string{`(SPARC ?(64|v(9|[1-9][01]))|Ultra-?SPARC)`}},
		{SuperH32, []string{`SuperH( ?32)?`, `SH ?32`}},
		{SuperH32BE, []string{`SuperH( ?32)? ?(BE|EB)`, `SuperH ?(BE|EB)32`, `SH ?32 ?(BE|EB)`, `SH ?(BE|EB)32`}},
		{X86_32, []string{`(ia|x)32`, `(i[1-7]|x)86`, `pentium`, `win ?32`}},
		{X86_64, []string{`(amd ?|win ?|x(86 ?)?)64`, `em64t`, `i[89]86`, `ia32e`}},
	}
	for _, test := range tests {
		t.Run(test.arch.Name(), func(t *testing.T) {
			for _, alias := range expandWithGarbage(t, test.patterns...) {
				actual, err := ParseArch(alias)
				require.NoError(t, err, "%q", alias)
				require.Equal(t, test.arch, actual, "ParseArch(%q)", alias)
				actual, err = CurrentArch(archProps(alias))
				require.NoError(t, err, "%q", alias)
				require.Equal(t, test.arch, actual, "CurrentArch(%q)", alias)
				_, ok := ArchFromStringOK(alias)
				require.Equal(t, alias == test.arch.ID(), ok, "ArchFromStringOK(%q)", alias)
			}
		})
	}
}

func TestArchUnknown(t *testing.T) {
	for _, value := range []string{"", "bash", "ksh", "m680000", "nvptx64", "script.sh", "sh64", "sh 64", "shell", "zsh", "x86-64-64-64"} {
		t.Run(value, func(t *testing.T) {
			_, err := CurrentArch(archProps(value))
			require.True(t, errors.Is(err, ErrUnresolved), "%v", err)
			_, ok := CurrentArchOK(archProps(value))
			require.False(t, ok)

			_, err = ArchFromString(value)
			require.True(t, errors.Is(err, ErrInvalidIdentifier), "%v", err)
			_, ok = ArchFromStringOK(value)
			require.False(t, ok)

			_, err = ParseArch(value)
			require.True(t, errors.Is(err, ErrInvalidIdentifier), "%v", err)
			_, ok = ParseArchOK(value)
			require.False(t, ok)
		})
	}
}

func TestCurrentArchMissingProperty(t *testing.T) {
	_, err := CurrentArch(MapProperties{})
	require.True(t, errors.Is(err, ErrUnresolved), "%v", err)
	require.Contains(t, err.Error(), "os.arch is not set")
}

func TestCurrentArchSpecialValues(t *testing.T) {
	tests := map[string]Arch{
		"386":    X86_32,
		"sh":     SuperH32,
		"shbe":   SuperH32BE,
		"armv6l": ARM32,
		"armv7l": ARM32,
		"armv8l": ARM32,
		"ARMv7L": ARM32,
	}
	for value, expected := range tests {
		actual, err := CurrentArch(archProps(value))
		require.NoError(t, err, value)
		require.Equal(t, expected, actual, value)
	}
	// Only the current resolver knows about these.
	_, ok := ParseArchOK("sh")
	require.False(t, ok)
}

func TestCurrentArchGoRuntime(t *testing.T) {
	tests := map[string]Arch{
		"386":      X86_32,
		"amd64":    X86_64,
		"arm":      ARM32,
		"arm64":    ARM64,
		"mips":     MIPS32,
		"mipsle":   MIPS32LE,
		"mips64":   MIPS64,
		"mips64le": MIPS64LE,
		"ppc64":    PPC64,
		"ppc64le":  PPC64LE,
		"riscv64":  RISCV64,
		"s390x":    S390_64,
		"x86_64":   X86_64,
		"aarch64":  ARM64,
		"i686":     X86_32,
		"sparcv9":  SPARC64,
	}
	for value, expected := range tests {
		actual, err := CurrentArch(archProps(value))
		require.NoError(t, err, value)
		require.Equal(t, expected, actual, value)
	}
}

func TestArchBitness(t *testing.T) {
	bits32 := []Arch{ARM32, ARM32BE, Itanium32, S390_32, M68K32, MIPS32, MIPS32LE, PPC32, PPC32LE, RISCV32, SPARC32, SuperH32, SuperH32BE, X86_32}
	bits64 := []Arch{Alpha64, ARM64, ARM64BE, Itanium64, S390_64, MIPS64, MIPS64LE, PPC64, PPC64LE, RISCV64, SPARC64, X86_64}
	require.Len(t, append(append([]Arch{}, bits32...), bits64...), len(Archs()))
	for _, arch := range bits32 {
		require.Equal(t, 32, arch.Bitness(), arch)
		require.True(t, arch.Is32Bit(), arch)
		require.False(t, arch.Is64Bit(), arch)
	}
	for _, arch := range bits64 {
		require.Equal(t, 64, arch.Bitness(), arch)
		require.False(t, arch.Is32Bit(), arch)
		require.True(t, arch.Is64Bit(), arch)
	}
	require.Equal(t, 0, Arch(0).Bitness())
}

func TestArchFamilies(t *testing.T) {
	tests := []struct {
		name     string
		expected []Arch
		is       func(Arch) bool
	}{
		{"ARM", []Arch{ARM32, ARM32BE, ARM64, ARM64BE}, Arch.IsARM},
		{"ARMBE", []Arch{ARM32BE, ARM64BE}, Arch.IsARMBE},
		{"ARMLE", []Arch{ARM32, ARM64}, Arch.IsARMLE},
		{"Itanium", []Arch{Itanium32, Itanium64}, Arch.IsItanium},
		{"MIPS", []Arch{MIPS32, MIPS32LE, MIPS64, MIPS64LE}, Arch.IsMIPS},
		{"MIPSBE", []Arch{MIPS32, MIPS64}, Arch.IsMIPSBE},
		{"MIPSLE", []Arch{MIPS32LE, MIPS64LE}, Arch.IsMIPSLE},
		{"PPC", []Arch{PPC32, PPC32LE, PPC64, PPC64LE}, Arch.IsPPC},
		{"PPCBE", []Arch{PPC32, PPC64}, Arch.IsPPCBE},
		{"PPCLE", []Arch{PPC32LE, PPC64LE}, Arch.IsPPCLE},
		{"RISCV", []Arch{RISCV32, RISCV64}, Arch.IsRISCV},
		{"S390", []Arch{S390_32, S390_64}, Arch.IsS390},
		{"SPARC", []Arch{SPARC32, SPARC64}, Arch.IsSPARC},
		{"X86", []Arch{X86_32, X86_64}, Arch.IsX86},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var actual []Arch
			for _, arch := range Archs() {
				if test.is(arch) {
					actual = append(actual, arch)
				}
			}
			require.ElementsMatch(t, test.expected, actual, repr.String(actual))
			require.False(t, test.is(Arch(0)))
		})
	}
}

func TestArchText(t *testing.T) {
	data, err := json.Marshal(map[string]Arch{"arch": PPC64LE})
	require.NoError(t, err)
	require.Equal(t, `{"arch":"ppc-64-le"}`, string(data))

	var actual map[string]Arch
	require.NoError(t, json.Unmarshal(data, &actual))
	require.Equal(t, PPC64LE, actual["arch"])

	var arch Arch
	err = arch.UnmarshalText([]byte("ppc64le"))
	require.True(t, errors.Is(err, ErrInvalidIdentifier), "%v", err)

	_, err = Arch(0).MarshalText()
	require.Error(t, err)
}
