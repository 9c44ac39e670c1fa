package libc

import (
	"bytes"
	"context"
	"time"

	"github.com/cashapp/sysident/errors"
	"github.com/cashapp/sysident/platform"
	"github.com/cashapp/sysident/ui"
	"github.com/cashapp/sysident/util"
	"github.com/cashapp/sysident/util/debug"
)

// DefaultTimeout bounds a single ldd invocation.
const DefaultTimeout = 2 * time.Second

// DefaultLDD is looked up in $PATH.
const DefaultLDD = "ldd"

// Prober runs "ldd --version" to identify the C standard library.
//
// The zero value is ready to use. Probing never fails, any problem running ldd
// is logged at debug level and treated as "not detected".
type Prober struct {
	// LDD is the ldd executable, DefaultLDD if empty.
	LDD string
	// Timeout for ldd, DefaultTimeout if zero.
	Timeout time.Duration
	// Runner executes ldd, a util.RealCommandRunner if nil.
	Runner util.CommandRunner
}

// HasMusl returns true if running "path --version" prints "musl".
//
// The musl dynamic loader prints its banner when invoked as ldd, and a broken
// installation still names its ld-musl loader in the error.
func HasMusl(ctx context.Context, log ui.Logger, path string) bool {
	return (&Prober{LDD: path}).HasMusl(ctx, log)
}

// HasMusl returns true if ldd reports musl.
func (p *Prober) HasMusl(ctx context.Context, log ui.Logger) bool {
	out, ok := p.version(ctx, log)
	return ok && bytes.Contains(out, []byte("musl"))
}

// Detect the C standard library flavor of "os".
//
// Only systems without a fixed libc are probed with ldd.
func (p *Prober) Detect(ctx context.Context, log ui.Logger, os platform.OS) Flavor {
	switch os {
	case platform.Android:
		return Bionic
	case platform.Darwin, platform.DragonFlyBSD, platform.FreeBSD, platform.NetBSD, platform.OpenBSD:
		return BSDLibc
	case platform.Windows:
		return MSVC
	}
	out, ok := p.version(ctx, log)
	if !ok {
		return Unknown
	}
	line, _, _ := bytes.Cut(out, []byte("\n"))
	return ParseFlavor(string(line))
}

// version returns the output of "ldd --version".
//
// A non-zero exit is not a failure, musl's ldd exits 1 after printing its banner.
func (p *Prober) version(ctx context.Context, log ui.Logger) ([]byte, bool) {
	if debug.Flags.NoProbe {
		log.Debugf("ldd probing disabled")
		return nil, false
	}
	ldd := p.LDD
	if ldd == "" {
		ldd = DefaultLDD
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runner := p.Runner
	if runner == nil {
		runner = &util.RealCommandRunner{}
	}
	out, err := runner.CaptureWithTimeout(ctx, log, timeout, ldd, "--version")
	if err != nil {
		log.Debugf("%s --version: %s", ldd, err)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || len(out) == 0 {
			return nil, false
		}
	}
	return out, true
}
