// Package sysident identifies the operating system, CPU architecture and C
// standard library of the machine it runs on.
//
// The catalogs live in the platform and libc packages, this package holds
// shell completion for the sysident command.
package sysident

import (
	"github.com/posener/complete"

	"github.com/cashapp/sysident/platform"
	"github.com/cashapp/sysident/ui"
)

// PlatformPredictor is a shell completion predictor for canonical platform ids.
type PlatformPredictor struct {
	l *ui.UI
}

// NewPlatformPredictor returns a new PlatformPredictor
func NewPlatformPredictor(l *ui.UI) *PlatformPredictor {
	return &PlatformPredictor{l}
}

func (p *PlatformPredictor) Predict(args complete.Args) []string { // nolint: golint
	p.l.SetLevel(ui.LevelFatal)

	platforms := platform.Platforms()
	res := make([]string, len(platforms))
	for i, plat := range platforms {
		res[i] = plat.ID()
	}
	return res
}

// OSPredictor is a shell completion predictor for canonical OS ids.
type OSPredictor struct{}

func (OSPredictor) Predict(args complete.Args) []string { // nolint: golint
	oses := platform.OSes()
	res := make([]string, len(oses))
	for i, os := range oses {
		res[i] = os.ID()
	}
	return res
}

// ArchPredictor is a shell completion predictor for canonical architecture ids.
type ArchPredictor struct{}

func (ArchPredictor) Predict(args complete.Args) []string { // nolint: golint
	archs := platform.Archs()
	res := make([]string, len(archs))
	for i, arch := range archs {
		res[i] = arch.ID()
	}
	return res
}
