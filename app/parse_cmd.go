package app

import (
	"github.com/cashapp/sysident/errors"
	"github.com/cashapp/sysident/platform"
	"github.com/cashapp/sysident/ui"
)

type parseCmd struct {
	Kind   string   `short:"k" help:"What the values identify (${enum})." enum:"platform,os,arch" default:"platform"`
	Strict bool     `help:"Accept only canonical ids."`
	Values []string `arg:"" help:"Values to resolve." predictor:"platform"`
}

func (p *parseCmd) Run(l *ui.UI) error {
	var errs []error
	for _, value := range p.Values {
		id, err := p.resolve(value)
		if err != nil {
			l.Errorf("%s", err)
			errs = append(errs, err)
			continue
		}
		l.Printf("%s\n", id)
	}
	if len(errs) > 0 {
		return errors.WithExitCode(errors.Errorf("%d of %d values did not resolve", len(errs), len(p.Values)), 1)
	}
	return nil
}

func (p *parseCmd) resolve(value string) (string, error) {
	switch p.Kind {
	case "os":
		parse := platform.ParseOS
		if p.Strict {
			parse = platform.OSFromString
		}
		os, err := parse(value)
		return os.ID(), err

	case "arch":
		parse := platform.ParseArch
		if p.Strict {
			parse = platform.ArchFromString
		}
		arch, err := parse(value)
		return arch.ID(), err

	default:
		parse := platform.Parse
		if p.Strict {
			parse = platform.FromString
		}
		plat, err := parse(value)
		if err != nil {
			return "", err
		}
		return plat.ID(), nil
	}
}
