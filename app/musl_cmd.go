package app

import (
	"context"

	"github.com/cashapp/sysident/errors"
	"github.com/cashapp/sysident/ui"
)

type muslCmd struct {
	Silent bool `short:"s" help:"Only set the exit status."`
}

func (m *muslCmd) Run(ctx context.Context, l *ui.UI, g *Globals) error {
	ldd := g.Prober()
	if ldd.HasMusl(ctx, l.Task("musl")) {
		if !m.Silent {
			l.Printf("musl\n")
		}
		return nil
	}
	if m.Silent {
		return errors.Exit(1)
	}
	l.Printf("not musl\n")
	return errors.WithExitCode(errors.Errorf("%s does not report musl", ldd.LDD), 1)
}
