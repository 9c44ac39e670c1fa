package app

import (
	"github.com/cashapp/sysident/platform"
	"github.com/cashapp/sysident/ui"
)

type extCmd struct {
	Role string      `arg:"" help:"Role of the file (${enum})." enum:"executable,static,shared,link"`
	Path string      `arg:"" help:"Path without extension." predictor:"file"`
	OS   platform.OS `help:"Target operating system id, defaults to the current one." predictor:"os"`
}

func (e *extCmd) Run(l *ui.UI, g *Globals) error {
	os := e.OS
	if os == 0 {
		current, err := platform.CurrentOS(g.properties(false))
		if err != nil {
			return err
		}
		os = current
	}
	var path string
	switch e.Role {
	case "executable":
		path = os.WithExecutableExtension(e.Path)
	case "static":
		path = os.WithStaticLibraryExtension(e.Path)
	case "shared":
		path = os.WithSharedLibraryExtension(e.Path)
	case "link":
		path = os.WithLinkLibraryExtension(e.Path)
	}
	l.Printf("%s\n", path)
	return nil
}
