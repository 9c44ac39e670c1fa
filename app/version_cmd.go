package app

import (
	"github.com/alecthomas/kong"

	"github.com/cashapp/sysident/ui"
)

type versionCmd struct{}

func (v *versionCmd) Run(l *ui.UI, vars kong.Vars) error {
	l.Printf("%s\n", vars["version"])
	return nil
}
