package app

import (
	"context"
	"encoding/json"

	"github.com/cashapp/sysident/errors"
	"github.com/cashapp/sysident/libc"
	"github.com/cashapp/sysident/platform"
	"github.com/cashapp/sysident/ui"
)

type currentCmd struct {
	Native bool `help:"Query the running kernel rather than the platform sysident was built for."`
	Libc   bool `help:"Also detect the C standard library."`
	JSONFormattable
}

// currentInfo is the JSON representation of the current platform.
type currentInfo struct {
	Platform platform.Platform `json:"platform"`
	OS       platform.OS       `json:"os"`
	Arch     platform.Arch     `json:"arch"`
	Bitness  int               `json:"bitness"`
	Libc     *libc.Flavor      `json:"libc,omitempty"`
	OCI      string            `json:"oci,omitempty"`
}

func (c *currentCmd) Run(ctx context.Context, l *ui.UI, g *Globals) error {
	task := l.Task("current")
	current, err := platform.Current(g.properties(c.Native))
	if err != nil {
		return errors.WithStack(err)
	}
	info := currentInfo{
		Platform: current,
		OS:       current.OS(),
		Arch:     current.Arch(),
		Bitness:  current.Arch().Bitness(),
	}
	if c.Libc {
		flavor := g.Prober().Detect(ctx, task, current.OS())
		info.Libc = &flavor
	}
	if oci, err := current.FormatOCI(); err == nil {
		info.OCI = oci
	} else {
		task.Debugf("%s", err)
	}
	if !c.JSON {
		if info.Libc != nil {
			l.Printf("%s %s\n", current, *info.Libc)
		} else {
			l.Printf("%s\n", current)
		}
		return nil
	}
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	l.Printf("%s\n", data)
	return nil
}
