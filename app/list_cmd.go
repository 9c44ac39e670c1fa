package app

import (
	"encoding/json"
	"strings"

	"github.com/alecthomas/colour"

	"github.com/cashapp/sysident/errors"
	"github.com/cashapp/sysident/platform"
	"github.com/cashapp/sysident/ui"
)

// JSONFormattable contains the shared JSON boolean flag for Kong
type JSONFormattable struct {
	JSON bool `help:"Format information as JSON" default:"false"`
}

type listCmd struct {
	OS   bool `help:"List operating systems only." xor:"catalog"`
	Arch bool `help:"List architectures only." xor:"catalog"`
	JSONFormattable
}

type osEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type archEntry struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Bitness int    `json:"bitness"`
}

type catalog struct {
	OSes  []osEntry   `json:"oses,omitempty"`
	Archs []archEntry `json:"archs,omitempty"`
}

var stripColour = strings.NewReplacer("^B", "", "^R", "")

func (c *listCmd) Run(l *ui.UI, tty stdoutTTY) error {
	cat := catalog{}
	if !c.Arch {
		for _, os := range platform.OSes() {
			cat.OSes = append(cat.OSes, osEntry{ID: os.ID(), Name: os.Name()})
		}
	}
	if !c.OS {
		for _, arch := range platform.Archs() {
			cat.Archs = append(cat.Archs, archEntry{ID: arch.ID(), Name: arch.Name(), Bitness: arch.Bitness()})
		}
	}
	if c.JSON {
		data, err := json.MarshalIndent(cat, "", "  ")
		if err != nil {
			return errors.WithStack(err)
		}
		l.Printf("%s\n", data)
		return nil
	}
	printf := func(format string, args ...interface{}) {
		l.Printf(stripColour.Replace(format), args...)
	}
	if tty {
		printf = func(format string, args ...interface{}) {
			colour.Printf(format, args...)
		}
	}
	for _, os := range cat.OSes {
		printf("^B%-14s^R %s\n", os.ID, os.Name)
	}
	for _, arch := range cat.Archs {
		printf("^B%-14s^R %-14s %d-bit\n", arch.ID, arch.Name, arch.Bitness)
	}
	return nil
}
