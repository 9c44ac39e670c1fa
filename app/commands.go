package app

import (
	"time"

	"github.com/alecthomas/kong"

	"github.com/cashapp/sysident/libc"
	"github.com/cashapp/sysident/platform"
	"github.com/cashapp/sysident/ui"
)

// Flag names mapped to the property each one overrides.
var flagProperties = map[string]string{
	"os-name":        platform.PropOSName,
	"os-arch":        platform.PropArch,
	"file-separator": platform.PropFileSeparator,
	"runtime-name":   platform.PropRuntimeName,
}

// Globals are the flags shared by every command.
type Globals struct {
	OSName        string `name:"os-name" placeholder:"NAME" help:"Override the operating system name signal." group:"properties"`
	OSArch        string `name:"os-arch" placeholder:"ARCH" predictor:"arch" help:"Override the architecture signal." group:"properties"`
	FileSeparator string `name:"file-separator" placeholder:"SEP" help:"Override the file separator signal." group:"properties"`
	RuntimeName   string `name:"runtime-name" placeholder:"NAME" help:"Override the runtime name signal." group:"properties"`

	LDD          string        `name:"ldd" placeholder:"PATH" default:"${ldd}" help:"ldd executable used to detect the C standard library." group:"probe"`
	ProbeTimeout time.Duration `name:"probe-timeout" default:"${probe_timeout}" help:"Maximum time to wait for ldd." group:"probe"`
}

// properties layers the overrides over the compiled-in platform, or over the
// running kernel if "native" is set.
func (g *Globals) properties(native bool) platform.Properties {
	overrides := platform.MapProperties{}
	for key, value := range map[string]string{
		platform.PropOSName:        g.OSName,
		platform.PropArch:          g.OSArch,
		platform.PropFileSeparator: g.FileSeparator,
		platform.PropRuntimeName:   g.RuntimeName,
	} {
		if value != "" {
			overrides[key] = value
		}
	}
	base := platform.System
	if native {
		base = platform.Native()
	}
	return platform.Overlay(overrides, base)
}

// Prober for the configured ldd.
func (g *Globals) Prober() *libc.Prober {
	return &libc.Prober{LDD: g.LDD, Timeout: g.ProbeTimeout}
}

// stdoutTTY is true when stdout is a terminal.
type stdoutTTY bool

// CLI structure.
type cli struct {
	VersionFlag kong.VersionFlag `help:"Show version." name:"version"`
	Debug       bool             `help:"Enable debug logging." short:"d"`
	Trace       bool             `help:"Enable trace logging." short:"t"`
	Quiet       bool             `help:"Disable logging, except fatal errors." env:"SYSIDENT_QUIET" short:"q"`
	Level       ui.Level         `help:"Set minimum log level (${enum})." env:"SYSIDENT_LOG" default:"auto" enum:"auto,trace,debug,info,warn,error,fatal"`

	Globals

	Current currentCmd `cmd:"" help:"Show the current platform." default:"1"`
	Parse   parseCmd   `cmd:"" help:"Resolve OS, architecture or platform names to canonical ids."`
	List    listCmd    `cmd:"" help:"List the OS and architecture catalogs."`
	Musl    muslCmd    `cmd:"" help:"Exit with status 0 if ldd reports musl, 1 otherwise."`
	Ext     extCmd     `cmd:"" help:"Append the OS specific file extension to a path."`
	Version versionCmd `cmd:"" help:"Show version."`

	DumpUserConfigSchema dumpUserConfigSchema `cmd:"" help:"Dump user configuration schema." hidden:""`

	kong.Plugins
}

func (c *cli) level() ui.Level {
	switch {
	case c.Trace:
		return ui.LevelTrace
	case c.Debug:
		return ui.LevelDebug
	case c.Quiet:
		return ui.LevelFatal
	default:
		return ui.AutoLevel(c.Level)
	}
}

type dumpUserConfigSchema struct{}

func (dumpUserConfigSchema) Run(l *ui.UI) error {
	l.Printf("%s\n", userConfigSchema)
	return nil
}
