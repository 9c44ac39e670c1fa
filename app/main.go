package app

import (
	"bufio"
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"
	"github.com/posener/complete"
	"github.com/willabides/kongplete"

	"github.com/cashapp/sysident"
	"github.com/cashapp/sysident/errors"
	"github.com/cashapp/sysident/libc"
	"github.com/cashapp/sysident/ui"
)

const help = `Identify the operating system, CPU architecture and C library of this machine.`

// Config for the main sysident application.
type Config struct {
	Version     string
	LogLevel    ui.Level
	KongOptions []kong.Option
	KongPlugins kong.Plugins
	// Defaults to ~/.sysident.hcl if empty.
	UserConfigPath string
}

// Main runs the sysident command-line application with the given config.
func Main(config Config) {
	config.LogLevel = ui.AutoLevel(config.LogLevel)
	if config.UserConfigPath == "" {
		config.UserConfigPath = userConfigPath
	}
	var (
		p           *ui.UI
		stdoutIsTTY = isatty.IsTerminal(os.Stdout.Fd())
		stderrIsTTY = isatty.IsTerminal(os.Stderr.Fd())
	)
	if stdoutIsTTY {
		// This is necessary because stdout/stderr are unbuffered and thus _very_ slow.
		stdout := bufio.NewWriter(os.Stdout)
		stderr := bufio.NewWriter(os.Stderr)
		go func() {
			for {
				time.Sleep(time.Millisecond * 100)
				if err := stdout.Flush(); err != nil {
					break
				}
				if err := stderr.Flush(); err != nil {
					break
				}
			}
		}()
		p = ui.New(config.LogLevel, &bufioSyncer{stdout}, &bufioSyncer{stderr}, stdoutIsTTY, stderrIsTTY)
		defer stdout.Flush()
		defer stderr.Flush()
	} else {
		p = ui.Stdio(config.LogLevel, stdoutIsTTY, stderrIsTTY)
	}

	userConfig, err := LoadUserConfig(config.UserConfigPath)
	if err != nil {
		log.Printf("%s: %s", config.UserConfigPath, err)
	}

	c := &cli{Plugins: config.KongPlugins}
	parser, err := newParser(c, p, userConfig, config, stdoutTTY(stdoutIsTTY))
	if err != nil {
		log.Fatalf("failed to initialise CLI: %s", err) // nolint: gocritic
	}

	kongplete.Complete(parser,
		kongplete.WithPredictor("platform", sysident.NewPlatformPredictor(p)),
		kongplete.WithPredictor("os", sysident.OSPredictor{}),
		kongplete.WithPredictor("arch", sysident.ArchPredictor{}),
		kongplete.WithPredictor("file", complete.PredictFiles("*")),
	)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	p.SetLevel(c.level())

	err = ctx.Run()
	if err == nil {
		return
	}
	code := report(p, err)
	_ = p.Sync()
	os.Exit(code)
}

// report logs a command error, unless it only carries an exit status, and
// returns the status the process should exit with.
func report(p *ui.UI, err error) int {
	if !errors.Silent(err) {
		if p.WillLog(ui.LevelDebug) {
			p.Fatalf("%+v", err)
		} else {
			p.Task("sysident").Fatalf("%s", err)
		}
	}
	return errors.ExitCode(err)
}

// newParser builds the Kong parser for "c", binding everything commands
// need to run.
func newParser(c *cli, p *ui.UI, userConfig UserConfig, config Config, tty stdoutTTY) (*kong.Kong, error) {
	description := help
	description += "\n\nConfiguration format for " + userConfigPath + ":\n"
	description += "    " + strings.Join(strings.Split(userConfigSchema, "\n"), "\n    ")

	kongOptions := []kong.Option{
		kong.Name("sysident"),
		kong.Groups{
			"properties": "Properties:\nOverride the signals used to resolve the current platform.",
			"probe":      "Probe:\nConfigure C library detection.",
		},
		kong.Resolvers(UserConfigResolver(userConfig)),
		kong.UsageOnError(),
		kong.Description(description),
		kong.BindTo(context.Background(), (*context.Context)(nil)),
		kong.Bind(p, &c.Globals, userConfig, config, tty),
		kong.Vars{
			"version":       config.Version,
			"ldd":           libc.DefaultLDD,
			"probe_timeout": libc.DefaultTimeout.String(),
		},
		kong.HelpOptions{
			Compact: true,
		},
	}
	kongOptions = append(kongOptions, config.KongOptions...)
	return kong.New(c, kongOptions...)
}

// Makes bufio conform to Sync() so the logger can flush it after each line.
type bufioSyncer struct{ *bufio.Writer }

func (b *bufioSyncer) Sync() error { return b.Flush() }
