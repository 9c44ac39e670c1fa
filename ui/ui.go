// Package ui provides the terminal log formatter for sysident.
//
// Messages at info level and below go to stdout, warnings and above go to
// stderr. Each stream is ANSI coloured only when it is a terminal.
package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cashapp/sysident/errors"
)

// SyncWriter is an io.Writer that can be Sync()ed.
type SyncWriter interface {
	io.Writer
	Sync() error
}

type stream struct {
	SyncWriter
	tty bool
}

// UI controls the display of logs and command output.
type UI struct {
	labelled
	lock     sync.Mutex
	stdout   stream
	stderr   stream
	minlevel Level
}

var _ Logger = &UI{}

type nopSyncer struct{ io.Writer }

func (nopSyncer) Sync() error { return nil }

// NewForTesting returns a UI logging everything, plain, into the returned buffer.
func NewForTesting() (*UI, *bytes.Buffer) {
	b := &bytes.Buffer{}
	w := nopSyncer{b}
	return New(LevelTrace, w, w, false, false), b
}

// New creates a new UI.
func New(level Level, stdout, stderr SyncWriter, stdoutIsTTY, stderrIsTTY bool) *UI {
	w := &UI{
		stdout:   stream{stdout, stdoutIsTTY},
		stderr:   stream{stderr, stderrIsTTY},
		minlevel: level,
	}
	w.labelled = labelled{ui: w}
	return w
}

// Stdio returns a UI writing to the process's standard streams.
func Stdio(level Level, stdoutIsTTY, stderrIsTTY bool) *UI {
	return New(level, os.Stdout, os.Stderr, stdoutIsTTY, stderrIsTTY)
}

// SetLevel sets the UI's minimum log level.
func (w *UI) SetLevel(level Level) {
	w.lock.Lock()
	defer w.lock.Unlock()
	w.minlevel = level
}

// WillLog returns true if "level" will be logged.
func (w *UI) WillLog(level Level) bool {
	w.lock.Lock()
	defer w.lock.Unlock()
	return w.minlevel.Visible(level)
}

// Task creates a new logger labelled with "task".
func (w *UI) Task(task string) *Task {
	return &Task{labelled{ui: w, label: task}}
}

func (w *UI) logf(level Level, label string, format string, args ...interface{}) {
	w.lock.Lock()
	defer w.lock.Unlock()
	if !w.minlevel.Visible(level) {
		return
	}
	out := w.stdout
	if level >= LevelWarn {
		out = w.stderr
	}
	prefix := level.String() + ":"
	if label != "" {
		prefix += label + ":"
	}
	msg := fmt.Sprintf(format, args...)
	if out.tty {
		colour := levelColor[level]
		fmt.Fprintf(out, "\033[1m%s%s \033[0m%s%s\033[0m\033[0K\n", colour, prefix, colour, msg)
	} else {
		fmt.Fprintf(out, "%s %s\n", prefix, msg)
	}
	if level == LevelFatal {
		_ = w.stderr.Sync()
	}
}

// Printf prints directly to stdout without log formatting.
func (w *UI) Printf(format string, args ...interface{}) {
	w.lock.Lock()
	defer w.lock.Unlock()
	fmt.Fprintf(w.stdout, format, args...)
}

// Sync flushes IO to stdout and stderr.
func (w *UI) Sync() error {
	w.lock.Lock()
	defer w.lock.Unlock()
	return errors.Join(w.stdout.Sync(), w.stderr.Sync())
}
