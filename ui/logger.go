package ui

import (
	"bytes"
	"strings"
	"sync"

	"github.com/acarl005/stripansi"
)

// Logger is what the libraries log through. Both *UI and *Task satisfy it.
type Logger interface {
	Tracef(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	// WriterAt returns a writer logging each line written to it at "level".
	WriterAt(level Level) SyncWriter
}

// labelled logs through a UI with a fixed "task[:subtask]" label.
type labelled struct {
	ui    *UI
	label string
}

func (l labelled) Tracef(format string, args ...interface{}) {
	l.ui.logf(LevelTrace, l.label, format, args...)
}

func (l labelled) Debugf(format string, args ...interface{}) {
	l.ui.logf(LevelDebug, l.label, format, args...)
}

func (l labelled) Infof(format string, args ...interface{}) {
	l.ui.logf(LevelInfo, l.label, format, args...)
}

func (l labelled) Warnf(format string, args ...interface{}) {
	l.ui.logf(LevelWarn, l.label, format, args...)
}

func (l labelled) Errorf(format string, args ...interface{}) {
	l.ui.logf(LevelError, l.label, format, args...)
}

// Fatalf logs at fatal level. It does not exit.
func (l labelled) Fatalf(format string, args ...interface{}) {
	l.ui.logf(LevelFatal, l.label, format, args...)
}

func (l labelled) WriterAt(level Level) SyncWriter {
	return &lineWriter{emit: func(line string) {
		l.ui.logf(level, l.label, "%s", line)
	}}
}

// Task is a Logger whose messages are labelled with a task and optional subtask.
type Task struct {
	labelled
}

var _ Logger = &Task{}

// SubTask creates a new logger labelled "task:subtask".
func (t *Task) SubTask(subtask string) *Task {
	return &Task{labelled{ui: t.ui, label: t.label + ":" + subtask}}
}

// WillLog returns true if "level" will be logged.
func (t *Task) WillLog(level Level) bool {
	return t.ui.WillLog(level)
}

// lineWriter buffers partial lines and emits each complete one, stripped of
// terminal escapes and carriage returns. Sync emits any trailing partial line.
type lineWriter struct {
	lock sync.Mutex
	buf  []byte
	emit func(line string)
}

func (w *lineWriter) Write(b []byte) (int, error) {
	w.lock.Lock()
	w.buf = append(w.buf, b...)
	var lines []string
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		lines = append(lines, string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	w.lock.Unlock()
	for _, line := range lines {
		w.emit(cleanLine(line))
	}
	return len(b), nil
}

func (w *lineWriter) Sync() error {
	w.lock.Lock()
	line := string(w.buf)
	w.buf = nil
	w.lock.Unlock()
	if line != "" {
		w.emit(cleanLine(line))
	}
	return nil
}

func cleanLine(line string) string {
	return strings.ReplaceAll(stripansi.Strip(line), "\r", "")
}
