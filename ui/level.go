package ui

import (
	"os"
	"strconv"

	"github.com/cashapp/sysident/errors"
)

// Level for a log message.
type Level int

// Log levels.
const (
	// LevelAuto will detect the log level from the environment via
	// SYSIDENT_LOG=<level>, DEBUG=1, then finally from flag.
	LevelAuto Level = iota
	LevelTrace
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{"auto", "trace", "debug", "info", "warn", "error", "fatal"}

// ANSI colour of each level on a terminal.
var levelColor = [...]string{
	LevelTrace: "\033[37m",
	LevelDebug: "\033[36m",
	LevelInfo:  "\033[32m",
	LevelWarn:  "\033[33m",
	LevelError: "\033[31m",
	LevelFatal: "\033[31m",
}

func (l Level) String() string {
	if l < LevelAuto || l > LevelFatal {
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
	return levelNames[l]
}

// Visible returns true if messages at "other" pass a minimum of "l".
func (l Level) Visible(other Level) bool {
	return other >= l
}

func (l *Level) UnmarshalText(text []byte) error {
	level, err := LevelFromString(string(text))
	if err != nil {
		return err
	}
	*l = level
	return nil
}

// LevelFromString parses a level name. "warning" is accepted for warn.
func LevelFromString(s string) (Level, error) {
	if s == "warning" {
		return LevelWarn, nil
	}
	for level, name := range levelNames {
		if name == s {
			return Level(level), nil
		}
	}
	return 0, errors.Errorf("invalid log level %q", s)
}

// AutoLevel resolves LevelAuto from SYSIDENT_LOG, then DEBUG, defaulting to
// info. Any other level is returned unchanged.
func AutoLevel(level Level) Level {
	if level != LevelAuto {
		return level
	}
	if env := os.Getenv("SYSIDENT_LOG"); env != "" {
		if parsed, err := LevelFromString(env); err == nil {
			return parsed
		}
		return LevelInfo
	}
	if os.Getenv("DEBUG") != "" {
		return LevelTrace
	}
	return LevelInfo
}
