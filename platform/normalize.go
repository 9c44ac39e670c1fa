package platform

import (
	"strings"

	"github.com/cashapp/sysident/errors"
)

// ErrEmptyInput is returned by ID for an empty string.
var ErrEmptyInput = errors.New("empty input")

// ID transforms UPPER_SNAKE_CASE to lower-dash-case.
//
// Only ASCII upper case letters are lowered and only underscores are
// replaced, every other character is copied unchanged.
func ID(s string) (string, error) {
	if s == "" {
		return "", errors.WithStack(ErrEmptyInput)
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_':
			b.WriteByte('-')
		case 'A' <= c && c <= 'Z':
			b.WriteByte(c + 'a' - 'A')
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// Normalize lowers ASCII letters and either replaces every character that is
// not ASCII alphanumeric with a dash, or removes it if "strip" is true.
func Normalize(s string, strip bool) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range s {
		switch {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'z':
			b.WriteRune(c)
		case 'A' <= c && c <= 'Z':
			b.WriteRune(c + 'a' - 'A')
		case !strip:
			b.WriteByte('-')
		}
	}
	return b.String()
}

// mustID is ID for compile-time catalog names.
func mustID(name string) string {
	id, err := ID(name)
	if err != nil {
		panic(err)
	}
	return id
}
