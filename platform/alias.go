package platform

import (
	"regexp"
	"strings"
)

// aliasRule recognises vendor spellings of a catalog entry.
//
// A rule is written as a regular expression in which " ?" stands for an
// optional separator. The compiled rule is anchored, case-insensitive, and
// tolerates at most one leading and one trailing garbage token, where a token
// is a run of ASCII alphanumerics joined to the alias by a single separator:
//
//	garbage.ARM64, ARM 64-garbage, x86_64 garbage
type aliasRule struct {
	pattern string
	re      *regexp.Regexp
}

const (
	separator    = `[ ._-]`
	garbageToken = `[a-z0-9]+`
)

func alias(pattern string) aliasRule {
	expanded := strings.ReplaceAll(pattern, " ?", separator+"?")
	re := regexp.MustCompile(`(?i)^(?:` + garbageToken + separator + `)?(?:` + expanded + `)(?:` + separator + garbageToken + `)?$`)
	return aliasRule{pattern: pattern, re: re}
}

func aliases(patterns ...string) []aliasRule {
	out := make([]aliasRule, len(patterns))
	for i, pattern := range patterns {
		out[i] = alias(pattern)
	}
	return out
}

func (a aliasRule) match(s string) bool {
	return a.re.MatchString(s)
}

func (a aliasRule) String() string {
	return a.pattern
}

// entry is the part of a catalog entry the resolver needs.
type entry interface {
	ID() string
	Name() string
	aliasRules() []aliasRule
}

// resolve returns the first entry in "order" whose canonical id, name or any
// alias rule matches "s".
func resolve[E entry](order []E, s string) (E, bool) {
	var zero E
	if s == "" {
		return zero, false
	}
	for _, e := range order {
		if s == e.ID() || s == e.Name() {
			return e, true
		}
		for _, rule := range e.aliasRules() {
			if rule.match(s) {
				return e, true
			}
		}
	}
	return zero, false
}

// lookupID returns the entry whose canonical id is exactly "s".
func lookupID[E entry](catalog []E, s string) (E, bool) {
	for _, e := range catalog {
		if e.ID() == s {
			return e, true
		}
	}
	var zero E
	return zero, false
}
