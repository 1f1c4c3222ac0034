package useragent

import (
	"regexp"
	"strings"
)

// versionPattern captures a "major" or "major.minor" version and drops the rest,
// so "Firefox/3.5.7" yields "3.5".
const versionPattern = `([0-9]+(?:\.[0-9]+)?)`

// rule is a single entry of a detection cascade. A rule decides whether it
// applies and, when it carries a version, which capture group holds it.
type rule struct {
	pattern *regexp.Regexp
	label   string
	version int // capture group index, 0 when the rule has no version
}

// newRule compiles a case-insensitive rule. Patterns are compiled once at
// package init; a bad pattern is a programming error and panics there.
func newRule(label, pattern string, version int) rule {
	return rule{
		pattern: regexp.MustCompile(`(?i)` + pattern),
		label:   label,
		version: version,
	}
}

// versioned builds a rule whose pattern is "token" followed by a version.
func versioned(label, token string) rule {
	return newRule(label, token+versionPattern, 1)
}

// result is the outcome of evaluating one axis.
type result struct {
	matched bool
	label   string
	version string
}

func (r rule) apply(s string) (result, bool) {
	m := r.pattern.FindStringSubmatch(s)
	if m == nil {
		return result{}, false
	}
	res := result{matched: true, label: r.label}
	if r.version > 0 && r.version < len(m) {
		res.version = m[r.version]
	}
	return res, true
}

// cascade is an ordered rule list; declaration order is precedence.
type cascade []rule

// first returns the result of the first rule that matches s.
func (c cascade) first(s string) result {
	for _, r := range c {
		if res, ok := r.apply(s); ok {
			return res
		}
	}
	return result{}
}

// Normalize trims the input and collapses every run of whitespace into a
// single space. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
