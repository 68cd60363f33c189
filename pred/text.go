package pred

import (
	"regexp"
	"strings"
)

func HasPrefix(prefix string) Predicate[string] {
	return New(call("has_prefix", prefix), func(s string) bool { return strings.HasPrefix(s, prefix) })
}

func HasSuffix(suffix string) Predicate[string] {
	return New(call("has_suffix", suffix), func(s string) bool { return strings.HasSuffix(s, suffix) })
}

// HasSub holds for strings containing sub.
func HasSub(sub string) Predicate[string] {
	return New(call("has_sub", sub), func(s string) bool { return strings.Contains(s, sub) })
}

// MatchesRe holds for strings containing a match of the regular expression
// pattern. An invalid pattern panics.
func MatchesRe(pattern string) Predicate[string] {
	return Matches(regexp.MustCompile(pattern))
}

// Matches holds for strings containing a match of re.
func Matches(re *regexp.Regexp) Predicate[string] {
	return New(call("matches_re", re.String()), re.MatchString)
}
