package pattern

import (
	"regexp"
	"strings"
)

// Matcher reports whether a path matches any of a set of skip patterns.
// The zero value matches nothing.
type Matcher struct {
	compiled []*regexp.Regexp
}

// Compile builds a Matcher from raw skip patterns. Patterns use shell-style
// wildcards: '*' matches any run of characters (including '/') and '?'
// matches exactly one character. A pattern that does not start with '*', '?'
// or '/' is treated as a basename pattern and matched as "*/<pattern>", so
// ".git" matches any path ending in "/.git". Matching is case-insensitive
// and always covers the full path. Duplicate and empty patterns are ignored.
func Compile(patterns []string) *Matcher {
	m := &Matcher{}
	seen := make(map[string]struct{}, len(patterns))
	for _, p := range patterns {
		if p == "" {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		if !strings.ContainsAny(p[:1], "*?/") {
			p = "*/" + p
		}
		m.compiled = append(m.compiled, regexp.MustCompile(translate(p)))
	}
	return m
}

// Matches reports whether any pattern matches the full path.
func (m *Matcher) Matches(path string) bool {
	for _, re := range m.compiled {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

// Len returns the number of compiled patterns.
func (m *Matcher) Len() int {
	return len(m.compiled)
}

// translate converts a glob into an anchored case-insensitive regexp. Every
// non-wildcard character is quoted, so arbitrary input always compiles and
// unusual syntax degrades to literal matching.
func translate(glob string) string {
	var b strings.Builder
	b.WriteString(`(?is)\A`)
	for _, r := range glob {
		switch r {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(`\z`)
	return b.String()
}
