package team

import "regexp"

// Scope decides whether a repository path falls under a team's
// responsibility.
type Scope interface {
	Matches(path string) bool
	String() string
}

type exactPath string

// Exact returns a scope entry matching path by string equality.
func Exact(path string) Scope {
	return exactPath(path)
}

func (e exactPath) Matches(path string) bool {
	return string(e) == path
}

func (e exactPath) String() string {
	return string(e)
}

type patternMatch struct {
	re *regexp.Regexp
}

// Pattern returns a scope entry matching paths against a regular expression.
// The expression is applied un-anchored; registry entries anchor themselves
// with ^ and $ where they need to.
func Pattern(expr string) Scope {
	return patternMatch{re: regexp.MustCompile(expr)}
}

func (p patternMatch) Matches(path string) bool {
	return p.re.MatchString(path)
}

func (p patternMatch) String() string {
	return p.re.String()
}
