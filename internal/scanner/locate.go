package scanner

import (
	"regexp"
)

// Locator finds the declaration lines of named definitions. A definition
// opens with exactly two spaces of indentation, an identifier, a colon, the
// configured callee and an opening "({", e.g.:
//
//	  portfolio: router({
//
// The indentation is exact: deeper-nested or differently indented lines do
// not match.
type Locator struct {
	pattern *regexp.Regexp
}

// NewLocator creates a Locator for definitions opened by the given callee.
func NewLocator(callee string) *Locator {
	return &Locator{
		pattern: regexp.MustCompile(`^  (\w+): ` + regexp.QuoteMeta(callee) + `\(\{`),
	}
}

// Locate scans every line and returns a mapping from definition name to its
// declaration line index. If a name is declared on more than one matching
// line, the mapping retains only the last occurrence; earlier ones are
// silently overwritten. This last-wins behavior is part of the contract.
func (l *Locator) Locate(lines []string) map[string]int {
	defs := make(map[string]int)
	for i, line := range lines {
		if m := l.pattern.FindStringSubmatch(line); m != nil {
			defs[m[1]] = i
		}
	}
	return defs
}
