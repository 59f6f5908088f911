package scanner

import (
	"strings"
)

// AttachComments walks backward from a definition's declaration line and
// returns the index of the first line of the comment run directly above it.
// A line belongs to the run when, after trimming surrounding whitespace, it
// begins with the given single-line comment marker. The walk stops at the
// first line that is not such a comment, or at line 0. A blank line between
// the comments and the declaration breaks the run, so nothing is attached.
func AttachComments(lines []string, declLine int, marker string) int {
	start := declLine
	for start > 0 && strings.HasPrefix(strings.TrimSpace(lines[start-1]), marker) {
		start--
	}
	return start
}
