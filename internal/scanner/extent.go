package scanner

// FindBlockEnd scans forward from startLine and returns the index of the line
// on which the definition's brace nesting closes. Every character is visited
// in order: '{' increments and '}' decrements a brace counter, '(' and ')'
// maintain a parenthesis counter in parallel. The parenthesis counter mirrors
// the call expression wrapping the brace block; it is kept for compatibility
// with the construct being scanned but does not gate termination. The scan
// ends at the first line after which the brace counter has returned to zero
// having been positive at least once.
//
// If the braces never rebalance before the input ends, the last line index is
// returned as a best-effort boundary; the resulting extent is not guaranteed
// to be meaningful in that case. The scan has no awareness of brace or
// parenthesis characters inside string literals or comments; handling those
// is out of scope.
func FindBlockEnd(lines []string, startLine int) int {
	braceCount := 0
	parenCount := 0
	started := false

	for i := startLine; i < len(lines); i++ {
		for _, ch := range lines[i] {
			switch ch {
			case '{':
				braceCount++
				started = true
			case '}':
				braceCount--
			case '(':
				parenCount++
			case ')':
				parenCount--
			}
		}

		if started && braceCount == 0 {
			return i
		}
	}

	return len(lines) - 1
}
