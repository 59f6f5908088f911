package scanner

import (
	"fmt"
	"os"
	"strings"
)

// LoadLines reads a file fully into memory and returns its ordered lines.
// Line terminators are stripped; a trailing newline at end of file does not
// produce an extra empty line. The file is read once, before any scanning.
func LoadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}
