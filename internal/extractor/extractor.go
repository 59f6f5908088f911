package extractor

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tildaslashalef/blockmap/internal/loggy"
)

// JSONExtractor extracts structured data from LLM responses
type JSONExtractor struct {
	logger *loggy.Logger
}

// NewJSONExtractor creates a new JSONExtractor
func NewJSONExtractor(logger *loggy.Logger) *JSONExtractor {
	return &JSONExtractor{
		logger: logger,
	}
}

var (
	codeBlockRegex = regexp.MustCompile("```(?:json)?([\\s\\S]*?)```")
	verdictRegex   = regexp.MustCompile(`(?s)\{.*"groups".*"overall".*\}`)
	trailingComma  = regexp.MustCompile(`,\s*([}\]])`)
)

// ExtractAuditVerdict extracts a structured audit verdict from an LLM
// response. Models often wrap the JSON in prose or markdown fences, so the
// object is hunted down before unmarshaling and lightly repaired.
func (e *JSONExtractor) ExtractAuditVerdict(content string) (*AuditVerdict, error) {
	jsonContent, err := extractJSON(content)
	if err != nil {
		e.logger.Debug("Failed to extract JSON", "error", err)
		return nil, fmt.Errorf("failed to extract JSON: %w", err)
	}
	e.logger.Debug("Successfully extracted JSON", "length", len(jsonContent))

	sanitized := applyBasicFixes(jsonContent)

	// Scores occasionally come back as quoted strings; accept both
	type intermediateGroup struct {
		Name     string      `json:"name"`
		Cohesion interface{} `json:"cohesion"`
		Sizing   interface{} `json:"sizing"`
		Notes    string      `json:"notes"`
	}

	type intermediateVerdict struct {
		Groups          []intermediateGroup `json:"groups"`
		Overall         interface{}         `json:"overall"`
		Recommendations []string            `json:"recommendations"`
	}

	var intermediate intermediateVerdict
	if err := json.Unmarshal([]byte(sanitized), &intermediate); err != nil {
		e.logger.Debug("Failed to unmarshal JSON", "error", err)
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	result := &AuditVerdict{
		Groups:          make([]GroupVerdict, 0, len(intermediate.Groups)),
		Overall:         parseScore(intermediate.Overall),
		Recommendations: intermediate.Recommendations,
	}

	for _, g := range intermediate.Groups {
		result.Groups = append(result.Groups, GroupVerdict{
			Name:     g.Name,
			Cohesion: parseScore(g.Cohesion),
			Sizing:   parseScore(g.Sizing),
			Notes:    g.Notes,
		})
	}

	e.logger.Debug("Successfully processed audit verdict", "groups", len(result.Groups))
	return result, nil
}

// extractJSON finds and extracts JSON from the content
func extractJSON(content string) (string, error) {
	// Try to find JSON in code blocks first
	matches := codeBlockRegex.FindAllStringSubmatch(content, -1)
	for _, match := range matches {
		if len(match) > 1 {
			potential := strings.TrimSpace(match[1])
			if strings.HasPrefix(potential, "{") && strings.HasSuffix(potential, "}") {
				return potential, nil
			}
		}
	}

	// Look for a complete verdict object directly in the content
	if match := verdictRegex.FindString(content); match != "" {
		return match, nil
	}

	// Fallback: balance braces from the last opening brace
	startIdx := strings.LastIndex(content, "{")
	if startIdx >= 0 {
		potentialJSON := content[startIdx:]
		depth := 0
		for i, char := range potentialJSON {
			if char == '{' {
				depth++
			} else if char == '}' {
				depth--
				if depth == 0 {
					return potentialJSON[:i+1], nil
				}
			}
		}
	}

	return "", fmt.Errorf("no JSON found in content")
}

// applyBasicFixes applies basic fixes to JSON to handle common issues
func applyBasicFixes(content string) string {
	// Handle null group lists
	result := strings.ReplaceAll(content, `"groups":null`, `"groups":[]`)

	// Fix trailing commas
	result = trailingComma.ReplaceAllString(result, "$1")

	return result
}

// parseScore attempts to parse a score from different formats
func parseScore(value interface{}) int {
	switch v := value.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		if num, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return num
		}
	}
	return 0
}
