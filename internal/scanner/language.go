package scanner

import (
	"path/filepath"

	"github.com/go-enry/go-enry/v2"
)

// LanguageUnknown is reported when enry cannot classify the input file.
const LanguageUnknown = "Unknown"

// DetectLanguage determines the programming language of a file from its name
// and contents. Purely informational; scanning itself is language-agnostic.
func DetectLanguage(path string, content []byte) string {
	lang := enry.GetLanguage(filepath.Base(path), content)
	if lang == "" {
		return LanguageUnknown
	}
	return lang
}
