// Package audit sends a grouping report to an LLM for a structural review
// and parses its verdict.
package audit

import (
	"time"

	"github.com/tildaslashalef/blockmap/internal/extractor"
)

// Result is the outcome of one audit session. When the verdict JSON could
// not be recovered from the response, Parsed is false and Raw carries the
// full response text so nothing is lost.
type Result struct {
	ID        string                  `json:"id"`
	Session   string                  `json:"session"`
	Model     string                  `json:"model"`
	CreatedAt time.Time               `json:"created_at"`
	Verdict   *extractor.AuditVerdict `json:"verdict,omitempty"`
	Raw       string                  `json:"raw,omitempty"`
	Parsed    bool                    `json:"parsed"`
}
