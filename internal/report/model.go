// Package report groups extracted definition blocks into named categories and
// renders the result for human and machine consumption.
package report

import (
	"time"
)

// Entry is the resolved outcome for a single definition name within a group.
// Line indices are 0-based; text rendering converts to 1-based inclusive
// ranges. A name absent from the input yields Found == false and zeroed line
// fields.
type Entry struct {
	Name      string `json:"name"`
	StartLine int    `json:"start_line"`
	EndLine   int    `json:"end_line"`
	LineCount int    `json:"line_count"`
	Found     bool   `json:"found"`
}

// GroupReport holds the entries of one group, in declared member order.
// TotalLines sums the line counts of found entries only.
type GroupReport struct {
	Name       string  `json:"name"`
	Entries    []Entry `json:"entries"`
	TotalLines int     `json:"total_lines"`
}

// Report is the complete result of one extraction run. Groups appear in
// configuration order. Revision is best-effort source control info and may be
// empty.
type Report struct {
	ID          string        `json:"id"`
	File        string        `json:"file"`
	Language    string        `json:"language"`
	Revision    string        `json:"revision,omitempty"`
	GeneratedAt time.Time     `json:"generated_at"`
	Groups      []GroupReport `json:"groups"`
}
