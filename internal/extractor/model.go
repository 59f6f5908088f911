// Package extractor provides utilities for extracting and sanitizing JSON
// from LLM responses
package extractor

// AuditVerdict represents the raw structure of a grouping audit response from
// an LLM
type AuditVerdict struct {
	Groups          []GroupVerdict `json:"groups"`
	Overall         int            `json:"overall"`
	Recommendations []string       `json:"recommendations"`
}

// GroupVerdict represents the assessment of a single group in an LLM response
type GroupVerdict struct {
	Name     string `json:"name"`
	Cohesion int    `json:"cohesion"`
	Sizing   int    `json:"sizing"`
	Notes    string `json:"notes"`
}
