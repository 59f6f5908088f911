package audit

import (
	"bytes"
	"text/template"

	"github.com/tildaslashalef/blockmap/internal/report"
)

// Templates for building prompts
const systemInstructionTemplate = `You are a senior software architect auditing how a large source file has been split into modules. Your **PRIMARY GOAL** is to provide a **VALID JSON response**, even if it includes other text before it. The JSON response **MUST** be a complete, parseable JSON object as your final statement.

Follow this schema **EXACTLY** without adding any additional fields or arrays:

{
  "groups": [
    {
      "name": "group name",
      "cohesion": 7,
      "sizing": 8,
      "notes": "Brief assessment of this group"
    }
  ],
  "overall": 8,
  "recommendations": ["..."]
}

IMPORTANT:
- Rate "cohesion" (do the members belong together?) and "sizing" (is the group a reasonable size relative to the others?) from 1 to 10.
- **ONLY** include the fields specified above (groups, overall, recommendations).
- **INCLUDE** all three required fields even if empty.
- Include one entry in "groups" for every group in the report, in the same order.

Provide the **JSON** response as your **LAST** statement, even if you have other text before it.`

const reportContextTemplate = `## Extraction Report
File: {{.File}} ({{.Language}}{{if .Revision}}, {{.Revision}}{{end}})

{{range .Groups}}### {{.Name}} (~{{.TotalLines}} lines)
{{range .Entries}}{{if .Found}}- {{.Name}}: lines {{.StartLine}}-{{.EndLine}} ({{.LineCount}} lines)
{{else}}- {{.Name}}: NOT FOUND
{{end}}{{end}}
{{end}}
Evaluate whether each group is a coherent, well-sized extraction target.`

// BuildSystemInstruction builds the system instruction for the audit
func BuildSystemInstruction() string {
	return systemInstructionTemplate
}

// BuildReportContext renders the report into the audit prompt's user message
func BuildReportContext(r *report.Report) (string, error) {
	tmpl, err := template.New("report").Parse(reportContextTemplate)
	if err != nil {
		return "", err
	}

	type entryView struct {
		Name      string
		StartLine int
		EndLine   int
		LineCount int
		Found     bool
	}
	type groupView struct {
		Name       string
		TotalLines int
		Entries    []entryView
	}
	view := struct {
		File     string
		Language string
		Revision string
		Groups   []groupView
	}{
		File:     r.File,
		Language: r.Language,
		Revision: r.Revision,
	}

	for _, g := range r.Groups {
		gv := groupView{Name: g.Name, TotalLines: g.TotalLines}
		for _, e := range g.Entries {
			gv.Entries = append(gv.Entries, entryView{
				Name:      e.Name,
				StartLine: e.StartLine + 1,
				EndLine:   e.EndLine + 1,
				LineCount: e.LineCount,
				Found:     e.Found,
			})
		}
		view.Groups = append(view.Groups, gv)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view); err != nil {
		return "", err
	}

	return buf.String(), nil
}
