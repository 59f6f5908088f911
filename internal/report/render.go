package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/tildaslashalef/blockmap/internal/utils"
)

// RenderText renders the report in the classic line-oriented format:
//
//	=== groupName ===
//	  member: lines 12-40 (29 lines)
//	  other: NOT FOUND
//	  Total: ~29 lines
//
// Line ranges are 1-based and inclusive. Each group section is preceded by a
// blank line.
func RenderText(r *Report) string {
	var b strings.Builder

	for _, group := range r.Groups {
		fmt.Fprintf(&b, "\n=== %s ===\n", group.Name)
		for _, entry := range group.Entries {
			if entry.Found {
				fmt.Fprintf(&b, "  %s: lines %d-%d (%d lines)\n",
					entry.Name, entry.StartLine+1, entry.EndLine+1, entry.LineCount)
			} else {
				fmt.Fprintf(&b, "  %s: NOT FOUND\n", entry.Name)
			}
		}
		fmt.Fprintf(&b, "  Total: ~%d lines\n", group.TotalLines)
	}

	return b.String()
}

// RenderJSON renders the report as indented JSON for machine consumption
func RenderJSON(r *Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling report: %w", err)
	}
	return string(data), nil
}

// RenderTable prints the report as styled terminal tables, one per group
func RenderTable(r *Report) {
	utils.PrintHeading(fmt.Sprintf("%s (%s)", r.File, r.Language))
	if r.Revision != "" {
		utils.PrintKeyValue("Revision", r.Revision)
	}

	for _, group := range r.Groups {
		rows := make([][]string, 0, len(group.Entries))
		for _, entry := range group.Entries {
			if entry.Found {
				rows = append(rows, []string{
					entry.Name,
					fmt.Sprintf("%d-%d", entry.StartLine+1, entry.EndLine+1),
					strconv.Itoa(entry.LineCount),
				})
			} else {
				rows = append(rows, []string{entry.Name, "NOT FOUND", "-"})
			}
		}

		opts := utils.DefaultTableOptions()
		opts.Title = fmt.Sprintf("%s (~%d lines)", group.Name, group.TotalLines)
		utils.PrintTable([]string{"Definition", "Lines", "Count"}, rows, opts)
	}
}
