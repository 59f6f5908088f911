package audit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tildaslashalef/blockmap/internal/report"
)

func TestBuildSystemInstruction(t *testing.T) {
	instruction := BuildSystemInstruction()

	assert.Contains(t, instruction, `"groups"`)
	assert.Contains(t, instruction, `"overall"`)
	assert.Contains(t, instruction, `"recommendations"`)
	assert.Contains(t, instruction, "VALID JSON")
}

func TestBuildReportContext(t *testing.T) {
	rep := &report.Report{
		File:     "server/routers.ts",
		Language: "TypeScript",
		Revision: "main@ab12cd34",
		Groups: []report.GroupReport{
			{
				Name: "portfolioRouter",
				Entries: []report.Entry{
					{Name: "portfolio", StartLine: 1, EndLine: 5, LineCount: 5, Found: true},
					{Name: "completion"},
				},
				TotalLines: 5,
			},
		},
	}

	out, err := BuildReportContext(rep)
	require.NoError(t, err)

	assert.Contains(t, out, "server/routers.ts (TypeScript, main@ab12cd34)")
	assert.Contains(t, out, "### portfolioRouter (~5 lines)")
	// Line numbers are rendered 1-based
	assert.Contains(t, out, "- portfolio: lines 2-6 (5 lines)")
	assert.Contains(t, out, "- completion: NOT FOUND")
}

func TestBuildReportContextNoRevision(t *testing.T) {
	rep := &report.Report{
		File:     "server/routers.ts",
		Language: "TypeScript",
	}

	out, err := BuildReportContext(rep)
	require.NoError(t, err)

	assert.Contains(t, out, "server/routers.ts (TypeScript)")
	assert.False(t, strings.Contains(out, "@"))
}
