package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tildaslashalef/blockmap/internal/loggy"
)

func newTestExtractor() *JSONExtractor {
	return NewJSONExtractor(loggy.NewNoopLogger())
}

func TestExtractAuditVerdictFromCodeBlock(t *testing.T) {
	e := newTestExtractor()

	content := "Here is my assessment:\n" +
		"```json\n" +
		`{
  "groups": [
    {"name": "portfolioRouter", "cohesion": 8, "sizing": 7, "notes": "tight"}
  ],
  "overall": 8,
  "recommendations": ["split analysisRouter"]
}` +
		"\n```\nLet me know if you need more detail."

	verdict, err := e.ExtractAuditVerdict(content)
	require.NoError(t, err)

	require.Len(t, verdict.Groups, 1)
	assert.Equal(t, "portfolioRouter", verdict.Groups[0].Name)
	assert.Equal(t, 8, verdict.Groups[0].Cohesion)
	assert.Equal(t, 7, verdict.Groups[0].Sizing)
	assert.Equal(t, 8, verdict.Overall)
	assert.Equal(t, []string{"split analysisRouter"}, verdict.Recommendations)
}

func TestExtractAuditVerdictTrailingJSON(t *testing.T) {
	e := newTestExtractor()

	content := `After reviewing the report, the grouping looks reasonable overall.

{"groups": [{"name": "playlistRouter", "cohesion": 9, "sizing": 9, "notes": ""}], "overall": 9, "recommendations": []}`

	verdict, err := e.ExtractAuditVerdict(content)
	require.NoError(t, err)

	require.Len(t, verdict.Groups, 1)
	assert.Equal(t, 9, verdict.Overall)
	assert.Empty(t, verdict.Recommendations)
}

func TestExtractAuditVerdictStringScores(t *testing.T) {
	e := newTestExtractor()

	content := `{"groups": [{"name": "creativeRouter", "cohesion": "6", "sizing": " 5 ", "notes": "mixed"}], "overall": "7", "recommendations": []}`

	verdict, err := e.ExtractAuditVerdict(content)
	require.NoError(t, err)

	assert.Equal(t, 6, verdict.Groups[0].Cohesion)
	assert.Equal(t, 5, verdict.Groups[0].Sizing)
	assert.Equal(t, 7, verdict.Overall)
}

func TestExtractAuditVerdictUnparseableScore(t *testing.T) {
	e := newTestExtractor()

	content := `{"groups": [{"name": "x", "cohesion": "high", "sizing": 5, "notes": ""}], "overall": 6, "recommendations": []}`

	verdict, err := e.ExtractAuditVerdict(content)
	require.NoError(t, err)

	assert.Equal(t, 0, verdict.Groups[0].Cohesion)
	assert.Equal(t, 5, verdict.Groups[0].Sizing)
}

func TestExtractAuditVerdictTrailingComma(t *testing.T) {
	e := newTestExtractor()

	content := `{"groups": [{"name": "x", "cohesion": 5, "sizing": 5, "notes": "ok"},], "overall": 5, "recommendations": ["a",]}`

	verdict, err := e.ExtractAuditVerdict(content)
	require.NoError(t, err)

	require.Len(t, verdict.Groups, 1)
	assert.Equal(t, []string{"a"}, verdict.Recommendations)
}

func TestExtractAuditVerdictNullGroups(t *testing.T) {
	e := newTestExtractor()

	content := `{"groups":null, "overall": 4, "recommendations": []}`

	verdict, err := e.ExtractAuditVerdict(content)
	require.NoError(t, err)

	assert.Empty(t, verdict.Groups)
	assert.Equal(t, 4, verdict.Overall)
}

func TestExtractAuditVerdictNoJSON(t *testing.T) {
	e := newTestExtractor()

	_, err := e.ExtractAuditVerdict("The grouping looks fine to me, nothing to add.")
	assert.Error(t, err)
}

func TestExtractAuditVerdictMalformedJSON(t *testing.T) {
	e := newTestExtractor()

	_, err := e.ExtractAuditVerdict(`{"groups": [{"name": "x" "cohesion": 5}]}`)
	assert.Error(t, err)
}
