package audit

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tildaslashalef/blockmap/internal/config"
	"github.com/tildaslashalef/blockmap/internal/llm"
	"github.com/tildaslashalef/blockmap/internal/loggy"
	"github.com/tildaslashalef/blockmap/internal/report"
)

// stubClient returns a canned response and records the request it got
type stubClient struct {
	response string
	err      error
	lastReq  llm.ChatRequest
}

func (s *stubClient) GenerateChat(_ context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return &llm.ChatResponse{Content: s.response, Model: "claude-test"}, nil
}

func testReport() *report.Report {
	return &report.Report{
		ID:       "rpt-01ARZ3NDEKTSV4RRFFQ69G5FAV",
		File:     "server/routers.ts",
		Language: "TypeScript",
		Groups: []report.GroupReport{
			{
				Name: "playlistRouter",
				Entries: []report.Entry{
					{Name: "playlist", StartLine: 0, EndLine: 4, LineCount: 5, Found: true},
				},
				TotalLines: 5,
			},
		},
	}
}

func newTestService(client llm.Client) *Service {
	cfg := config.New()
	cfg.Claude.Model = "claude-test"
	cfg.Claude.MaxTokens = 1500
	return NewService(cfg, client, loggy.NewNoopLogger())
}

func TestRun(t *testing.T) {
	client := &stubClient{
		response: `{"groups": [{"name": "playlistRouter", "cohesion": 9, "sizing": 8, "notes": "fine"}], "overall": 9, "recommendations": []}`,
	}
	svc := newTestService(client)

	result, err := svc.Run(context.Background(), testReport())
	require.NoError(t, err)

	assert.True(t, result.Parsed)
	require.NotNil(t, result.Verdict)
	assert.Equal(t, 9, result.Verdict.Overall)
	assert.Equal(t, "claude-test", result.Model)
	assert.NotEmpty(t, result.ID)
	assert.NotEmpty(t, result.Session)

	// The request carries the system instruction and the rendered report
	require.Len(t, client.lastReq.Messages, 2)
	assert.Equal(t, "system", client.lastReq.Messages[0].Role)
	assert.Contains(t, client.lastReq.Messages[1].Content, "playlistRouter")
	assert.Equal(t, 1500, client.lastReq.MaxTokens)
}

func TestRunUnparseableResponse(t *testing.T) {
	client := &stubClient{response: "The grouping looks fine overall."}
	svc := newTestService(client)

	result, err := svc.Run(context.Background(), testReport())
	require.NoError(t, err)

	assert.False(t, result.Parsed)
	assert.Nil(t, result.Verdict)
	assert.Equal(t, client.response, result.Raw)
}

func TestRunClientError(t *testing.T) {
	client := &stubClient{err: fmt.Errorf("rate limited")}
	svc := newTestService(client)

	result, err := svc.Run(context.Background(), testReport())
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestRunNoClient(t *testing.T) {
	svc := newTestService(nil)

	result, err := svc.Run(context.Background(), testReport())
	assert.Error(t, err)
	assert.Nil(t, result)
}
