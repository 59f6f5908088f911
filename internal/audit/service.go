package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/tildaslashalef/blockmap/internal/config"
	"github.com/tildaslashalef/blockmap/internal/extractor"
	"github.com/tildaslashalef/blockmap/internal/llm"
	"github.com/tildaslashalef/blockmap/internal/loggy"
	"github.com/tildaslashalef/blockmap/internal/report"
	"github.com/tildaslashalef/blockmap/internal/ulid"
	"github.com/tildaslashalef/blockmap/internal/utils"
)

// Service runs report audits against the configured LLM provider
type Service struct {
	cfg       *config.Config
	llmClient llm.Client
	extractor *extractor.JSONExtractor
	logger    *loggy.Logger
}

// NewService creates a new audit service
func NewService(cfg *config.Config, llmClient llm.Client, logger *loggy.Logger) *Service {
	return &Service{
		cfg:       cfg,
		llmClient: llmClient,
		extractor: extractor.NewJSONExtractor(logger),
		logger:    logger,
	}
}

// Run audits a report in a single synchronous LLM round trip. The response
// text is mined for the verdict JSON; if none can be recovered, the raw text
// is returned unparsed rather than discarded.
func (s *Service) Run(ctx context.Context, r *report.Report) (*Result, error) {
	if s.llmClient == nil {
		return nil, fmt.Errorf("no LLM client configured")
	}

	session := utils.GenerateSessionName()
	ctx = loggy.WithRequestID(ctx, loggy.NewRequestID())
	ctx = loggy.WithLogger(ctx, s.logger.With("session", session))

	s.logger.Info("starting audit session",
		"session", session,
		"report_id", r.ID,
		"request_id", loggy.GetRequestID(ctx),
	)

	userMessage, err := BuildReportContext(r)
	if err != nil {
		return nil, fmt.Errorf("building audit prompt: %w", err)
	}

	resp, err := s.llmClient.GenerateChat(ctx, llm.ChatRequest{
		Model: s.cfg.Claude.Model,
		Messages: []llm.Message{
			{Role: "system", Content: BuildSystemInstruction()},
			{Role: "user", Content: userMessage},
		},
		MaxTokens:   s.cfg.Claude.MaxTokens,
		Temperature: s.cfg.Claude.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("audit request failed: %w", err)
	}

	result := &Result{
		ID:        ulid.AuditID(),
		Session:   session,
		Model:     resp.Model,
		CreatedAt: time.Now(),
		Raw:       resp.Content,
	}

	verdict, err := s.extractor.ExtractAuditVerdict(resp.Content)
	if err != nil {
		s.logger.Warn("audit response had no parseable verdict",
			"session", session,
			"error", err,
		)
		return result, nil
	}

	result.Verdict = verdict
	result.Parsed = true

	s.logger.Info("audit session complete",
		"session", session,
		"overall", verdict.Overall,
		"groups", len(verdict.Groups),
	)

	return result, nil
}
