package scanner

import (
	"fmt"
	"strings"

	"github.com/tildaslashalef/blockmap/internal/config"
	"github.com/tildaslashalef/blockmap/internal/loggy"
)

// Service provides block scanning operations. Each scan is a pure function of
// the input file and the configured pattern; the service holds no state
// across invocations.
type Service struct {
	logger        *loggy.Logger
	locator       *Locator
	commentMarker string
}

// NewService creates a new scanner service
func NewService(cfg config.ScanConfig, logger *loggy.Logger) *Service {
	return &Service{
		logger:        logger,
		locator:       NewLocator(cfg.Callee),
		commentMarker: cfg.CommentMarker,
	}
}

// ScanFile loads a file and locates every definition in it
func (s *Service) ScanFile(path string) (*FileScan, error) {
	lines, err := LoadLines(path)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}

	defs := s.locator.Locate(lines)
	lang := DetectLanguage(path, []byte(strings.Join(lines, "\n")))

	s.logger.Debug("scanned file",
		"path", path,
		"language", lang,
		"lines", len(lines),
		"definitions", len(defs),
	)

	return &FileScan{
		Path:        path,
		Language:    lang,
		Lines:       lines,
		Definitions: defs,
	}, nil
}

// ExtractBlock resolves the full extent of a named definition within a scan.
// The second return value is false when the name was not located. The
// returned block always satisfies StartLine <= DeclLine <= EndLine.
func (s *Service) ExtractBlock(scan *FileScan, name string) (Block, bool) {
	declLine, ok := scan.Definitions[name]
	if !ok {
		return Block{}, false
	}

	endLine := FindBlockEnd(scan.Lines, declLine)
	startLine := AttachComments(scan.Lines, declLine, s.commentMarker)

	return Block{
		Name:      name,
		StartLine: startLine,
		DeclLine:  declLine,
		EndLine:   endLine,
	}, true
}
