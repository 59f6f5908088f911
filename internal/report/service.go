package report

import (
	"time"

	"github.com/tildaslashalef/blockmap/internal/gitrev"
	"github.com/tildaslashalef/blockmap/internal/loggy"
	"github.com/tildaslashalef/blockmap/internal/scanner"
	"github.com/tildaslashalef/blockmap/internal/ulid"
)

// Service builds grouped extraction reports
type Service struct {
	logger  *loggy.Logger
	scanner *scanner.Service
	gitrev  *gitrev.Service
}

// NewService creates a new report service
func NewService(scannerService *scanner.Service, gitrevService *gitrev.Service, logger *loggy.Logger) *Service {
	return &Service{
		logger:  logger,
		scanner: scannerService,
		gitrev:  gitrevService,
	}
}

// Build scans the file at path and resolves every group member to its block
// extent. A member missing from the file becomes a not-found entry and the
// run continues; only found entries contribute to group totals. Groups and
// members keep their declared order. The same file and groups always produce
// the same entries.
func (s *Service) Build(path string, groups []Group) (*Report, error) {
	scan, err := s.scanner.ScanFile(path)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		ID:          ulid.ReportID(),
		File:        path,
		Language:    scan.Language,
		GeneratedAt: time.Now(),
		Groups:      make([]GroupReport, 0, len(groups)),
	}

	if info, err := s.gitrev.Resolve(path); err != nil {
		s.logger.WithError(err).Debug("revision lookup failed", "path", path)
	} else {
		rep.Revision = info.String()
	}

	for _, group := range groups {
		gr := GroupReport{
			Name:    group.Name,
			Entries: make([]Entry, 0, len(group.Members)),
		}

		for _, name := range group.Members {
			block, ok := s.scanner.ExtractBlock(scan, name)
			if !ok {
				s.logger.Warn("definition not found", "group", group.Name, "name", name)
				gr.Entries = append(gr.Entries, Entry{Name: name})
				continue
			}

			entry := Entry{
				Name:      name,
				StartLine: block.StartLine,
				EndLine:   block.EndLine,
				LineCount: block.LineCount(),
				Found:     true,
			}
			gr.TotalLines += entry.LineCount
			gr.Entries = append(gr.Entries, entry)
		}

		rep.Groups = append(rep.Groups, gr)
	}

	s.logger.Info("report built",
		"report_id", rep.ID,
		"file", path,
		"groups", len(rep.Groups),
	)

	return rep, nil
}
