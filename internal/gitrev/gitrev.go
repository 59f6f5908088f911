// Package gitrev resolves best-effort source control information for the
// scanned file, so reports can record which revision they describe.
package gitrev

import (
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"

	"github.com/tildaslashalef/blockmap/internal/loggy"
)

// Info describes the repository state at scan time
type Info struct {
	Branch string `json:"branch"`
	Commit string `json:"commit"`
}

// String renders the info as "branch@shorthash"
func (i *Info) String() string {
	if i == nil {
		return ""
	}
	return fmt.Sprintf("%s@%s", i.Branch, i.Commit)
}

// Service resolves revision info for paths
type Service struct {
	logger *loggy.Logger
}

// NewService creates a new gitrev service
func NewService(logger *loggy.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// Resolve opens the repository containing path and returns its HEAD branch
// and short commit hash. A path outside any repository is not an error; the
// caller gets a nil Info.
func (s *Service) Resolve(path string) (*Info, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err == git.ErrRepositoryNotExists {
		s.logger.Debug("no git repository for path", "path", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}

	return &Info{
		Branch: head.Name().Short(),
		Commit: head.Hash().String()[:8],
	}, nil
}
