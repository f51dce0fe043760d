package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/kpauljoseph/wrapbench/internal/output"
	"github.com/kpauljoseph/wrapbench/pkg/logger"
)

var ErrNoRuns = errors.New("no experiment runs found")

type Run struct {
	Path      string
	Timestamp time.Time
}

type DirectoryScanner struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *DirectoryScanner {
	return &DirectoryScanner{
		logger: logger,
	}
}

// FindRuns lists experiment PDFs directly inside dir, newest first.
func (s *DirectoryScanner) FindRuns(ctx context.Context, dir string) ([]Run, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading directory %s: %w", dir, err)
	}

	var runs []Run
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if entry.IsDir() {
			continue
		}

		stamp, ok := output.ParseFileName(entry.Name())
		if !ok {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		s.logger.Trace("Found run %s", path)
		runs = append(runs, Run{Path: path, Timestamp: stamp})
	}

	if len(runs) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoRuns, dir)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})

	s.logger.Debug("Found %d runs in %s", len(runs), dir)
	return runs, nil
}

// Latest returns the newest n runs in dir, or an error if there are fewer.
func (s *DirectoryScanner) Latest(ctx context.Context, dir string, n int) ([]Run, error) {
	runs, err := s.FindRuns(ctx, dir)
	if err != nil {
		return nil, err
	}
	if len(runs) < n {
		return nil, fmt.Errorf("need %d runs in %s, found %d", n, dir, len(runs))
	}
	return runs[:n], nil
}
